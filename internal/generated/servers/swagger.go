package servers

import (
	"sync"

	"github.com/swaggo/swag"
)

var registerOnce sync.Once

// swaggerDoc serves the embedded spec to echo-swagger.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	data, err := rawSpec()
	if err != nil {
		return "{}"
	}
	return string(data)
}

// RegisterSwagger makes the embedded spec available under swag.Name.
func RegisterSwagger() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
}
