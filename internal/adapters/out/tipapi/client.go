// Package tipapi reads tip statuses from a running marketplace API. It is the
// remote StatusSource used by the tipwatch command.
package tipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultRequestTimeout = 10 * time.Second

// Client calls GET /api/v1/tips/{tipId}/status.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL, e.g. http://localhost:8080. A nil
// httpClient gets a traced client with DefaultRequestTimeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", fmt.Errorf("%q is not an absolute URL", baseURL))
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   DefaultRequestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL: u.String(),
		http:    httpClient,
	}, nil
}

// TipStatus satisfies tips.StatusSource.
func (c *Client) TipStatus(ctx context.Context, tipID kernel.UUID) (ports.TipStatusView, error) {
	endpoint := fmt.Sprintf("%s/api/v1/tips/%s/status", c.baseURL, tipID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.TipStatusView{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.TipStatusView{}, fmt.Errorf("get tip status: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ports.TipStatusView{}, errs.NewObjectNotFoundError("tipId", tipID.String())
	default:
		return ports.TipStatusView{}, fmt.Errorf("get tip status: unexpected status %d", resp.StatusCode)
	}

	var body servers.TipStatus
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.TipStatusView{}, fmt.Errorf("decode tip status: %w", err)
	}

	view := ports.TipStatusView{
		TipID:    body.TipId.String(),
		Status:   body.Status,
		CanRetry: body.CanRetry,
	}
	if body.FailedReason != nil {
		view.FailedReason = *body.FailedReason
	}
	if body.ActionRequired != nil {
		view.ActionRequired = *body.ActionRequired
	}
	return view, nil
}
