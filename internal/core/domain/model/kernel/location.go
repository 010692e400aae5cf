package kernel

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Province is one of the eight former administrative provinces of Kenya.
// Sellers may declare delivery coverage either by province or by county.
type Province string

const (
	ProvinceNairobi      Province = "Nairobi"
	ProvinceCentral      Province = "Central"
	ProvinceCoast        Province = "Coast"
	ProvinceEastern      Province = "Eastern"
	ProvinceNorthEastern Province = "North Eastern"
	ProvinceNyanza       Province = "Nyanza"
	ProvinceRiftValley   Province = "Rift Valley"
	ProvinceWestern      Province = "Western"
)

var provinces = []Province{
	ProvinceNairobi, ProvinceCentral, ProvinceCoast, ProvinceEastern,
	ProvinceNorthEastern, ProvinceNyanza, ProvinceRiftValley, ProvinceWestern,
}

// ParseProvince matches a province name ignoring case and surrounding spaces.
func ParseProvince(s string) (Province, error) {
	for _, p := range provinces {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("province", fmt.Errorf("%q is not a known province", s))
}

// countyProvinces is the canonical county table.
var countyProvinces = map[string]Province{
	"Nairobi": ProvinceNairobi,

	"Kiambu":    ProvinceCentral,
	"Kirinyaga": ProvinceCentral,
	"Murang'a":  ProvinceCentral,
	"Nyandarua": ProvinceCentral,
	"Nyeri":     ProvinceCentral,

	"Mombasa":      ProvinceCoast,
	"Kwale":        ProvinceCoast,
	"Kilifi":       ProvinceCoast,
	"Tana River":   ProvinceCoast,
	"Lamu":         ProvinceCoast,
	"Taita Taveta": ProvinceCoast,

	"Marsabit":      ProvinceEastern,
	"Isiolo":        ProvinceEastern,
	"Meru":          ProvinceEastern,
	"Tharaka Nithi": ProvinceEastern,
	"Embu":          ProvinceEastern,
	"Kitui":         ProvinceEastern,
	"Machakos":      ProvinceEastern,
	"Makueni":       ProvinceEastern,

	"Garissa": ProvinceNorthEastern,
	"Wajir":   ProvinceNorthEastern,
	"Mandera": ProvinceNorthEastern,

	"Siaya":    ProvinceNyanza,
	"Kisumu":   ProvinceNyanza,
	"Homa Bay": ProvinceNyanza,
	"Migori":   ProvinceNyanza,
	"Kisii":    ProvinceNyanza,
	"Nyamira":  ProvinceNyanza,

	"Turkana":          ProvinceRiftValley,
	"West Pokot":       ProvinceRiftValley,
	"Samburu":          ProvinceRiftValley,
	"Trans Nzoia":      ProvinceRiftValley,
	"Uasin Gishu":      ProvinceRiftValley,
	"Elgeyo Marakwet":  ProvinceRiftValley,
	"Nandi":            ProvinceRiftValley,
	"Baringo":          ProvinceRiftValley,
	"Laikipia":         ProvinceRiftValley,
	"Nakuru":           ProvinceRiftValley,
	"Narok":            ProvinceRiftValley,
	"Kajiado":          ProvinceRiftValley,
	"Kericho":          ProvinceRiftValley,
	"Bomet":            ProvinceRiftValley,

	"Kakamega": ProvinceWestern,
	"Vihiga":   ProvinceWestern,
	"Bungoma":  ProvinceWestern,
	"Busia":    ProvinceWestern,
}

// countyIndex maps the normalized spelling to the canonical county name.
var countyIndex = func() map[string]string {
	idx := make(map[string]string, len(countyProvinces))
	for county := range countyProvinces {
		idx[normalizeCounty(county)] = county
	}
	return idx
}()

// ErrLocationIsNotConstructed is returned for a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via ResolveLocation")

// Location is a buyer delivery destination: a canonical county and its province.
type Location struct {
	county   string
	province Province
	guard    guard.ConstructorGuard
}

// ResolveLocation maps a county name to its province. Matching ignores case,
// surrounding spaces, hyphens and apostrophes, so "murang'a", "Muranga" and
// "tharaka-nithi" resolve; the canonical spelling is kept.
func ResolveLocation(county string) (Location, error) {
	if strings.TrimSpace(county) == "" {
		return Location{}, errs.NewValueIsRequiredError("county")
	}

	canonical, ok := countyIndex[normalizeCounty(county)]
	if !ok {
		return Location{}, errs.NewInvalidLocationError(county)
	}

	return Location{
		county:   canonical,
		province: countyProvinces[canonical],
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// IsKnownCounty reports whether county is in the canonical table.
func IsKnownCounty(county string) bool {
	_, ok := countyIndex[normalizeCounty(county)]
	return ok
}

// CanonicalCounty returns the canonical spelling of county, or the input unchanged
// when it is unknown.
func CanonicalCounty(county string) string {
	if canonical, ok := countyIndex[normalizeCounty(county)]; ok {
		return canonical
	}
	return strings.TrimSpace(county)
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) County() string {
	return l.county
}

func (l Location) Province() Province {
	return l.province
}

func (l Location) String() string {
	return l.county + ", " + string(l.province)
}

func normalizeCounty(county string) string {
	replacer := strings.NewReplacer("'", "", "’", "", "-", " ")
	fields := strings.Fields(strings.ToLower(replacer.Replace(county)))
	return strings.Join(fields, " ")
}
