package seller

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// DeliverySettingsParams carries the raw seller delivery configuration.
type DeliverySettingsParams struct {
	OffersDelivery          bool
	OffersPayAfterDelivery  bool
	OffersFreeDelivery      bool
	Provinces               []string
	Counties                []string
	MinOrderForFreeDelivery kernel.Money
	// DeliveryFeePerKm is charged once per order, never multiplied by distance.
	// Nil means the platform default seller fee applies.
	DeliveryFeePerKm *kernel.Money
}

// DeliverySettings describes how a seller ships: whether they deliver at all,
// where, at what flat fee, and above which subtotal delivery is free.
type DeliverySettings struct {
	offersDelivery          bool
	offersPayAfterDelivery  bool
	offersFreeDelivery      bool
	provinces               []kernel.Province
	counties                []string
	minOrderForFreeDelivery kernel.Money
	deliveryFeePerKm        *kernel.Money
}

// NewDeliverySettings canonicalizes county names and rejects unknown provinces
// and counties.
func NewDeliverySettings(p DeliverySettingsParams) (DeliverySettings, error) {
	s := DeliverySettings{
		offersDelivery:          p.OffersDelivery,
		offersPayAfterDelivery:  p.OffersPayAfterDelivery,
		offersFreeDelivery:      p.OffersFreeDelivery,
		minOrderForFreeDelivery: p.MinOrderForFreeDelivery,
	}
	if p.DeliveryFeePerKm != nil {
		fee := *p.DeliveryFeePerKm
		s.deliveryFeePerKm = &fee
	}

	if err := errors.Join(
		s.setProvinces(p.Provinces),
		s.setCounties(p.Counties),
	); err != nil {
		return DeliverySettings{}, err
	}
	return s, nil
}

func (s DeliverySettings) OffersDelivery() bool {
	return s.offersDelivery
}

func (s DeliverySettings) OffersPayAfterDelivery() bool {
	return s.offersPayAfterDelivery
}

func (s DeliverySettings) OffersFreeDelivery() bool {
	return s.offersFreeDelivery
}

func (s DeliverySettings) Provinces() []kernel.Province {
	return append([]kernel.Province(nil), s.provinces...)
}

func (s DeliverySettings) Counties() []string {
	return append([]string(nil), s.counties...)
}

func (s DeliverySettings) MinOrderForFreeDelivery() kernel.Money {
	return s.minOrderForFreeDelivery
}

// DeliveryFee returns the configured flat fee and whether one is set.
func (s DeliverySettings) DeliveryFee() (kernel.Money, bool) {
	if s.deliveryFeePerKm == nil {
		return kernel.Money{}, false
	}
	return *s.deliveryFeePerKm, true
}

// DeliversToProvince reports whether the whole province is covered.
func (s DeliverySettings) DeliversToProvince(province kernel.Province) bool {
	for _, p := range s.provinces {
		if p == province {
			return true
		}
	}
	return false
}

// DeliversToCounty reports whether the county is listed explicitly.
func (s DeliverySettings) DeliversToCounty(county string) bool {
	canonical := kernel.CanonicalCounty(county)
	for _, c := range s.counties {
		if c == canonical {
			return true
		}
	}
	return false
}

// Covers reports whether either the province or the county of location is covered.
func (s DeliverySettings) Covers(location kernel.Location) bool {
	return s.DeliversToProvince(location.Province()) || s.DeliversToCounty(location.County())
}

func (s *DeliverySettings) setProvinces(provinces []string) error {
	s.provinces = make([]kernel.Province, 0, len(provinces))
	for _, p := range provinces {
		province, err := kernel.ParseProvince(p)
		if err != nil {
			return err
		}
		s.provinces = append(s.provinces, province)
	}
	return nil
}

func (s *DeliverySettings) setCounties(counties []string) error {
	s.counties = make([]string, 0, len(counties))
	for _, c := range counties {
		if !kernel.IsKnownCounty(c) {
			return errs.NewInvalidLocationError(c)
		}
		s.counties = append(s.counties, kernel.CanonicalCounty(c))
	}
	return nil
}
