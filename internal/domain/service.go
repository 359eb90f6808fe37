package domain

import "time"

// ServiceType группа услуг салона
type ServiceType string

const (
	ServiceTypeHair    ServiceType = "hair"
	ServiceTypeNail    ServiceType = "nail"
	ServiceTypeTattoo  ServiceType = "tattoo"
	ServiceTypeMassage ServiceType = "massage"
	ServiceTypeSpa     ServiceType = "spa"
)

// serviceVariants допустимые названия услуг для каждого типа
var serviceVariants = map[ServiceType][]string{
	ServiceTypeHair:    {"hair_cut", "hair_color"},
	ServiceTypeNail:    {"nail_acrylic", "nail_gel"},
	ServiceTypeTattoo:  {"tattoo_small_black", "tattoo_medium_black", "tattoo_small_color", "tattoo_medium_color"},
	ServiceTypeMassage: {"massage_thai", "massage_turkish"},
	ServiceTypeSpa:     {"spa_wellness_jacuzzi", "spa_sauna"},
}

// Service is a bookable offering of a venue
type Service struct {
	ID            int64
	VenueID       int64
	Type          ServiceType
	Name          string
	LengthMinutes int
	Price         float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Length returns the service duration
func (s *Service) Length() time.Duration {
	return time.Duration(s.LengthMinutes) * time.Minute
}

// IsKnownVariant returns true if the name belongs to the service type
func (s *Service) IsKnownVariant() bool {
	for _, name := range serviceVariants[s.Type] {
		if name == s.Name {
			return true
		}
	}
	return false
}
