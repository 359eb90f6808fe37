package models

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UpdateBusinessHoursRequest новое недельное расписание.
// Ключи - дни недели (monday ... sunday), null или отсутствие ключа - выходной.
type UpdateBusinessHoursRequest struct {
	BusinessHours map[string]*domain.BusinessHoursInterval `json:"businessHours"`
}

// VenueResponse площадка в ответах API
type VenueResponse struct {
	ID            int64                                    `json:"id"`
	Name          string                                   `json:"name"`
	StringAddress string                                   `json:"stringAddress"`
	Region        string                                   `json:"region"`
	District      string                                   `json:"district"`
	Timezone      string                                   `json:"timezone"`
	BusinessHours map[string]*domain.BusinessHoursInterval `json:"businessHours"`
}

// FromDomainVenue конвертирует domain.Venue в ответ. Все семь дней присутствуют, выходные - null.
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	hours := make(map[string]*domain.BusinessHoursInterval, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		hours[string(day)] = v.BusinessHours[day]
	}

	timezone := v.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	return &VenueResponse{
		ID:            v.ID,
		Name:          v.Name,
		StringAddress: v.StringAddress,
		Region:        v.Region,
		District:      v.District,
		Timezone:      timezone,
		BusinessHours: hours,
	}
}
