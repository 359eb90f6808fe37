package models

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ServiceInput услуга в запросе upsert
type ServiceInput struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Length int     `json:"length"` // минуты
	Price  float64 `json:"price"`
}

// UpsertManyRequest пакетное создание/обновление услуг одной площадки
type UpsertManyRequest struct {
	VenueID  int64          `json:"venueId"`
	Services []ServiceInput `json:"services"`
}

// ServiceResponse услуга в ответах API
type ServiceResponse struct {
	ID      int64   `json:"id"`
	VenueID int64   `json:"venueId"`
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	Length  int     `json:"length"`
	Price   float64 `json:"price"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// FromDomainService конвертирует domain.Service в ответ
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:      s.ID,
		VenueID: s.VenueID,
		Type:    string(s.Type),
		Name:    s.Name,
		Length:  s.LengthMinutes,
		Price:   s.Price,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	items := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, FromDomainService(s))
	}
	return &ServiceListResponse{Services: items, Total: len(items)}
}
