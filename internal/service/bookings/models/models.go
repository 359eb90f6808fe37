package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ListStaffBookingsRequest запрос бронирований сотрудника за период [Start, End)
type ListStaffBookingsRequest struct {
	StaffID int64
	Start   time.Time
	End     time.Time
}

// CustomerResponse контакты клиента
type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingResponse бронирование в ответах API
type BookingResponse struct {
	ID        int64            `json:"id"`
	VenueID   int64            `json:"venueId"`
	StaffID   int64            `json:"staffId"`
	ServiceID int64            `json:"serviceId"`
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	Customer  CustomerResponse `json:"customer"`
	CreatedBy int64            `json:"createdBy"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		VenueID:   b.VenueID,
		StaffID:   b.StaffID,
		ServiceID: b.ServiceID,
		Start:     b.Start,
		End:       b.End,
		Customer: CustomerResponse{
			Name:  b.Customer.Name,
			Email: b.Customer.Email,
			Phone: b.Customer.Phone,
		},
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: items, Total: len(items)}
}
