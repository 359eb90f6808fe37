package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

// CustomerRequest контакты клиента
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID   int64           `json:"venueId"`
	StaffID   int64           `json:"staffId"`
	ServiceID int64           `json:"serviceId"`
	Start     time.Time       `json:"start"` // RFC 3339
	Customer  CustomerRequest `json:"customer"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:    userID,
		VenueID:   r.VenueID,
		StaffID:   r.StaffID,
		ServiceID: r.ServiceID,
		Start:     r.Start,
		Customer: domain.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(&domain.Booking{
		ID:        resp.ID,
		VenueID:   resp.VenueID,
		StaffID:   resp.StaffID,
		ServiceID: resp.ServiceID,
		Start:     resp.Start,
		End:       resp.End,
		Customer:  resp.Customer,
		CreatedBy: resp.CreatedBy,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	})
}
