package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64 // ID сотрудника, который создает бронирование (из заголовка авторизации)
	VenueID   int64
	StaffID   int64
	ServiceID int64
	Start     time.Time
	Customer  domain.Customer
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	VenueID   int64
	StaffID   int64
	ServiceID int64
	Start     time.Time // В часовом поясе площадки
	End       time.Time
	Customer  domain.Customer
	CreatedBy int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		VenueID:   b.VenueID,
		StaffID:   b.StaffID,
		ServiceID: b.ServiceID,
		Start:     b.Start,
		End:       b.End,
		Customer:  b.Customer,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
