package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalidCustomer возвращается при некорректных контактах клиента
var ErrInvalidCustomer = errors.New("domain: invalid customer")

// Customer contact data attached to a booking created from administration
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Normalized returns a copy with surrounding whitespace removed
func (c Customer) Normalized() Customer {
	return Customer{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
}

// Validate проверяет контакты клиента: имя обязательно, email и телефон опциональны
func (c Customer) Validate() error {
	c = c.Normalized()
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}
	if utf8.RuneCountInString(c.Name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidCustomer, MaxCustomerNameLength)
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return fmt.Errorf("%w: invalid email", ErrInvalidCustomer)
		}
	}
	if c.Phone != "" && !isPhone(c.Phone) {
		return fmt.Errorf("%w: invalid phone", ErrInvalidCustomer)
	}
	return nil
}

// isPhone допускает "+" в начале, цифры, пробелы и дефисы, от 6 до 15 цифр
func isPhone(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= 6 && digits <= 15
}

// Booking represents an appointment of one staff member for one service
type Booking struct {
	ID        int64
	VenueID   int64
	StaffID   int64
	ServiceID int64
	Start     time.Time
	End       time.Time
	Customer  Customer
	CreatedBy int64 // ID сотрудника, создавшего бронирование

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the booked interval length
func (b *Booking) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// StaffBookingsFilter фильтр для получения бронирований сотрудника
type StaffBookingsFilter struct {
	StaffID          int64     // Обязательный параметр
	Start            time.Time // Начало периода (включительно)
	End              time.Time // Конец периода (не включительно)
	ExcludeBookingID *int64    // Исключить бронирование (при редактировании)
}
