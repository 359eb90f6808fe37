package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venues: venue not found")

	// ErrInvalidBusinessHours возвращается при некорректном расписании
	ErrInvalidBusinessHours = errors.New("venues: invalid business hours")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("venues: internal error")
)
