package schedule

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("schedule: venue not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("schedule: service not found")

	// ErrServiceNotAtVenue возвращается, когда услуга принадлежит другой площадке
	ErrServiceNotAtVenue = errors.New("schedule: service is not offered at this venue")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("schedule: internal error")
)

var (
	// ErrStaffNotFound возвращается, когда сотрудника нет в справочнике
	ErrStaffNotFound = errors.New("schedule: staff not found")

	// ErrStaffNotAtVenue возвращается, когда сотрудник не работает на площадке
	ErrStaffNotAtVenue = errors.New("schedule: staff does not work at this venue")

	// ErrStaffDoesNotOffer возвращается, когда сотрудник не оказывает услугу
	ErrStaffDoesNotOffer = errors.New("schedule: staff does not offer this service")

	// ErrStaffDirectoryUnavailable возвращается, когда справочник персонала не отвечает
	ErrStaffDirectoryUnavailable = errors.New("schedule: staff directory unavailable")
)
