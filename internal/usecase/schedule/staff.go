package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/integrations/staffservice"
)

// StaffDirectory клиент справочника персонала
type StaffDirectory interface {
	GetStaff(ctx context.Context, staffID int64) (*staffservice.Staff, error)
}

// StaffVerifier проверяет, что сотрудник может оказать услугу на площадке
type StaffVerifier struct {
	directory StaffDirectory
	logger    Logger
}

// NewStaffVerifier создает проверку сотрудника
func NewStaffVerifier(directory StaffDirectory, logger Logger) *StaffVerifier {
	return &StaffVerifier{directory: directory, logger: logger}
}

// Verify возвращает nil, если сотрудник работает на площадке venueID и оказывает услугу serviceID
func (v *StaffVerifier) Verify(ctx context.Context, staffID, venueID, serviceID int64) error {
	staff, err := v.directory.GetStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffservice.ErrStaffNotFound) {
			v.logger.Warn("Schedule: staff id=%d not found", staffID)
			return ErrStaffNotFound
		}
		v.logger.Error("Schedule: failed to get staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: %v", ErrStaffDirectoryUnavailable, err)
	}

	if !staff.WorksAt(venueID) {
		v.logger.Warn("Schedule: staff id=%d does not work at venue id=%d", staffID, venueID)
		return ErrStaffNotAtVenue
	}
	if !staff.Offers(serviceID) {
		v.logger.Warn("Schedule: staff id=%d does not offer service id=%d", staffID, serviceID)
		return ErrStaffDoesNotOffer
	}

	return nil
}
