package update_business_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/venues/models"
)

type VenueService interface {
	UpdateBusinessHours(ctx context.Context, id int64, req *models.UpdateBusinessHoursRequest) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
