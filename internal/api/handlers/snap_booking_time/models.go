package snap_booking_time

import (
	"time"

	snapBookingTime "github.com/m04kA/SMC-SalonBooking/internal/usecase/snap_booking_time"
)

// SnapResponse HTTP response model
type SnapResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	OK    bool      `json:"ok"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *snapBookingTime.Response) *SnapResponse {
	return &SnapResponse{Start: resp.Start, End: resp.End, OK: resp.OK}
}
