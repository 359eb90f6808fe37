package get_first_available

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getFirstAvailable "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_first_available"
)

// SlotResponse интервал [start, end)
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FirstAvailableResponse HTTP response model. Slot равен null, если свободного времени нет.
type FirstAvailableResponse struct {
	Date     string        `json:"date"`
	Timezone string        `json:"timezone"`
	Open     bool          `json:"open"`
	Slot     *SlotResponse `json:"slot"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFirstAvailable.Response) *FirstAvailableResponse {
	out := &FirstAvailableResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Timezone: resp.Timezone,
		Open:     resp.Open,
	}
	if resp.Slot != nil {
		out.Slot = &SlotResponse{Start: resp.Slot.Start, End: resp.Slot.End}
	}
	return out
}
