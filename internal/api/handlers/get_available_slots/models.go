package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

// SlotResponse интервал [start, end)
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Open     bool           `json:"open"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Start: s.Start, End: s.End})
	}
	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Timezone: resp.Timezone,
		Open:     resp.Open,
		Slots:    slots,
	}
}
