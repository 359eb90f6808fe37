package get_bookable_days

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getBookableDays "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_bookable_days"
)

// SlotResponse интервал [start, end)
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DayResponse доступность одного дня
type DayResponse struct {
	Date      string        `json:"date"`
	Weekday   string        `json:"weekday"`
	Bookable  bool          `json:"bookable"`
	FirstSlot *SlotResponse `json:"firstSlot"`
}

// BookableDaysResponse HTTP response model
type BookableDaysResponse struct {
	Month    string        `json:"month"`
	Timezone string        `json:"timezone"`
	Weekdays []string      `json:"weekdays"`
	Days     []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookableDays.Response) *BookableDaysResponse {
	weekdays := make([]string, 0, len(resp.Weekdays))
	for _, d := range resp.Weekdays {
		weekdays = append(weekdays, string(d))
	}

	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		item := DayResponse{
			Date:     d.Date.Format(domain.DateFormat),
			Weekday:  string(d.Weekday),
			Bookable: d.Bookable,
		}
		if d.FirstSlot != nil {
			item.FirstSlot = &SlotResponse{Start: d.FirstSlot.Start, End: d.FirstSlot.End}
		}
		days = append(days, item)
	}

	return &BookableDaysResponse{
		Month:    resp.Month.Format(domain.MonthFormat),
		Timezone: resp.Timezone,
		Weekdays: weekdays,
		Days:     days,
	}
}
