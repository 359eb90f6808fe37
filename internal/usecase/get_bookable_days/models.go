package get_bookable_days

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request календарь доступности сотрудника на месяц
type Request struct {
	VenueID   int64
	StaffID   int64
	ServiceID int64
	Month     time.Time // Берутся только год и месяц
}

// Response дни месяца по порядку, начиная с первого числа
type Response struct {
	Month    time.Time
	Timezone string
	Weekdays []domain.Weekday // Подписи колонок календаря, с понедельника
	Days     []Day
}

// Day доступность одного дня
type Day struct {
	Date      time.Time
	Weekday   domain.Weekday
	Bookable  bool
	FirstSlot *Slot
}

// Slot интервал [Start, End)
type Slot struct {
	Start time.Time
	End   time.Time
}
