package get_available_slots

import "time"

// Request запрос свободных слотов сотрудника на день
type Request struct {
	VenueID   int64
	StaffID   int64
	ServiceID int64
	Date      time.Time // Календарный день, время игнорируется
}

// Response свободные слоты дня в часовом поясе площадки
type Response struct {
	Date     time.Time // Полночь дня по времени площадки
	Timezone string
	Open     bool // false, если площадка в этот день не работает
	Slots    []Slot
}

// Slot свободный интервал [Start, End) длиной в услугу
type Slot struct {
	Start time.Time
	End   time.Time
}
