package get_first_available

import "time"

// Request поиск ближайшего свободного старта сотрудника в пределах дня
type Request struct {
	VenueID   int64
	StaffID   int64
	ServiceID int64
	Date      time.Time
}

// Response первый свободный интервал дня или nil в Slot, если его нет
type Response struct {
	Date     time.Time
	Timezone string
	Open     bool
	Slot     *Slot
}

// Slot интервал [Start, End)
type Slot struct {
	Start time.Time
	End   time.Time
}
