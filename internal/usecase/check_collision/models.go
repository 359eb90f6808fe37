package check_collision

import "time"

// Request проверка, можно ли начать услугу у сотрудника в момент Start
type Request struct {
	VenueID          int64
	StaffID          int64
	ServiceID        int64
	Start            time.Time
	ExcludeBookingID *int64 // Редактируемое бронирование не считается пересечением
}

// Response результат проверки. Start и End в часовом поясе площадки.
type Response struct {
	Collision bool
	Start     time.Time
	End       time.Time
}
