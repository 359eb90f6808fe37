package snap_booking_time

import "time"

// Request выбранное пользователем время начала
type Request struct {
	VenueID          int64
	StaffID          int64
	ServiceID        int64
	Candidate        time.Time
	ExcludeBookingID *int64
}

// Response скорректированный старт в часовом поясе площадки.
// OK равен false, если в этот день записаться нельзя.
type Response struct {
	Start time.Time
	End   time.Time
	OK    bool
}
