package availability

import "time"

// Сравнения с точностью до минуты. Оба момента усекаются до целой минуты,
// поэтому 10:30:00 и 10:30:59 считаются равными.

// TruncateToMinute drops seconds and sub-second parts, keeping the location
func TruncateToMinute(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, t.Location())
}

// SameMinute reports whether a and b fall within the same minute
func SameMinute(a, b time.Time) bool {
	return TruncateToMinute(a).Equal(TruncateToMinute(b))
}

// MinuteBefore reports whether a is before b at minute granularity
func MinuteBefore(a, b time.Time) bool {
	return TruncateToMinute(a).Before(TruncateToMinute(b))
}

// MinuteAfter reports whether a is after b at minute granularity
func MinuteAfter(a, b time.Time) bool {
	return TruncateToMinute(a).After(TruncateToMinute(b))
}

// SameMinuteOrAfter reports whether a is not before b at minute granularity
func SameMinuteOrAfter(a, b time.Time) bool {
	return !MinuteBefore(a, b)
}

// SameMinuteOrBefore reports whether a is not after b at minute granularity
func SameMinuteOrBefore(a, b time.Time) bool {
	return !MinuteAfter(a, b)
}

// sameDay проверяет, что два момента относятся к одному календарному дню в локации a
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
