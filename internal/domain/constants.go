package domain

// Default configuration values
const (
	DefaultSlotStepMinutes           = 15
	DefaultServiceLengthChunkMinutes = 15
	DefaultTimezone                  = "UTC"
)

// Business validation constants
const (
	MaxServiceLengthMinutes = 720 // 12 hours
	MaxCustomerNameLength   = 200
	MaxBookingRangeDays     = 62 // два месяца календаря
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
