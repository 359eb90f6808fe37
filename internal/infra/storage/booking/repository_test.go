package booking

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func TestStaffBookingsQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	query, args, err := staffBookingsQuery(domain.StaffBookingsFilter{StaffID: 7, Start: start, End: end}, false)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE staff_id = $1 AND start_time >= $2 AND start_time < $3")
	assert.Contains(t, query, "ORDER BY start_time ASC")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{int64(7), start, end}, args)
}

func TestStaffBookingsQuery_ExcludeAndLock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.StaffBookingsFilter{
		StaffID:          7,
		Start:            start,
		End:              start.AddDate(0, 0, 1),
		ExcludeBookingID: ptr.Ptr(int64(99)),
	}

	query, args, err := staffBookingsQuery(filter, true)
	require.NoError(t, err)
	assert.Contains(t, query, "id <> $4")
	assert.True(t, strings.HasSuffix(query, "FOR UPDATE"))
	assert.Equal(t, int64(99), args[3])
}

type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanBooking(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	row := fakeRow{values: []interface{}{
		int64(1), int64(2), int64(3), int64(4),
		start, start.Add(30 * time.Minute),
		"Anna", "anna@example.com", "+420123",
		int64(5), start, start,
	}}

	b, err := scanBooking(row)
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.StaffID)
	assert.Equal(t, 30*time.Minute, b.Duration())
	assert.Equal(t, "anna@example.com", b.Customer.Email)
	assert.Equal(t, int64(5), b.CreatedBy)

	_, err = scanBooking(fakeRow{err: errors.New("boom")})
	assert.Error(t, err)
}
