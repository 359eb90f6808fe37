package venue

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func TestSelectByIDQuery(t *testing.T) {
	query, args, err := selectByIDQuery(5)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, name, string_address, region, district, timezone, business_hours, created_at, updated_at FROM venues WHERE id = $1",
		query)
	assert.Equal(t, []interface{}{int64(5)}, args)
}

func TestUpdateBusinessHoursQuery(t *testing.T) {
	hours := domain.WeeklyBusinessHours{
		domain.Monday:   {OpeningTime: domain.ClockTime{Hour: 9}, ClosingTime: domain.ClockTime{Hour: 17, Minute: 30}},
		domain.Saturday: {OpeningTime: domain.ClockTime{Hour: 10}, ClosingTime: domain.ClockTime{Hour: 14}},
	}

	query, args, err := updateBusinessHoursQuery(5, hours)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE venues SET business_hours = $1, updated_at = NOW() WHERE id = $2", query)
	require.Len(t, args, 2)
	assert.Equal(t, int64(5), args[1])

	// JSONB туда и обратно, как это делает драйвер
	valuer, ok := args[0].(driver.Valuer)
	require.True(t, ok)
	raw, err := valuer.Value()
	require.NoError(t, err)

	var scanned domain.WeeklyBusinessHours
	require.NoError(t, scanned.Scan(raw))
	require.NotNil(t, scanned[domain.Monday])
	assert.Equal(t, domain.ClockTime{Hour: 17, Minute: 30}, scanned[domain.Monday].ClosingTime)
	require.NotNil(t, scanned[domain.Saturday])
	assert.Equal(t, 10, scanned[domain.Saturday].OpeningTime.Hour)
	assert.Nil(t, scanned[domain.Sunday])
}
