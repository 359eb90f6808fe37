package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"staff_id": 7}).
		Where(squirrel.Lt{"start_time": "2024-01-02"}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE staff_id = $1 AND start_time < $2", query)
	assert.Equal(t, []interface{}{7, "2024-01-02"}, args)

	query, _, err = Delete("bookings").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bookings WHERE id = $1", query)

	query, _, err = Update("venues").Set("name", "x").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE venues SET name = $1 WHERE id = $2", query)

	query, _, err = Insert("services").Columns("name").Values("cut").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO services (name) VALUES ($1)", query)
}
