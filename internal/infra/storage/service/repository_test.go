package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func TestUpsertQuery(t *testing.T) {
	svc := &domain.Service{VenueID: 3, Type: domain.ServiceTypeHair, Name: "hair_cut", LengthMinutes: 45, Price: 650}

	query, args, err := upsertQuery(svc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO services (venue_id,type,name,length_minutes,price) VALUES ($1,$2,$3,$4,$5)"))
	assert.Contains(t, query, "ON CONFLICT (venue_id, type, name) DO UPDATE")
	assert.True(t, strings.HasSuffix(query, "RETURNING id, created_at, updated_at"))
	assert.Equal(t, []interface{}{int64(3), domain.ServiceTypeHair, "hair_cut", 45, 650.0}, args)
}
