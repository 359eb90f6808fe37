package staffservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/staff/7":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"name":"Jana","venueIds":[1,2],"serviceIds":[10]}`))
		case "/internal/staff/8":
			_, _ = w.Write([]byte(`{"id":`))
		case "/internal/staff/9":
			w.WriteHeader(http.StatusBadGateway)
		case "/internal/staff/10":
			time.Sleep(200 * time.Millisecond)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetStaff(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/", time.Second, logger.Nop())

	staff, err := client.GetStaff(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Jana", staff.Name)
	assert.True(t, staff.WorksAt(2))
	assert.False(t, staff.WorksAt(3))
	assert.True(t, staff.Offers(10))
	assert.False(t, staff.Offers(11))
}

func TestClient_GetStaff_Errors(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())
	ctx := context.Background()

	_, err := client.GetStaff(ctx, 404)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = client.GetStaff(ctx, 8)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = client.GetStaff(ctx, 9)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetStaff_Timeout(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, 50*time.Millisecond, logger.Nop())

	_, err := client.GetStaff(context.Background(), 10)
	assert.ErrorIs(t, err, ErrInternal)
}
