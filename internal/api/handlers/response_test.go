package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "нет такой площадки")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: 404, Message: "нет такой площадки"}, body)
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInternalError)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Anna", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestPathAndQueryParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?staffId=5&bad=-1&date=2024-01-02", nil)
	r = mux.SetURLVars(r, map[string]string{"venueId": "12", "zero": "0"})

	id, err := PathInt64(r, "venueId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = PathInt64(r, "zero")
	assert.Error(t, err)
	_, err = PathInt64(r, "missing")
	assert.Error(t, err)

	staff, err := QueryInt64(r, "staffId")
	require.NoError(t, err)
	assert.Equal(t, int64(5), staff)

	_, err = QueryInt64(r, "bad")
	assert.Error(t, err)

	opt, err := OptionalQueryInt64(r, "excludeBookingId")
	require.NoError(t, err)
	assert.Nil(t, opt)

	date, err := QueryTime(r, "date", "2006-01-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), date)

	_, err = QueryTime(r, "month", "2006-01")
	assert.Error(t, err)
}

func TestParseScheduleParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?staffId=7&serviceId=10", nil)
	r = mux.SetURLVars(r, map[string]string{"venueId": "1"})

	params, err := ParseScheduleParams(r)
	require.NoError(t, err)
	assert.Equal(t, ScheduleParams{VenueID: 1, StaffID: 7, ServiceID: 10}, params)

	r = httptest.NewRequest(http.MethodGet, "/?staffId=7", nil)
	r = mux.SetURLVars(r, map[string]string{"venueId": "1"})
	_, err = ParseScheduleParams(r)
	assert.Error(t, err)
}
