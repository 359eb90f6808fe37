package handlers

import "net/http"

// ScheduleParams общие параметры запросов доступности:
// {venueId} из пути, staffId и serviceId из query
type ScheduleParams struct {
	VenueID   int64
	StaffID   int64
	ServiceID int64
}

// ParseScheduleParams читает ScheduleParams из запроса
func ParseScheduleParams(r *http.Request) (ScheduleParams, error) {
	venueID, err := PathInt64(r, "venueId")
	if err != nil {
		return ScheduleParams{}, err
	}
	staffID, err := QueryInt64(r, "staffId")
	if err != nil {
		return ScheduleParams{}, err
	}
	serviceID, err := QueryInt64(r, "serviceId")
	if err != nil {
		return ScheduleParams{}, err
	}
	return ScheduleParams{VenueID: venueID, StaffID: staffID, ServiceID: serviceID}, nil
}
