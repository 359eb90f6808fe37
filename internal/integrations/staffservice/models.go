package staffservice

// Staff сотрудник из справочника персонала
type Staff struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	VenueIDs   []int64 `json:"venueIds"`
	ServiceIDs []int64 `json:"serviceIds"`
}

// WorksAt проверяет, что сотрудник работает на площадке
func (s *Staff) WorksAt(venueID int64) bool {
	return contains(s.VenueIDs, venueID)
}

// Offers проверяет, что сотрудник оказывает услугу
func (s *Staff) Offers(serviceID int64) bool {
	return contains(s.ServiceIDs, serviceID)
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
