package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

// toDomainService проверяет услугу и переводит её в domain.
// Длительность кратна chunkMinutes: движок ищет слоты с тем же шагом.
func toDomainService(venueID int64, in models.ServiceInput, chunkMinutes int) (*domain.Service, error) {
	svc := &domain.Service{
		VenueID:       venueID,
		Type:          domain.ServiceType(in.Type),
		Name:          in.Name,
		LengthMinutes: in.Length,
		Price:         in.Price,
	}

	if !svc.IsKnownVariant() {
		return nil, fmt.Errorf("%w: unknown service %q of type %q", ErrInvalidService, in.Name, in.Type)
	}
	if in.Length <= 0 {
		return nil, fmt.Errorf("%w: %s length must be positive", ErrInvalidService, in.Name)
	}
	if in.Length%chunkMinutes != 0 {
		return nil, fmt.Errorf("%w: %s length %d is not a multiple of %d minutes", ErrInvalidService, in.Name, in.Length, chunkMinutes)
	}
	if in.Length > domain.MaxServiceLengthMinutes {
		return nil, fmt.Errorf("%w: %s length %d exceeds %d minutes", ErrInvalidService, in.Name, in.Length, domain.MaxServiceLengthMinutes)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: %s price must not be negative", ErrInvalidService, in.Name)
	}

	return svc, nil
}
