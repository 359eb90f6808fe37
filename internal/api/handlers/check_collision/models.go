package check_collision

import (
	"time"

	checkCollision "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_collision"
)

// CollisionResponse HTTP response model
type CollisionResponse struct {
	Collision bool      `json:"collision"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkCollision.Response) *CollisionResponse {
	return &CollisionResponse{
		Collision: resp.Collision,
		Start:     resp.Start,
		End:       resp.End,
	}
}
