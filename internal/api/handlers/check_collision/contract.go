package check_collision

import (
	"context"

	checkCollision "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_collision"
)

type CheckCollisionUseCase interface {
	Execute(ctx context.Context, req *checkCollision.Request) (*checkCollision.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
