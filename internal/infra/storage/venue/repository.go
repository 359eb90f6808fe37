package venue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const table = "venues"

// Repository репозиторий площадок. Рабочие часы хранятся в JSONB-колонке business_hours.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Venue
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.Name,
		&v.StringAddress,
		&v.Region,
		&v.District,
		&v.Timezone,
		&v.BusinessHours,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return &v, nil
}

// UpdateBusinessHours заменяет недельное расписание площадки целиком
func (r *Repository) UpdateBusinessHours(ctx context.Context, id int64, hours domain.WeeklyBusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateBusinessHoursQuery(id, hours)
	if err != nil {
		return fmt.Errorf("%w: UpdateBusinessHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBusinessHours - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateBusinessHours - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

func selectByIDQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"id",
		"name",
		"string_address",
		"region",
		"district",
		"timezone",
		"business_hours",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// updateBusinessHoursQuery расписание уходит в JSONB через WeeklyBusinessHours.Value
func updateBusinessHoursQuery(id int64, hours domain.WeeklyBusinessHours) (string, []interface{}, error) {
	return psqlbuilder.Update(table).
		Set("business_hours", hours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
