package service

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

const table = "services"

var columns = []string{"id", "venue_id", "type", "name", "length_minutes", "price", "created_at", "updated_at"}

// Repository репозиторий каталога услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// ListByVenue получает услуги площадки, отсортированные по типу и названию
func (r *Repository) ListByVenue(ctx context.Context, venueID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("type ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByVenue - scan service: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - iterate rows: %v", ErrScanRow, err)
	}

	return services, nil
}

// Upsert создает услугу или обновляет длительность и цену существующей.
// Ключ услуги - (venue_id, type, name).
func (r *Repository) Upsert(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upsertQuery(svc)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return svc, nil
}

func upsertQuery(svc *domain.Service) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns("venue_id", "type", "name", "length_minutes", "price").
		Values(svc.VenueID, svc.Type, svc.Name, svc.LengthMinutes, svc.Price).
		Suffix("ON CONFLICT (venue_id, type, name) DO UPDATE SET " +
			"length_minutes = EXCLUDED.length_minutes, price = EXCLUDED.price, updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	if err := row.Scan(
		&s.ID,
		&s.VenueID,
		&s.Type,
		&s.Name,
		&s.LengthMinutes,
		&s.Price,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
