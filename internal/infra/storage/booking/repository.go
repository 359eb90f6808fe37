package booking

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

const table = "bookings"

var columns = []string{
	"id",
	"venue_id",
	"staff_id",
	"service_id",
	"start_time",
	"end_time",
	"customer_name",
	"customer_email",
	"customer_phone",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"venue_id",
			"staff_id",
			"service_id",
			"start_time",
			"end_time",
			"customer_name",
			"customer_email",
			"customer_phone",
			"created_by",
		).
		Values(
			booking.VenueID,
			booking.StaffID,
			booking.ServiceID,
			booking.Start,
			booking.End,
			booking.Customer.Name,
			booking.Customer.Email,
			booking.Customer.Phone,
			booking.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByStaffWithFilter получает бронирования сотрудника, начинающиеся в периоде
// [filter.Start, filter.End), по возрастанию времени начала.
//
// Внутри транзакции строки блокируются (FOR UPDATE): создание и перенос
// бронирования проверяют пересечения и пишут в одной транзакции.
func (r *Repository) GetByStaffWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := staffBookingsQuery(filter, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByStaffWithFilter - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStaffWithFilter - iterate rows: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// Update переносит бронирование: сотрудник, услуга, время и контакты клиента
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("staff_id", booking.StaffID).
		Set("service_id", booking.ServiceID).
		Set("start_time", booking.Start).
		Set("end_time", booking.End).
		Set("customer_name", booking.Customer.Name).
		Set("customer_email", booking.Customer.Email).
		Set("customer_phone", booking.Customer.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func staffBookingsQuery(filter domain.StaffBookingsFilter, lock bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"staff_id": filter.StaffID}).
		Where(squirrel.GtOrEq{"start_time": filter.Start}).
		Where(squirrel.Lt{"start_time": filter.End}).
		OrderBy("start_time ASC")

	if filter.ExcludeBookingID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *filter.ExcludeBookingID})
	}

	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID,
		&b.VenueID,
		&b.StaffID,
		&b.ServiceID,
		&b.Start,
		&b.End,
		&b.Customer.Name,
		&b.Customer.Email,
		&b.Customer.Phone,
		&b.CreatedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
