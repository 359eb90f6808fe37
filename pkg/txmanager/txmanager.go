package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
)

const (
	// DefaultMaxRetries число повторов сериализуемой транзакции
	DefaultMaxRetries = 3
	// DefaultRetryBackoff пауза перед первым повтором, удваивается на каждом шаге
	DefaultRetryBackoff = 10 * time.Millisecond

	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// ErrTransaction возвращается при ошибках начала/фиксации транзакции
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// RetryObserver получает результат каждого повтора (retried, exhausted)
type RetryObserver interface {
	IncTxRetry(result string)
}

// TransactionManager выполняет функции в транзакции, переданной через контекст
type TransactionManager struct {
	db         TxBeginner
	maxRetries int
	backoff    time.Duration
	observer   RetryObserver
}

// Option настройка менеджера
type Option func(*TransactionManager)

// WithMaxRetries задает число повторов при ошибке сериализации
func WithMaxRetries(n int) Option {
	return func(m *TransactionManager) {
		if n >= 0 {
			m.maxRetries = n
		}
	}
}

// WithBackoff задает начальную паузу перед повтором
func WithBackoff(d time.Duration) Option {
	return func(m *TransactionManager) {
		m.backoff = d
	}
}

// WithObserver подключает счетчик повторов
func WithObserver(o RetryObserver) Option {
	return func(m *TransactionManager) {
		m.observer = o
	}
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{
		db:         db,
		maxRetries: DefaultMaxRetries,
		backoff:    DefaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции READ COMMITTED.
// Если транзакция уже есть в контексте, fn выполняется в ней.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE и повторяет её
// при ошибках сериализации (SQLSTATE 40001, 40P01)
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}
	backoff := m.backoff

	for attempt := 0; ; attempt++ {
		err := m.run(ctx, opts, fn)
		if err == nil || !IsSerializationFailure(err) {
			return err
		}
		if attempt >= m.maxRetries {
			m.observe("exhausted")
			return err
		}
		m.observe("retried")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}
	return nil
}

func (m *TransactionManager) observe(result string) {
	if m.observer != nil {
		m.observer.IncTxRetry(result)
	}
}

// IsSerializationFailure сообщает, что транзакцию можно повторить
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == sqlStateSerializationFailure || pqErr.Code == sqlStateDeadlockDetected
}
