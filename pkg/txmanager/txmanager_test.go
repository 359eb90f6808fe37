package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs       []*fakeTx
	isolation []sql.IsolationLevel
	beginErr  error
	commitErr error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{commitErr: b.commitErr}
	b.txs = append(b.txs, tx)
	b.isolation = append(b.isolation, opts.Isolation)
	return tx, nil
}

type countingObserver map[string]int

func (o countingObserver) IncTxRetry(result string) { o[result]++ }

func serializationErr() error {
	return fmt.Errorf("insert booking: %w", &pq.Error{Code: "40001"})
}

func TestDo_CommitsAndPassesTx(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)
	assert.Equal(t, sql.LevelReadCommitted, db.isolation[0])
}

func TestDo_RollsBackOnError(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)
	boom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.Len(t, db.txs, 1)
}

func TestDo_BeginAndCommitErrors(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{beginErr: errors.New("no conn")})
	err := m.Do(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrTransaction)

	m = NewTransactionManager(&fakeBeginner{commitErr: errors.New("lost")})
	err = m.Do(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrTransaction)
}

func TestDoSerializable_RetriesSerializationFailures(t *testing.T) {
	db := &fakeBeginner{}
	observer := countingObserver{}
	m := NewTransactionManager(db, WithBackoff(time.Millisecond), WithObserver(observer))

	calls := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return serializationErr()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, observer["retried"])
	assert.Equal(t, sql.LevelSerializable, db.isolation[0])
	assert.True(t, db.txs[2].committed)
}

func TestDoSerializable_GivesUp(t *testing.T) {
	observer := countingObserver{}
	m := NewTransactionManager(&fakeBeginner{}, WithMaxRetries(1), WithBackoff(time.Millisecond), WithObserver(observer))

	calls := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		calls++
		return serializationErr()
	})
	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, observer["exhausted"])
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{}, WithBackoff(time.Millisecond))
	boom := errors.New("boom")

	calls := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40P01"}))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("plain")))
}
