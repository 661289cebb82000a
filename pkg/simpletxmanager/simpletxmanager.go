// Package simpletxmanager менеджер транзакций поверх обычного *sql.DB
// (без обертки метрик). Контракт ошибок общий с pkg/txmanager.
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-RoomInventoryService/pkg/dbmetrics"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/txmanager"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultMaxRetries = 3
)

// TransactionManager менеджер транзакций над *sql.DB
type TransactionManager struct {
	db         *sql.DB
	timeout    time.Duration
	maxRetries int
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *sql.DB, opts ...txmanager.Options) *TransactionManager {
	m := &TransactionManager{
		db:         db,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
	}
	if len(opts) > 0 {
		if opts[0].Timeout > 0 {
			m.timeout = opts[0].Timeout
		}
		if opts[0].MaxRetries > 0 {
			m.maxRetries = opts[0].MaxRetries
		}
	}
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции с повтором
// при конфликте сериализации
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		err := m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
		if err == nil {
			return nil
		}

		if !txmanager.IsRetryable(err) {
			return err
		}

		lastErr = err
	}

	return fmt.Errorf("%w: %v", txmanager.ErrSerializationFailure, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	txCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	tx, err := m.db.BeginTx(txCtx, opts)
	if err != nil {
		return wrapTimeout(txCtx, fmt.Errorf("begin transaction: %w", err))
	}

	if err := fn(dbmetrics.WithTx(txCtx, tx)); err != nil {
		_ = tx.Rollback()
		return wrapTimeout(txCtx, err)
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return wrapTimeout(txCtx, fmt.Errorf("commit transaction: %w", err))
	}

	return nil
}

func wrapTimeout(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", txmanager.ErrTxTimeout, err)
	}
	return err
}
