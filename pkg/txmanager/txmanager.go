// Package txmanager менеджер транзакций поверх обертки dbmetrics.DB.
// Управляет сериализуемыми транзакциями с ограниченным таймаутом
// и повтором при serialization failure.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/HMS-RoomInventoryService/pkg/dbmetrics"
)

var (
	// ErrSerializationFailure возвращается, когда все повторы транзакции
	// исчерпаны из-за конфликтов сериализации (SQLSTATE 40001 / 40P01)
	ErrSerializationFailure = errors.New("txmanager: serialization failure, retries exhausted")

	// ErrTxTimeout возвращается при превышении таймаута транзакции
	ErrTxTimeout = errors.New("txmanager: transaction timeout")
)

// Коды PostgreSQL, при которых транзакцию безопасно повторить целиком
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultMaxRetries = 3
)

// TxBeginner интерфейс для начала транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Options настройки менеджера транзакций. Нулевые значения заменяются дефолтами.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db         TxBeginner
	timeout    time.Duration
	maxRetries int
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts ...Options) *TransactionManager {
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

// DoSerializable выполняет fn в сериализуемой транзакции с повтором при
// конфликте сериализации. Откат при любой ошибке, частичных записей не остается.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		err := m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
		if err == nil {
			return nil
		}

		if !IsRetryable(err) {
			return err
		}

		lastErr = err
	}

	return fmt.Errorf("%w: %v", ErrSerializationFailure, lastErr)
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

// IsRetryable возвращает true для ошибок, при которых транзакцию
// безопасно выполнить заново целиком
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure || string(pqErr.Code) == pqDeadlockDetected
	}
	return false
}

// wrapTimeout подменяет ошибку на ErrTxTimeout, если причиной был дедлайн транзакции
func wrapTimeout(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTxTimeout, err)
	}
	return err
}
