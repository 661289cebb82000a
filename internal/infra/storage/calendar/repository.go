package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/dbmetrics"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/psqlbuilder"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// Repository репозиторий ценового календаря: переопределения цен на конкретные
// даты и повторяющиеся праздничные правила категории номеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ценового календаря
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListDateOverrides получает все переопределения цен категории
func (r *Repository) ListDateOverrides(ctx context.Context, categoryID int64) ([]*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"category_id",
		"date",
		"price",
		"created_at",
		"updated_at",
	).
		From("date_overrides").
		Where(squirrel.Eq{"category_id": categoryID}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDateOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.DateOverride, 0)
	for rows.Next() {
		var o domain.DateOverride
		var date time.Time
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&o.ID,
			&o.CategoryID,
			&date,
			&o.Price,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDateOverrides - scan row: %v", ErrScanRow, err)
		}

		o.Date = types.NewDateString(date)
		o.CreatedAt = createdAt.Time
		o.UpdatedAt = updatedAt.Time
		overrides = append(overrides, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDateOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// UpsertDateOverride создает или обновляет переопределение цены на дату.
// Уникальность по (category_id, date) обеспечивается ограничением в БД.
func (r *Repository) UpsertDateOverride(ctx context.Context, override *domain.DateOverride) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_overrides").
		Columns("category_id", "date", "price").
		Values(override.CategoryID, override.Date.String(), override.Price).
		Suffix("ON CONFLICT (category_id, date) DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDateOverride - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDateOverride - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// DeleteDateOverride удаляет переопределение цены на дату
func (r *Repository) DeleteDateOverride(ctx context.Context, categoryID int64, date types.DateString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("date_overrides").
		Where(squirrel.Eq{"category_id": categoryID, "date": date.String()}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// ListHolidayRules получает праздничные правила категории.
// По умолчанию возвращает и отключенные правила (для административного UI);
// фильтрация активных выполняется на стороне ценового калькулятора.
func (r *Repository) ListHolidayRules(ctx context.Context, categoryID int64) ([]*domain.HolidayRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"category_id",
		"name",
		"calendar_type",
		"month",
		"day",
		"price",
		"multiplier",
		"active",
		"created_at",
		"updated_at",
	).
		From("holiday_rules").
		Where(squirrel.Eq{"category_id": categoryID}).
		OrderBy("month ASC, day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidayRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidayRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.HolidayRule, 0)
	for rows.Next() {
		var h domain.HolidayRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.CategoryID,
			&h.Name,
			&h.CalendarType,
			&h.Month,
			&h.Day,
			&h.Price,
			&h.Multiplier,
			&h.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListHolidayRules - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time
		rules = append(rules, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHolidayRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// CreateHolidayRule создает новое праздничное правило
func (r *Repository) CreateHolidayRule(ctx context.Context, rule *domain.HolidayRule) (*domain.HolidayRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holiday_rules").
		Columns(
			"category_id",
			"name",
			"calendar_type",
			"month",
			"day",
			"price",
			"multiplier",
			"active",
		).
		Values(
			rule.CategoryID,
			rule.Name,
			rule.CalendarType,
			rule.Month,
			rule.Day,
			rule.Price,
			rule.Multiplier,
			rule.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHolidayRule - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHolidayRule - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// SetHolidayRuleActive включает или отключает праздничное правило
func (r *Repository) SetHolidayRuleActive(ctx context.Context, ruleID int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("holiday_rules").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ruleID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetHolidayRuleActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetHolidayRuleActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetHolidayRuleActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}
