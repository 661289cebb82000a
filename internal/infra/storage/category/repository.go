package category

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/dbmetrics"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения каталога категорий номеров.
// Каталог ведется внешним административным сервисом, поэтому здесь только чтение.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var categoryColumns = []string{
	"id",
	"code",
	"name",
	"total_units",
	"base_price",
	"weekend_price",
	"created_at",
	"updated_at",
}

// GetByID получает категорию номеров по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RoomCategory, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCode получает категорию номеров по короткому коду (например "std")
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.RoomCategory, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code}, "GetByCode")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.RoomCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(categoryColumns...).
		From("room_categories").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var cat domain.RoomCategory
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cat.ID,
		&cat.Code,
		&cat.Name,
		&cat.TotalUnits,
		&cat.BasePrice,
		&cat.WeekendPrice,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan category: %v", ErrScanRow, op, err)
	}

	cat.CreatedAt = createdAt.Time
	cat.UpdatedAt = updatedAt.Time

	return &cat, nil
}

// List получает все категории номеров
func (r *Repository) List(ctx context.Context) ([]*domain.RoomCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(categoryColumns...).
		From("room_categories").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.RoomCategory, 0)
	for rows.Next() {
		var cat domain.RoomCategory
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&cat.ID,
			&cat.Code,
			&cat.Name,
			&cat.TotalUnits,
			&cat.BasePrice,
			&cat.WeekendPrice,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		cat.CreatedAt = createdAt.Time
		cat.UpdatedAt = updatedAt.Time
		categories = append(categories, &cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}
