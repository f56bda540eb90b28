package pgdb

import (
	"context"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий справочника категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{
		pool: pool,
		conv: conv,
	}
}

// ListActive возвращает активные категории в алфавитном порядке.
func (c *CategoryRepo) ListActive(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, parent_category, description, is_active, created_at
		FROM categories
		WHERE is_active = TRUE
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.CategoryModel
	for rows.Next() {
		var model converter.CategoryModel
		err = rows.Scan(&model.ID, &model.Name, &model.ParentCategory, &model.Description, &model.IsActive, &model.CreatedAt)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}
	if err = rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}
