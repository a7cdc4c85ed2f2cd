package pgdb

import (
	"context"
	"errors"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/internal/repository/pgdb/converter"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, icon, created_at
		FROM categories
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Slug, &model.Icon, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}

	return result, rows.Err()
}

func (c *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, icon, created_at
		FROM categories
		WHERE slug = $1;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, slug).
		Scan(&model.ID, &model.Name, &model.Slug, &model.Icon, &model.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Create идемпотентно создаёт категорию по slug. При конфликте возвращается
// уже существующая запись, поэтому RETURNING всегда даёт строку.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO categories (name, slug, icon) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET name = categories.name
		RETURNING id, name, slug, icon, created_at;
	`

	var model converter.CategoryModel
	if err := tx.QueryRow(ctx, query, category.Name, category.Slug, category.Icon).
		Scan(&model.ID, &model.Name, &model.Slug, &model.Icon, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
