package pgdb

import (
	"context"
	"errors"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/internal/repository/pgdb/converter"
	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool    *pgxpool.Pool
	conv    converter.ProductConverter
	catConv converter.CategoryConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter, catConv converter.CategoryConverter) *ProductRepo {
	return &ProductRepo{
		pool:    pool,
		conv:    conv,
		catConv: catConv,
	}
}

const productColumns = `
	pr.id, pr.name, pr.description, pr.image_key, pr.category_id,
	pr.is_trending, pr.created_at, pr.updated_at,
	cat.id, cat.name, cat.slug, cat.icon, cat.created_at
`

// List возвращает товары вместе с категориями. Пустой slug — весь каталог.
func (p *ProductRepo) List(ctx context.Context, categorySlug string) ([]usecase.ProductWithCategory, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE $1 = '' OR cat.slug = $1
		ORDER BY pr.name;
	`

	rows, err := p.pool.Query(ctx, query, categorySlug)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

// Search ищет товары по подстроке имени без учёта регистра.
func (p *ProductRepo) Search(ctx context.Context, term string, limit int) ([]usecase.ProductWithCategory, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.name ILIKE '%' || $1 || '%'
		ORDER BY pr.name
		LIMIT $2;
	`

	rows, err := p.pool.Query(ctx, query, term, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*usecase.ProductWithCategory, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = $1;
	`

	var (
		model    converter.ProductModel
		catModel converter.CategoryModel
	)
	err := p.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Description, &model.ImageKey, &model.CategoryID,
			&model.IsTrending, &model.CreatedAt, &model.UpdatedAt,
			&catModel.ID, &catModel.Name, &catModel.Slug, &catModel.Icon, &catModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &usecase.ProductWithCategory{
		Product:  *p.conv.ToEntity(&model),
		Category: *p.catConv.ToEntity(&catModel),
	}, nil
}

// Upsert идемпотентно создаёт или обновляет товар по уникальному имени.
// Запись обновляется только при фактическом изменении полей.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH upsert AS (
		INSERT INTO products (name, description, image_key, category_id, is_trending)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name)
		DO UPDATE SET
			description = EXCLUDED.description,
			image_key = EXCLUDED.image_key,
			category_id = EXCLUDED.category_id,
			is_trending = EXCLUDED.is_trending,
			updated_at = NOW()
		WHERE
			products.description IS DISTINCT FROM EXCLUDED.description OR
			products.image_key IS DISTINCT FROM EXCLUDED.image_key OR
			products.category_id IS DISTINCT FROM EXCLUDED.category_id OR
			products.is_trending IS DISTINCT FROM EXCLUDED.is_trending
		RETURNING
			id, name, description, image_key, category_id, is_trending, created_at, updated_at
		)
		SELECT
			id, name, description, image_key, category_id, is_trending, created_at, updated_at
		FROM upsert

		UNION ALL

		SELECT
			id, name, description, image_key, category_id, is_trending, created_at, updated_at
		FROM products
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query,
		product.Name, product.Description, product.ImageKey, product.CategoryID, product.IsTrending,
	).Scan(
		&model.ID, &model.Name, &model.Description, &model.ImageKey, &model.CategoryID,
		&model.IsTrending, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]usecase.ProductWithCategory, error) {
	result := make([]usecase.ProductWithCategory, 0)
	for rows.Next() {
		var (
			model    converter.ProductModel
			catModel converter.CategoryModel
		)
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.ImageKey, &model.CategoryID,
			&model.IsTrending, &model.CreatedAt, &model.UpdatedAt,
			&catModel.ID, &catModel.Name, &catModel.Slug, &catModel.Icon, &catModel.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, usecase.ProductWithCategory{
			Product:  *p.conv.ToEntity(&model),
			Category: *p.catConv.ToEntity(&catModel),
		})
	}

	return result, rows.Err()
}
