package pgdb

import (
	"context"
	"errors"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/internal/repository/pgdb/converter"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// RetailerRepo реализует репозиторий ритейлеров поверх PostgreSQL.
type RetailerRepo struct {
	pool *pgxpool.Pool
	conv converter.RetailerConverter
}

func NewRetailerRepo(pool *pgxpool.Pool, conv converter.RetailerConverter) *RetailerRepo {
	return &RetailerRepo{pool: pool, conv: conv}
}

func (r *RetailerRepo) List(ctx context.Context) ([]domain.Retailer, error) {
	query := `
		SELECT id, name, slug, rating, delivery_info, website, created_at
		FROM retailers
		ORDER BY name;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Retailer, 0)
	for rows.Next() {
		var model converter.RetailerModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.Rating,
			&model.DeliveryInfo, &model.Website, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *r.conv.ToEntity(&model))
	}

	return result, rows.Err()
}

func (r *RetailerRepo) GetByID(ctx context.Context, id int64) (*domain.Retailer, error) {
	query := `
		SELECT id, name, slug, rating, delivery_info, website, created_at
		FROM retailers
		WHERE id = $1;
	`

	var model converter.RetailerModel
	err := r.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Slug, &model.Rating,
			&model.DeliveryInfo, &model.Website, &model.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrRetailerNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}
