package pgdb

import (
	"context"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/internal/repository/pgdb/converter"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// AlertRepo реализует репозиторий ценовых уведомлений поверх PostgreSQL.
type AlertRepo struct {
	pool *pgxpool.Pool
	conv converter.AlertConverter
}

func NewAlertRepo(pool *pgxpool.Pool, conv converter.AlertConverter) *AlertRepo {
	return &AlertRepo{pool: pool, conv: conv}
}

// ListActive возвращает активные уведомления, свежие первыми.
func (a *AlertRepo) ListActive(ctx context.Context) ([]domain.PriceAlert, error) {
	query := `
		SELECT id, product_id, message, discount, is_active, created_at
		FROM price_alerts
		WHERE is_active = true
		ORDER BY created_at DESC;
	`

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.PriceAlert, 0)
	for rows.Next() {
		var model converter.AlertModel
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.Message,
			&model.Discount, &model.IsActive, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *a.conv.ToEntity(&model))
	}

	return result, rows.Err()
}

func (a *AlertRepo) Create(ctx context.Context, alert *domain.PriceAlert) (*domain.PriceAlert, error) {
	query := `
		INSERT INTO price_alerts (product_id, message, discount, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, product_id, message, discount, is_active, created_at;
	`

	var model converter.AlertModel
	err := a.pool.QueryRow(ctx, query, alert.ProductID, alert.Message, alert.Discount, alert.IsActive).
		Scan(
			&model.ID, &model.ProductID, &model.Message,
			&model.Discount, &model.IsActive, &model.CreatedAt,
		)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(&model), nil
}
