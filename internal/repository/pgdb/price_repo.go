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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// foreignKeyViolation — код ошибки PostgreSQL для нарушения внешнего ключа.
const foreignKeyViolation = "23503"

// PriceRepo реализует репозиторий ценовых предложений поверх PostgreSQL.
// Запись уникальна по паре (товар, ритейлер).
type PriceRepo struct {
	pool *pgxpool.Pool
	conv converter.PriceConverter
}

func NewPriceRepo(pool *pgxpool.Pool, conv converter.PriceConverter) *PriceRepo {
	return &PriceRepo{pool: pool, conv: conv}
}

const priceColumns = `
	pp.id, pp.product_id, pp.price, pp.original_price, pp.in_stock, pp.last_updated,
	r.id, r.name, r.slug, r.rating, r.delivery_info, r.website, r.created_at
`

// ListByProduct возвращает все предложения по товару вместе с ритейлерами.
func (p *PriceRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.PriceOffer, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM product_prices pp
		JOIN retailers r ON pp.retailer_id = r.id
		WHERE pp.product_id = $1
		ORDER BY pp.price;
	`

	rows, err := p.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.PriceOffer, 0)
	for rows.Next() {
		var model converter.PriceModel
		if err := scanPrice(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}

	return result, rows.Err()
}

func (p *PriceRepo) ListIDs(ctx context.Context) ([]int64, error) {
	query := `SELECT id FROM product_prices ORDER BY id;`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (p *PriceRepo) GetByID(ctx context.Context, id int64) (*domain.PriceOffer, error) {
	query := `
		SELECT ` + priceColumns + `
		FROM product_prices pp
		JOIN retailers r ON pp.retailer_id = r.id
		WHERE pp.id = $1;
	`

	var model converter.PriceModel
	if err := scanPrice(p.pool.QueryRow(ctx, query, id), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrPriceNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Upsert создаёт или обновляет предложение ритейлера по товару. Предыдущая
// цена захватывается в той же команде и возвращается вызывающему: по ней
// строится событие изменения цены.
func (p *PriceRepo) Upsert(ctx context.Context, req *usecase.UpsertPriceReq) (*usecase.UpsertPriceRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH prev AS (
			SELECT price FROM product_prices
			WHERE product_id = $1 AND retailer_id = $2
		), upsert AS (
			INSERT INTO product_prices (product_id, retailer_id, price, original_price, in_stock, last_updated)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (product_id, retailer_id)
			DO UPDATE SET
				price = EXCLUDED.price,
				original_price = EXCLUDED.original_price,
				in_stock = EXCLUDED.in_stock,
				last_updated = NOW()
			RETURNING id, product_id, retailer_id, price, original_price, in_stock, last_updated
		)
		SELECT
			u.id, u.product_id, u.price, u.original_price, u.in_stock, u.last_updated,
			r.id, r.name, r.slug, r.rating, r.delivery_info, r.website, r.created_at,
			prev.price
		FROM upsert u
		JOIN retailers r ON u.retailer_id = r.id
		LEFT JOIN prev ON true;
	`

	var (
		model converter.PriceModel
		res   usecase.UpsertPriceRes
	)
	err = tx.QueryRow(ctx, query,
		req.ProductID, req.RetailerID, req.Price, req.OriginalPrice, req.InStock,
	).Scan(
		&model.ID, &model.ProductID, &model.Price, &model.OriginalPrice, &model.InStock, &model.LastUpdated,
		&model.Retailer.ID, &model.Retailer.Name, &model.Retailer.Slug, &model.Retailer.Rating,
		&model.Retailer.DeliveryInfo, &model.Retailer.Website, &model.Retailer.CreatedAt,
		&res.OldPrice,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidRetailerID)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res.Offer = p.conv.ToEntity(&model)

	return &res, nil
}

// Update частично обновляет предложение по идентификатору. Незаполненные поля
// патча сохраняют прежние значения.
func (p *PriceRepo) Update(ctx context.Context, id int64, patch *usecase.UpdatePriceReq) (*usecase.UpsertPriceRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH prev AS (
			SELECT price FROM product_prices WHERE id = $1
		), updated AS (
			UPDATE product_prices
			SET
				price = COALESCE($2, price),
				original_price = COALESCE($3, original_price),
				in_stock = COALESCE($4, in_stock),
				last_updated = NOW()
			WHERE id = $1
			RETURNING id, product_id, retailer_id, price, original_price, in_stock, last_updated
		)
		SELECT
			u.id, u.product_id, u.price, u.original_price, u.in_stock, u.last_updated,
			r.id, r.name, r.slug, r.rating, r.delivery_info, r.website, r.created_at,
			prev.price
		FROM updated u
		JOIN retailers r ON u.retailer_id = r.id
		JOIN prev ON true;
	`

	var (
		model converter.PriceModel
		res   usecase.UpsertPriceRes
	)
	err = tx.QueryRow(ctx, query, id, patch.Price, patch.OriginalPrice, patch.InStock).
		Scan(
			&model.ID, &model.ProductID, &model.Price, &model.OriginalPrice, &model.InStock, &model.LastUpdated,
			&model.Retailer.ID, &model.Retailer.Name, &model.Retailer.Slug, &model.Retailer.Rating,
			&model.Retailer.DeliveryInfo, &model.Retailer.Website, &model.Retailer.CreatedAt,
			&res.OldPrice,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrPriceNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	res.Offer = p.conv.ToEntity(&model)

	return &res, nil
}

func scanPrice(row pgx.Row, model *converter.PriceModel) error {
	return row.Scan(
		&model.ID, &model.ProductID, &model.Price, &model.OriginalPrice, &model.InStock, &model.LastUpdated,
		&model.Retailer.ID, &model.Retailer.Name, &model.Retailer.Slug, &model.Retailer.Rating,
		&model.Retailer.DeliveryInfo, &model.Retailer.Website, &model.Retailer.CreatedAt,
	)
}
