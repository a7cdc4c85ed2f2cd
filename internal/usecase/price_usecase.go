package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// maxPrice — верхняя граница цены, защита от мусорных значений.
var maxPrice = decimal.NewFromInt(1_000_000)

// PriceUseCase — запись цен ритейлеров. Каждое изменение фиксируется
// событием в outbox в той же транзакции.
type PriceUseCase struct {
	priceRepo   PriceRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewPriceUC(
	priceRepo PriceRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *PriceUseCase {
	return &PriceUseCase{
		priceRepo:   priceRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// UpsertPrice создаёт или обновляет предложение ритейлера по товару.
func (p *PriceUseCase) UpsertPrice(ctx context.Context, req *UpsertPriceReq) (*domain.PriceOffer, error) {
	const op = "PriceUseCase.UpsertPrice"

	var err error
	if err = validatePrice(req.Price); err != nil {
		return nil, e.Wrap(op, err)
	}
	if req.OriginalPrice != nil {
		if err = validatePrice(*req.OriginalPrice); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	if _, err = p.productRepo.GetByID(ctx, req.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	res, err := p.priceRepo.Upsert(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	eventType := EventPriceCreated
	if res.OldPrice != nil {
		eventType = EventPriceChanged
	}
	if err = p.writeOutboxEvent(ctx, eventType, res); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateComparison(ctx, res.Offer.ProductID)

	return res.Offer, nil
}

// UpdatePrice частично обновляет существующее предложение по его идентификатору.
func (p *PriceUseCase) UpdatePrice(ctx context.Context, id int64, req *UpdatePriceReq) (*domain.PriceOffer, error) {
	const op = "PriceUseCase.UpdatePrice"

	var err error
	if req.Price != nil {
		if err = validatePrice(*req.Price); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	res, err := p.priceRepo.Update(ctx, id, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = p.writeOutboxEvent(ctx, EventPriceChanged, res); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateComparison(ctx, res.Offer.ProductID)

	return res.Offer, nil
}

func (p *PriceUseCase) ListPriceIDs(ctx context.Context) ([]int64, error) {
	const op = "PriceUseCase.ListPriceIDs"

	ids, err := p.priceRepo.ListIDs(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return ids, nil
}

func (p *PriceUseCase) GetPriceByID(ctx context.Context, id int64) (*domain.PriceOffer, error) {
	const op = "PriceUseCase.GetPriceByID"

	offer, err := p.priceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return offer, nil
}

// writeOutboxEvent сериализует событие изменения цены и кладёт его в outbox
// внутри текущей транзакции.
func (p *PriceUseCase) writeOutboxEvent(ctx context.Context, eventType string, res *UpsertPriceRes) error {
	var oldPrice *string
	if res.OldPrice != nil {
		s := res.OldPrice.StringFixed(2)
		oldPrice = &s
	}

	event := PriceChangeEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		ProductID:  res.Offer.ProductID,
		RetailerID: res.Offer.Retailer.ID,
		OldPrice:   oldPrice,
		NewPrice:   res.Offer.Price.StringFixed(2),
		InStock:    res.Offer.InStock,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(event.EventID, eventType, event.ProductID, payload))

	return err
}

func (p *PriceUseCase) invalidateComparison(ctx context.Context, productID int64) {
	const op = "PriceUseCase.invalidateComparison"

	if err := p.cacheRepo.DeleteComparisons(ctx, []int64{productID}); err != nil {
		p.logger.Warnf("Failed to invalidate comparison cache: %v", e.Wrap(op, err))
	}
}

// validatePrice отклоняет отрицательные, чрезмерно большие и слишком точные цены.
// Цены хранятся с точностью до цента.
func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() || price.GreaterThan(maxPrice) {
		return e.ErrInvalidPrice
	}

	if price.Exponent() < -2 {
		return e.ErrPricePrecision
	}

	return nil
}
