package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	"github.com/shopspring/decimal"
)

// AlertUseCase — ценовые уведомления: ручное создание и автоматическая
// генерация по событиям заметного падения цены.
type AlertUseCase struct {
	alertRepo        AlertRepository
	dropThresholdPct float64
	logger           logger.Logger
}

func NewAlertUC(alertRepo AlertRepository, dropThresholdPct float64, logger logger.Logger) *AlertUseCase {
	return &AlertUseCase{
		alertRepo:        alertRepo,
		dropThresholdPct: dropThresholdPct,
		logger:           logger,
	}
}

func (a *AlertUseCase) GetActiveAlerts(ctx context.Context) ([]domain.PriceAlert, error) {
	const op = "AlertUseCase.GetActiveAlerts"

	alerts, err := a.alertRepo.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return alerts, nil
}

func (a *AlertUseCase) CreateAlert(ctx context.Context, req *CreateAlertReq) (*domain.PriceAlert, error) {
	const op = "AlertUseCase.CreateAlert"

	if strings.TrimSpace(req.Message) == "" {
		return nil, e.Wrap(op, e.ErrMessageRequired)
	}
	if req.ProductID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductID)
	}

	alert, err := a.alertRepo.Create(ctx, domain.NewPriceAlert(req.ProductID, req.Message, req.Discount))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return alert, nil
}

// HandlePriceChange обрабатывает событие изменения цены: при падении не меньше
// порога создаётся уведомление о скидке. Остальные события игнорируются.
func (a *AlertUseCase) HandlePriceChange(ctx context.Context, event *PriceChangeEvent) error {
	const op = "AlertUseCase.HandlePriceChange"

	if event.EventType != EventPriceChanged || event.OldPrice == nil {
		return nil
	}

	oldPrice, err := decimal.NewFromString(*event.OldPrice)
	if err != nil {
		return e.Wrap(op, err)
	}
	newPrice, err := decimal.NewFromString(event.NewPrice)
	if err != nil {
		return e.Wrap(op, err)
	}
	if oldPrice.IsZero() {
		return nil
	}

	drop := oldPrice.Sub(newPrice).
		Div(oldPrice).
		Mul(decimal.NewFromInt(100))
	if drop.LessThan(decimal.NewFromFloat(a.dropThresholdPct)) {
		return nil
	}

	discount := drop.Round(0).String() + "%"
	message := fmt.Sprintf("Price dropped by %s at retailer %d", discount, event.RetailerID)

	if _, err := a.alertRepo.Create(ctx, domain.NewPriceAlert(event.ProductID, message, "-"+discount)); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("price drop alert created for product %d (%s)", event.ProductID, discount)

	return nil
}
