package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	"github.com/shopspring/decimal"
)

// plan описывает тариф подписки: отображаемое имя, цена и длительность в месяцах.
type plan struct {
	Name   string
	Price  decimal.Decimal
	Months int
}

// plans — каталог тарифов. Ключ — идентификатор плана из запроса.
var plans = map[string]plan{
	"monthly":   {Name: "monthly", Price: decimal.RequireFromString("159.00"), Months: 1},
	"quarterly": {Name: "3 Months", Price: decimal.RequireFromString("299.00"), Months: 3},
	"biannual":  {Name: "6 Months", Price: decimal.RequireFromString("599.00"), Months: 6},
}

// SubscriptionUseCase управляет платными подписками пользователей.
type SubscriptionUseCase struct {
	subscriberRepo SubscriberRepository
	logger         logger.Logger
}

func NewSubscriptionUC(subscriberRepo SubscriberRepository, logger logger.Logger) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

// Subscribe оформляет либо продлевает подписку. Повторная подписка на тот же
// email перезаписывает план и срок действия.
func (s *SubscriptionUseCase) Subscribe(ctx context.Context, req *SubscribeReq) (*domain.Subscriber, error) {
	const op = "SubscriptionUseCase.Subscribe"

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, e.Wrap(op, e.ErrEmailRequired)
	}

	start := time.Now().UTC()
	end := s.ResolveEndDate(req.PlanID, start)

	sub := &domain.Subscriber{
		UserID:   req.UserID,
		Email:    email,
		Plan:     resolvePlanName(req.PlanID),
		Price:    resolvePlanPrice(req.PlanID),
		Start:    start,
		End:      end,
		IsActive: true,
	}

	saved, err := s.subscriberRepo.UpsertByEmail(ctx, sub)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return saved, nil
}

func (s *SubscriptionUseCase) GetSubscription(ctx context.Context, email string) (*domain.Subscriber, error) {
	const op = "SubscriptionUseCase.GetSubscription"

	sub, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return sub, nil
}

// CancelSubscription деактивирует подписку, не удаляя запись: план и история
// остаются, срок действия обрывается текущим моментом.
func (s *SubscriptionUseCase) CancelSubscription(ctx context.Context, email string) (*domain.Subscriber, error) {
	const op = "SubscriptionUseCase.CancelSubscription"

	sub, err := s.subscriberRepo.Deactivate(ctx, email, time.Now().UTC())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return sub, nil
}

// ResolveEndDate вычисляет дату окончания подписки по тарифу. Неизвестный
// тариф трактуется как месячный, чтобы оформление не падало.
func (s *SubscriptionUseCase) ResolveEndDate(planID string, start time.Time) time.Time {
	p, ok := plans[planID]
	if !ok {
		s.logger.Warnf("unknown subscription plan %q, falling back to one month", planID)
		return start.AddDate(0, 1, 0)
	}

	return start.AddDate(0, p.Months, 0)
}

func resolvePlanName(planID string) string {
	if p, ok := plans[planID]; ok {
		return p.Name
	}
	return planID
}

func resolvePlanPrice(planID string) decimal.Decimal {
	if p, ok := plans[planID]; ok {
		return p.Price
	}
	return plans["monthly"].Price
}
