package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

type stubSubscriberRepo struct {
	upserted    *domain.Subscriber
	existing    *domain.Subscriber
	deactivated *domain.Subscriber
}

func (s *stubSubscriberRepo) UpsertByEmail(ctx context.Context, subscriber *domain.Subscriber) (*domain.Subscriber, error) {
	s.upserted = subscriber
	saved := *subscriber
	saved.ID = 1
	return &saved, nil
}

func (s *stubSubscriberRepo) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	if s.existing == nil || s.existing.Email != email {
		return nil, e.ErrSubscriptionNotFound
	}
	return s.existing, nil
}

func (s *stubSubscriberRepo) Deactivate(ctx context.Context, email string, at time.Time) (*domain.Subscriber, error) {
	if s.existing == nil || s.existing.Email != email {
		return nil, e.ErrSubscriptionNotFound
	}
	sub := *s.existing
	sub.IsActive = false
	sub.End = at
	s.deactivated = &sub
	return &sub, nil
}

func TestSubscribePlanCatalog(t *testing.T) {
	tests := []struct {
		planID    string
		wantName  string
		wantPrice string
		months    int
	}{
		{"monthly", "monthly", "159", 1},
		{"quarterly", "3 Months", "299", 3},
		{"biannual", "6 Months", "599", 6},
	}

	for _, tt := range tests {
		t.Run(tt.planID, func(t *testing.T) {
			repo := &stubSubscriberRepo{}
			uc := NewSubscriptionUC(repo, nopLogger{})

			sub, err := uc.Subscribe(context.Background(), &SubscribeReq{
				UserID: "u-1",
				Email:  "user@example.com",
				PlanID: tt.planID,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, sub.Plan)
			assert.True(t, sub.Price.Equal(decimalFromString(t, tt.wantPrice)))
			assert.True(t, sub.IsActive)
			assert.Equal(t, sub.Start.AddDate(0, tt.months, 0), sub.End)
		})
	}
}

func TestSubscribeUnknownPlanFallsBackToOneMonth(t *testing.T) {
	repo := &stubSubscriberRepo{}
	uc := NewSubscriptionUC(repo, nopLogger{})

	sub, err := uc.Subscribe(context.Background(), &SubscribeReq{
		Email:  "user@example.com",
		PlanID: "weekly",
	})

	require.NoError(t, err, "неизвестный тариф не должен ронять оформление")
	assert.Equal(t, "weekly", sub.Plan)
	assert.True(t, sub.Price.Equal(decimalFromString(t, "159")))
	assert.Equal(t, sub.Start.AddDate(0, 1, 0), sub.End)
}

func TestSubscribeRequiresEmail(t *testing.T) {
	uc := NewSubscriptionUC(&stubSubscriberRepo{}, nopLogger{})

	_, err := uc.Subscribe(context.Background(), &SubscribeReq{PlanID: "monthly", Email: "   "})

	assert.ErrorIs(t, err, e.ErrEmailRequired)
}

func TestResolveEndDate(t *testing.T) {
	uc := NewSubscriptionUC(&stubSubscriberRepo{}, nopLogger{})
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), uc.ResolveEndDate("monthly", start))
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), uc.ResolveEndDate("quarterly", start))
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), uc.ResolveEndDate("biannual", start))
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), uc.ResolveEndDate("enterprise", start))
}

func TestCancelSubscriptionKeepsPlan(t *testing.T) {
	repo := &stubSubscriberRepo{existing: &domain.Subscriber{
		ID:       1,
		Email:    "user@example.com",
		Plan:     "3 Months",
		IsActive: true,
	}}
	uc := NewSubscriptionUC(repo, nopLogger{})

	sub, err := uc.CancelSubscription(context.Background(), "user@example.com")

	require.NoError(t, err)
	assert.False(t, sub.IsActive)
	assert.Equal(t, "3 Months", sub.Plan, "отмена не должна стирать тариф")
	assert.False(t, sub.End.IsZero())
}

func TestCancelSubscriptionNotFound(t *testing.T) {
	uc := NewSubscriptionUC(&stubSubscriberRepo{}, nopLogger{})

	_, err := uc.CancelSubscription(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, e.ErrSubscriptionNotFound)
}
