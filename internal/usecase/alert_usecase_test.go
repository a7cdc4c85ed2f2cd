package usecase

import (
	"context"
	"testing"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAlertRepo struct {
	created []*domain.PriceAlert
}

func (s *stubAlertRepo) ListActive(ctx context.Context) ([]domain.PriceAlert, error) {
	out := make([]domain.PriceAlert, 0, len(s.created))
	for _, a := range s.created {
		if a.IsActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *stubAlertRepo) Create(ctx context.Context, alert *domain.PriceAlert) (*domain.PriceAlert, error) {
	saved := *alert
	saved.ID = int64(len(s.created) + 1)
	s.created = append(s.created, &saved)
	return &saved, nil
}

func strPtr(s string) *string { return &s }

func TestCreateAlertValidation(t *testing.T) {
	uc := NewAlertUC(&stubAlertRepo{}, 5.0, nopLogger{})

	_, err := uc.CreateAlert(context.Background(), &CreateAlertReq{ProductID: 1, Message: "  "})
	assert.ErrorIs(t, err, e.ErrMessageRequired)

	_, err = uc.CreateAlert(context.Background(), &CreateAlertReq{ProductID: 0, Message: "sale"})
	assert.ErrorIs(t, err, e.ErrInvalidProductID)
}

func TestCreateAlert(t *testing.T) {
	repo := &stubAlertRepo{}
	uc := NewAlertUC(repo, 5.0, nopLogger{})

	alert, err := uc.CreateAlert(context.Background(), &CreateAlertReq{
		ProductID: 42,
		Message:   "Weekend special",
		Discount:  "-15%",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), alert.ProductID)
	assert.True(t, alert.IsActive)
	require.Len(t, repo.created, 1)
}

func TestHandlePriceChangeCreatesAlertOnBigDrop(t *testing.T) {
	repo := &stubAlertRepo{}
	uc := NewAlertUC(repo, 5.0, nopLogger{})

	err := uc.HandlePriceChange(context.Background(), &PriceChangeEvent{
		EventType:  EventPriceChanged,
		ProductID:  7,
		RetailerID: 3,
		OldPrice:   strPtr("200.00"),
		NewPrice:   "180.00",
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(7), repo.created[0].ProductID)
	assert.Equal(t, "-10%", repo.created[0].Discount)
	assert.Contains(t, repo.created[0].Message, "retailer 3")
}

func TestHandlePriceChangeIgnoresSmallDrop(t *testing.T) {
	repo := &stubAlertRepo{}
	uc := NewAlertUC(repo, 5.0, nopLogger{})

	err := uc.HandlePriceChange(context.Background(), &PriceChangeEvent{
		EventType:  EventPriceChanged,
		ProductID:  7,
		RetailerID: 3,
		OldPrice:   strPtr("200.00"),
		NewPrice:   "198.00",
	})

	require.NoError(t, err)
	assert.Empty(t, repo.created)
}

func TestHandlePriceChangeIgnoresIncreaseAndCreation(t *testing.T) {
	repo := &stubAlertRepo{}
	uc := NewAlertUC(repo, 5.0, nopLogger{})

	// Рост цены.
	err := uc.HandlePriceChange(context.Background(), &PriceChangeEvent{
		EventType: EventPriceChanged,
		ProductID: 7,
		OldPrice:  strPtr("100.00"),
		NewPrice:  "150.00",
	})
	require.NoError(t, err)

	// Первая запись цены: сравнивать не с чем.
	err = uc.HandlePriceChange(context.Background(), &PriceChangeEvent{
		EventType: EventPriceCreated,
		ProductID: 7,
		NewPrice:  "150.00",
	})
	require.NoError(t, err)

	// Нулевая старая цена.
	err = uc.HandlePriceChange(context.Background(), &PriceChangeEvent{
		EventType: EventPriceChanged,
		ProductID: 7,
		OldPrice:  strPtr("0"),
		NewPrice:  "150.00",
	})
	require.NoError(t, err)

	assert.Empty(t, repo.created)
}
