package usecase

import (
	"testing"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger глушит логи в тестах юзкейсов.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func offerAt(retailerID int64, price string, updated time.Time) domain.PriceOffer {
	return domain.PriceOffer{
		ID:          retailerID,
		ProductID:   1,
		Retailer:    domain.Retailer{ID: retailerID, Name: "retailer"},
		Price:       decimal.RequireFromString(price),
		InStock:     true,
		LastUpdated: updated,
	}
}

func TestAggregateRanksByPriceAscending(t *testing.T) {
	now := time.Now()
	offers := []domain.PriceOffer{
		offerAt(1, "219.99", now),
		offerAt(2, "189.99", now),
		offerAt(3, "199.99", now),
	}

	res := Aggregate(offers)

	require.Len(t, res.Ranked, 3)
	assert.Equal(t, "189.99", res.Ranked[0].Price.String())
	assert.Equal(t, "199.99", res.Ranked[1].Price.String())
	assert.Equal(t, "219.99", res.Ranked[2].Price.String())

	require.NotNil(t, res.Lowest)
	assert.Equal(t, int64(2), res.Lowest.Retailer.ID)

	// Вход не мутируется.
	assert.Equal(t, "219.99", offers[0].Price.String())
}

func TestAggregateStableOnEqualPrices(t *testing.T) {
	now := time.Now()
	offers := []domain.PriceOffer{
		offerAt(1, "100.00", now),
		offerAt(2, "100.00", now),
	}

	res := Aggregate(offers)

	assert.Equal(t, int64(1), res.Ranked[0].Retailer.ID)
	assert.Equal(t, int64(2), res.Ranked[1].Retailer.ID)
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil)

	assert.Nil(t, res.Lowest)
	assert.Empty(t, res.Ranked)
	assert.Equal(t, "0%", res.ChangeLabel)
}

func TestChangeLabelSingleOffer(t *testing.T) {
	res := Aggregate([]domain.PriceOffer{offerAt(1, "99.99", time.Now())})

	assert.Equal(t, "0%", res.ChangeLabel)
}

func TestChangeLabelComparesOldestAndNewest(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offers []domain.PriceOffer
		want   string
	}{
		{
			name: "price drop",
			offers: []domain.PriceOffer{
				// Порядок в срезе не совпадает с хронологией намеренно.
				offerAt(2, "189.99", base.Add(48*time.Hour)),
				offerAt(1, "199.99", base),
			},
			want: "-5.0%",
		},
		{
			name: "price increase gets explicit plus",
			offers: []domain.PriceOffer{
				offerAt(1, "200.00", base),
				offerAt(2, "210.00", base.Add(time.Hour)),
			},
			want: "+5.0%",
		},
		{
			name: "middle records ignored",
			offers: []domain.PriceOffer{
				offerAt(1, "100.00", base),
				offerAt(2, "500.00", base.Add(time.Hour)),
				offerAt(3, "110.00", base.Add(2*time.Hour)),
			},
			want: "+10.0%",
		},
		{
			name: "zero oldest price",
			offers: []domain.PriceOffer{
				offerAt(1, "0", base),
				offerAt(2, "50.00", base.Add(time.Hour)),
			},
			want: "0%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.offers).ChangeLabel)
		})
	}
}

func TestDiscountLabel(t *testing.T) {
	now := time.Now()
	original := decimal.RequireFromString("250.00")

	withOriginal := offerAt(1, "200.00", now)
	withOriginal.OriginalPrice = &original

	tests := []struct {
		name   string
		offers []domain.PriceOffer
		want   string
	}{
		{
			name:   "discount from original price",
			offers: []domain.PriceOffer{withOriginal, offerAt(2, "240.00", now)},
			want:   "20%",
		},
		{
			name:   "all offers equal",
			offers: []domain.PriceOffer{offerAt(1, "99.99", now), offerAt(2, "99.99", now)},
			want:   "Best Price",
		},
		{
			name:   "no offers",
			offers: nil,
			want:   "Best Price",
		},
		{
			name:   "zero reference price",
			offers: []domain.PriceOffer{offerAt(1, "0", now)},
			want:   "Best Price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, discountLabel(tt.offers))
		})
	}
}
