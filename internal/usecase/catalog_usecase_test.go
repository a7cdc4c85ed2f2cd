package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCacheRepo struct {
	mu   sync.Mutex
	rows map[int64]ProductComparison
	err  error
}

func (s *stubCacheRepo) GetComparisons(ctx context.Context, ids []int64) (map[int64]ProductComparison, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]ProductComparison, len(ids))
	for _, id := range ids {
		if row, ok := s.rows[id]; ok {
			out[id] = row
		}
	}
	return out, nil
}

func (s *stubCacheRepo) SetComparisons(ctx context.Context, rows []ProductComparison) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows == nil {
		s.rows = make(map[int64]ProductComparison)
	}
	for _, row := range rows {
		s.rows[row.ID] = row
	}
	return nil
}

func (s *stubCacheRepo) DeleteComparisons(ctx context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.rows, id)
	}
	return nil
}

func newCatalogForTest(productRepo ProductRepository, priceRepo PriceRepository, cacheRepo CacheRepository) *CatalogUseCase {
	return NewCatalogUC(productRepo, nil, nil, priceRepo, cacheRepo, nil, nil, nopLogger{})
}

func TestGetProductsRejectsBadSortParams(t *testing.T) {
	uc := newCatalogForTest(&stubProductRepo{}, &stubPriceRepo{}, &stubCacheRepo{})

	_, err := uc.GetProducts(context.Background(), &GetProductsReq{SortBy: "name"})
	assert.ErrorIs(t, err, e.ErrInvalidSortParams)

	_, err = uc.GetProducts(context.Background(), &GetProductsReq{Order: "random"})
	assert.ErrorIs(t, err, e.ErrInvalidSortParams)
}

func TestGetProductsShortQueryReturnsEmpty(t *testing.T) {
	productRepo := &stubProductRepo{}
	uc := newCatalogForTest(productRepo, &stubPriceRepo{}, &stubCacheRepo{})

	res, err := uc.GetProducts(context.Background(), &GetProductsReq{Query: "x"})

	require.NoError(t, err)
	assert.Empty(t, res.Products)
	assert.False(t, productRepo.searchCalled)
}

func TestGetProductsSortsByLowestPrice(t *testing.T) {
	productRepo := &stubProductRepo{products: []ProductWithCategory{
		productWithCategory(1, "Bread"),
		productWithCategory(2, "Milk"),
		productWithCategory(3, "Eggs"),
	}}
	priceRepo := &stubPriceRepo{offersByProduct: map[int64][]domain.PriceOffer{
		1: {searchOffer(1, "22.99")},
		2: {searchOffer(1, "15.49")},
		3: {searchOffer(1, "39.99")},
	}}
	uc := newCatalogForTest(productRepo, priceRepo, &stubCacheRepo{})

	res, err := uc.GetProducts(context.Background(), &GetProductsReq{})

	require.NoError(t, err)
	require.Len(t, res.Products, 3)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []int64{2, 1, 3}, []int64{res.Products[0].ID, res.Products[1].ID, res.Products[2].ID})
	require.NotNil(t, res.Products[0].LowestPrice)
	assert.Equal(t, "15.49", res.Products[0].LowestPrice.String())
}

func TestGetProductsPaginatesAfterSort(t *testing.T) {
	productRepo := &stubProductRepo{products: []ProductWithCategory{
		productWithCategory(1, "Bread"),
		productWithCategory(2, "Milk"),
		productWithCategory(3, "Eggs"),
	}}
	priceRepo := &stubPriceRepo{offersByProduct: map[int64][]domain.PriceOffer{
		1: {searchOffer(1, "22.99")},
		2: {searchOffer(1, "15.49")},
		3: {searchOffer(1, "39.99")},
	}}
	uc := newCatalogForTest(productRepo, priceRepo, &stubCacheRepo{})

	res, err := uc.GetProducts(context.Background(), &GetProductsReq{Page: 2, PerPage: 2})

	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, int64(3), res.Products[0].ID)
	assert.Equal(t, 3, res.Total, "Total считается до пагинации")
}

func TestGetProductsServedFromCache(t *testing.T) {
	lowest := decimal.RequireFromString("9.99")
	cache := &stubCacheRepo{rows: map[int64]ProductComparison{
		1: {ID: 1, Name: "Bread", LowestPrice: &lowest, OffersCount: 4},
	}}
	productRepo := &stubProductRepo{products: []ProductWithCategory{productWithCategory(1, "Bread")}}
	// Поход в БД за ценами при горячем кэше был бы ошибкой.
	priceRepo := &stubPriceRepo{errByProduct: map[int64]error{1: errors.New("must not be called")}}
	uc := newCatalogForTest(productRepo, priceRepo, cache)

	res, err := uc.GetProducts(context.Background(), &GetProductsReq{})

	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, 4, res.Products[0].OffersCount)
}

func TestGetProductsSurvivesCacheOutage(t *testing.T) {
	productRepo := &stubProductRepo{products: []ProductWithCategory{productWithCategory(1, "Bread")}}
	priceRepo := &stubPriceRepo{offersByProduct: map[int64][]domain.PriceOffer{
		1: {searchOffer(1, "22.99")},
	}}
	uc := newCatalogForTest(productRepo, priceRepo, &stubCacheRepo{err: errors.New("redis down")})

	res, err := uc.GetProducts(context.Background(), &GetProductsReq{})

	require.NoError(t, err, "недоступный кэш не должен ронять выдачу")
	require.Len(t, res.Products, 1)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fresh Produce", "fresh-produce"},
		{"  Household & Cleaning  ", "household--cleaning"},
		{"UHT Milk 1L", "uht-milk-1l"},
		{"--weird__input--", "weird--input"},
		{"???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
