package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductRepo struct {
	products     []ProductWithCategory
	searchErr    error
	searchCalled bool
}

func (s *stubProductRepo) List(ctx context.Context, categorySlug string) ([]ProductWithCategory, error) {
	return s.products, nil
}

func (s *stubProductRepo) Search(ctx context.Context, query string, limit int) ([]ProductWithCategory, error) {
	s.searchCalled = true
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	if len(s.products) > limit {
		return s.products[:limit], nil
	}
	return s.products, nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id int64) (*ProductWithCategory, error) {
	for i := range s.products {
		if s.products[i].Product.ID == id {
			return &s.products[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

type stubPriceRepo struct {
	offersByProduct map[int64][]domain.PriceOffer
	errByProduct    map[int64]error
}

func (s *stubPriceRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.PriceOffer, error) {
	if err, ok := s.errByProduct[productID]; ok {
		return nil, err
	}
	return s.offersByProduct[productID], nil
}

func (s *stubPriceRepo) ListIDs(ctx context.Context) ([]int64, error) {
	return nil, nil
}

func (s *stubPriceRepo) GetByID(ctx context.Context, id int64) (*domain.PriceOffer, error) {
	return nil, errors.New("not found")
}

func (s *stubPriceRepo) Upsert(ctx context.Context, req *UpsertPriceReq) (*UpsertPriceRes, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPriceRepo) Update(ctx context.Context, id int64, patch *UpdatePriceReq) (*UpsertPriceRes, error) {
	return nil, errors.New("not implemented")
}

func productWithCategory(id int64, name string) ProductWithCategory {
	return ProductWithCategory{
		Product:  domain.Product{ID: id, Name: name, CategoryID: 1},
		Category: domain.Category{ID: 1, Name: "Groceries", Slug: "groceries"},
	}
}

func searchOffer(retailerID int64, price string) domain.PriceOffer {
	return domain.PriceOffer{
		Retailer:    domain.Retailer{ID: retailerID},
		Price:       decimal.RequireFromString(price),
		InStock:     true,
		LastUpdated: time.Now(),
	}
}

func TestSearchShortQuerySkipsStore(t *testing.T) {
	productRepo := &stubProductRepo{}
	uc := NewSearchUC(productRepo, &stubPriceRepo{}, nopLogger{})

	results, err := uc.Search(context.Background(), &SearchReq{Query: "a"})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, productRepo.searchCalled, "короткий запрос не должен ходить в хранилище")
}

func TestSearchTrimsQueryBeforeLengthCheck(t *testing.T) {
	productRepo := &stubProductRepo{}
	uc := NewSearchUC(productRepo, &stubPriceRepo{}, nopLogger{})

	results, err := uc.Search(context.Background(), &SearchReq{Query: "  x  "})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, productRepo.searchCalled)
}

func TestSearchPicksCheapestOffer(t *testing.T) {
	productRepo := &stubProductRepo{products: []ProductWithCategory{productWithCategory(1, "Bread")}}
	priceRepo := &stubPriceRepo{offersByProduct: map[int64][]domain.PriceOffer{
		1: {searchOffer(1, "22.99"), searchOffer(2, "18.99"), searchOffer(3, "20.49")},
	}}
	uc := NewSearchUC(productRepo, priceRepo, nopLogger{})

	results, err := uc.Search(context.Background(), &SearchReq{Query: "bread"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bread", results[0].Product.Name)
	assert.Equal(t, "Groceries", results[0].CategoryName)
	assert.Equal(t, int64(2), results[0].Cheapest.Retailer.ID)
	assert.Equal(t, 3, results[0].OffersCount)
}

func TestSearchFiltersByRetailer(t *testing.T) {
	productRepo := &stubProductRepo{products: []ProductWithCategory{productWithCategory(1, "Milk")}}
	priceRepo := &stubPriceRepo{offersByProduct: map[int64][]domain.PriceOffer{
		1: {searchOffer(1, "15.99"), searchOffer(2, "17.99")},
	}}
	uc := NewSearchUC(productRepo, priceRepo, nopLogger{})

	results, err := uc.Search(context.Background(), &SearchReq{Query: "milk", RetailerIDs: []int64{2}})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(2), results[0].Cheapest.Retailer.ID)
	assert.Equal(t, 1, results[0].OffersCount)
}

func TestSearchDropsProductsWithoutOffers(t *testing.T) {
	productRepo := &stubProductRepo{products: []ProductWithCategory{
		productWithCategory(1, "Milk"),
		productWithCategory(2, "Milkshake"),
	}}
	priceRepo := &stubPriceRepo{offersByProduct: map[int64][]domain.PriceOffer{
		1: {searchOffer(1, "15.99")},
		// товар 2 без предложений
	}}
	uc := NewSearchUC(productRepo, priceRepo, nopLogger{})

	results, err := uc.Search(context.Background(), &SearchReq{Query: "milk"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].Product.ID)
}

func TestSearchDropsProductOnPriceFetchError(t *testing.T) {
	productRepo := &stubProductRepo{products: []ProductWithCategory{
		productWithCategory(1, "Milk"),
		productWithCategory(2, "Milkshake"),
	}}
	priceRepo := &stubPriceRepo{
		offersByProduct: map[int64][]domain.PriceOffer{2: {searchOffer(1, "29.99")}},
		errByProduct:    map[int64]error{1: errors.New("connection reset")},
	}
	uc := NewSearchUC(productRepo, priceRepo, nopLogger{})

	results, err := uc.Search(context.Background(), &SearchReq{Query: "milk"})

	require.NoError(t, err, "сбой по одному товару не должен ронять выдачу")
	require.Len(t, results, 1)
	assert.Equal(t, int64(2), results[0].Product.ID)
}

func TestSearchPropagatesStoreError(t *testing.T) {
	productRepo := &stubProductRepo{searchErr: errors.New("db down")}
	uc := NewSearchUC(productRepo, &stubPriceRepo{}, nopLogger{})

	_, err := uc.Search(context.Background(), &SearchReq{Query: "milk"})

	assert.Error(t, err)
}
