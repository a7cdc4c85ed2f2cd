package usecase

import (
	"context"

	"github.com/Liso15/UbuntuExpress/internal/domain"
)

type CatalogUC interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetRetailers(ctx context.Context) ([]domain.Retailer, error)
	GetRetailerByID(ctx context.Context, id int64) (*domain.Retailer, error)
	GetProducts(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
	GetProductByID(ctx context.Context, id int64) (*ProductWithCategory, error)
	GetProductOffers(ctx context.Context, productID int64) (*AggregateRes, error)
	RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*domain.Product, error)
}

type PriceUC interface {
	UpsertPrice(ctx context.Context, req *UpsertPriceReq) (*domain.PriceOffer, error)
	UpdatePrice(ctx context.Context, id int64, req *UpdatePriceReq) (*domain.PriceOffer, error)
	ListPriceIDs(ctx context.Context) ([]int64, error)
	GetPriceByID(ctx context.Context, id int64) (*domain.PriceOffer, error)
}

type SearchUC interface {
	Search(ctx context.Context, req *SearchReq) ([]SearchResult, error)
}

type SubscriptionUC interface {
	Subscribe(ctx context.Context, req *SubscribeReq) (*domain.Subscriber, error)
	GetSubscription(ctx context.Context, email string) (*domain.Subscriber, error)
	CancelSubscription(ctx context.Context, email string) (*domain.Subscriber, error)
}

type AlertUC interface {
	GetActiveAlerts(ctx context.Context) ([]domain.PriceAlert, error)
	CreateAlert(ctx context.Context, req *CreateAlertReq) (*domain.PriceAlert, error)
	HandlePriceChange(ctx context.Context, event *PriceChangeEvent) error
}
