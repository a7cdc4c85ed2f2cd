package usecase

import (
	"context"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type RetailerRepository interface {
	List(ctx context.Context) ([]domain.Retailer, error)
	GetByID(ctx context.Context, id int64) (*domain.Retailer, error)
}

type ProductRepository interface {
	List(ctx context.Context, categorySlug string) ([]ProductWithCategory, error)
	Search(ctx context.Context, query string, limit int) ([]ProductWithCategory, error)
	GetByID(ctx context.Context, id int64) (*ProductWithCategory, error)
	Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

type PriceRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]domain.PriceOffer, error)
	ListIDs(ctx context.Context) ([]int64, error)
	GetByID(ctx context.Context, id int64) (*domain.PriceOffer, error)
	Upsert(ctx context.Context, req *UpsertPriceReq) (*UpsertPriceRes, error)
	Update(ctx context.Context, id int64, patch *UpdatePriceReq) (*UpsertPriceRes, error)
}

type AlertRepository interface {
	ListActive(ctx context.Context) ([]domain.PriceAlert, error)
	Create(ctx context.Context, alert *domain.PriceAlert) (*domain.PriceAlert, error)
}

type SubscriberRepository interface {
	UpsertByEmail(ctx context.Context, subscriber *domain.Subscriber) (*domain.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	Deactivate(ctx context.Context, email string, at time.Time) (*domain.Subscriber, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetComparisons(ctx context.Context, ids []int64) (map[int64]ProductComparison, error)
	SetComparisons(ctx context.Context, rows []ProductComparison) error
	DeleteComparisons(ctx context.Context, ids []int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
