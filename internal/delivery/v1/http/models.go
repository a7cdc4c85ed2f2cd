package http

import (
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/shopspring/decimal"
)

// CategoryResponse — категория товаров в ответе API.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon,omitempty"`
}

// RetailerResponse — ритейлер в ответе API.
type RetailerResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Rating       decimal.Decimal `json:"rating"`
	DeliveryInfo string          `json:"delivery_info,omitempty"`
	Website      string          `json:"website,omitempty"`
}

// OfferResponse — предложение ритейлера по товару.
type OfferResponse struct {
	ID            int64            `json:"id"`
	Retailer      RetailerResponse `json:"retailer"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	InStock       bool             `json:"in_stock"`
	LastUpdated   time.Time        `json:"last_updated"`
}

// ComparisonResponse — строка сравнительной таблицы товаров.
type ComparisonResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	ImageKey       string           `json:"image_key,omitempty"`
	CategoryName   string           `json:"category_name"`
	CategorySlug   string           `json:"category_slug"`
	IsTrending     bool             `json:"is_trending"`
	LowestPrice    *decimal.Decimal `json:"lowest_price"`
	LowestRetailer string           `json:"lowest_retailer,omitempty"`
	OffersCount    int              `json:"offers_count"`
	ChangeLabel    string           `json:"change_label"`
}

// ProductListResponse — страница сравнительной таблицы.
type ProductListResponse struct {
	Products []ComparisonResponse `json:"products"`
	Total    int                  `json:"total"`
	Expanded *OffersResponse      `json:"expanded,omitempty"`
}

// OffersResponse — все предложения одного товара, лучшая цена первой.
type OffersResponse struct {
	Lowest      *OfferResponse  `json:"lowest"`
	Offers      []OfferResponse `json:"offers"`
	ChangeLabel string          `json:"change_label"`
}

// ProductResponse — карточка товара.
type ProductResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ImageKey     string `json:"image_key,omitempty"`
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`
	IsTrending   bool   `json:"is_trending"`
}

// SearchResultResponse — результат поиска с самым дешёвым предложением.
type SearchResultResponse struct {
	Product       ProductResponse `json:"product"`
	Cheapest      *OfferResponse  `json:"cheapest"`
	OffersCount   int             `json:"offers_count"`
	DiscountLabel string          `json:"discount_label"`
}

// AlertResponse — уведомление о снижении цены.
type AlertResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Message   string    `json:"message"`
	Discount  string    `json:"discount"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAlertRequest — тело запроса на создание уведомления.
type CreateAlertRequest struct {
	ProductID int64  `json:"product_id"`
	Message   string `json:"message"`
	Discount  string `json:"discount"`
}

// SubscribeRequest — тело запроса на оформление подписки.
type SubscribeRequest struct {
	PlanID string `json:"plan_id"`
}

// SubscriptionResponse — состояние подписки пользователя.
type SubscriptionResponse struct {
	Email    string          `json:"email"`
	Plan     string          `json:"plan"`
	Price    decimal.Decimal `json:"price"`
	Start    time.Time       `json:"start_date"`
	End      time.Time       `json:"end_date"`
	IsActive bool            `json:"is_active"`
}

// UpsertPriceRequest — тело запроса на запись цены ритейлера.
type UpsertPriceRequest struct {
	ProductID     int64   `json:"product_id"`
	RetailerID    int64   `json:"retailer_id"`
	Price         string  `json:"price"`
	OriginalPrice *string `json:"original_price,omitempty"`
	InStock       *bool   `json:"in_stock,omitempty"`
}

// UpdatePriceRequest — тело запроса на частичное обновление цены.
type UpdatePriceRequest struct {
	Price         *string `json:"price,omitempty"`
	OriginalPrice *string `json:"original_price,omitempty"`
	InStock       *bool   `json:"in_stock,omitempty"`
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
		Icon: c.Icon,
	}
}

func toRetailerResponse(r *domain.Retailer) RetailerResponse {
	return RetailerResponse{
		ID:           r.ID,
		Name:         r.Name,
		Slug:         r.Slug,
		Rating:       r.Rating,
		DeliveryInfo: r.DeliveryInfo,
		Website:      r.Website,
	}
}

func toOfferResponse(o *domain.PriceOffer) OfferResponse {
	return OfferResponse{
		ID:            o.ID,
		Retailer:      toRetailerResponse(&o.Retailer),
		Price:         o.Price,
		OriginalPrice: o.OriginalPrice,
		InStock:       o.InStock,
		LastUpdated:   o.LastUpdated,
	}
}

func toComparisonResponse(row *usecase.ProductComparison) ComparisonResponse {
	return ComparisonResponse{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		ImageKey:       row.ImageKey,
		CategoryName:   row.CategoryName,
		CategorySlug:   row.CategorySlug,
		IsTrending:     row.IsTrending,
		LowestPrice:    row.LowestPrice,
		LowestRetailer: row.LowestRetailer,
		OffersCount:    row.OffersCount,
		ChangeLabel:    row.ChangeLabel,
	}
}

func toOffersResponse(agg *usecase.AggregateRes) *OffersResponse {
	if agg == nil {
		return nil
	}

	res := &OffersResponse{
		Offers:      make([]OfferResponse, 0, len(agg.Ranked)),
		ChangeLabel: agg.ChangeLabel,
	}
	for i := range agg.Ranked {
		res.Offers = append(res.Offers, toOfferResponse(&agg.Ranked[i]))
	}
	if agg.Lowest != nil {
		lowest := toOfferResponse(agg.Lowest)
		res.Lowest = &lowest
	}

	return res
}

func toProductResponse(pwc *usecase.ProductWithCategory) ProductResponse {
	return ProductResponse{
		ID:           pwc.Product.ID,
		Name:         pwc.Product.Name,
		Description:  pwc.Product.Description,
		ImageKey:     pwc.Product.ImageKey,
		CategoryName: pwc.Category.Name,
		CategorySlug: pwc.Category.Slug,
		IsTrending:   pwc.Product.IsTrending,
	}
}

func toAlertResponse(a *domain.PriceAlert) AlertResponse {
	return AlertResponse{
		ID:        a.ID,
		ProductID: a.ProductID,
		Message:   a.Message,
		Discount:  a.Discount,
		CreatedAt: a.CreatedAt,
	}
}

func toSubscriptionResponse(s *domain.Subscriber) SubscriptionResponse {
	return SubscriptionResponse{
		Email:    s.Email,
		Plan:     s.Plan,
		Price:    s.Price,
		Start:    s.Start,
		End:      s.End,
		IsActive: s.IsActive,
	}
}
