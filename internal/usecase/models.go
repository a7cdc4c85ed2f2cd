package usecase

import (
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/shopspring/decimal"
)

// SortField — поле сортировки сравнительной таблицы.
type SortField string

// SortOrder — направление сортировки.
type SortOrder string

const (
	SortByPrice     SortField = "price"
	SortBySuppliers SortField = "suppliers"

	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Статусы событий outbox
type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

// Типы событий изменения цен
const (
	EventPriceCreated = "price_created"
	EventPriceChanged = "price_changed"
)

// CATALOG USECASE

// ProductWithCategory — товар вместе со своей категорией.
type ProductWithCategory struct {
	Product  domain.Product
	Category domain.Category
}

// ProductComparison — агрегированная строка сравнительной таблицы:
// товар, его минимальная цена и индикатор изменения цены.
type ProductComparison struct {
	ID             int64
	Name           string
	Description    string
	ImageKey       string
	CategoryName   string
	CategorySlug   string
	IsTrending     bool
	LowestPrice    *decimal.Decimal // nil — ни одной цены не найдено
	LowestRetailer string
	OffersCount    int
	ChangeLabel    string
}

// GetProductsReq — запрос сравнительной таблицы товаров.
// Query при длине меньше двух символов даёт пустой результат без похода в БД.
type GetProductsReq struct {
	CategorySlug string
	Query        string
	SortBy       SortField
	Order        SortOrder
	Page         int
	PerPage      int
	ExpandedID   int64 // 0 — ни одна строка не развёрнута
}

// GetProductsRes — отсортированные строки сравнения и детали развёрнутого товара.
type GetProductsRes struct {
	Products []ProductComparison
	Total    int
	Expanded *AggregateRes
}

// AggregateRes — результат сведения цен одного товара.
type AggregateRes struct {
	Lowest      *domain.PriceOffer
	Ranked      []domain.PriceOffer
	ChangeLabel string
}

// AddNewProductReq — запрос на добавление нового товара.
type AddNewProductReq struct {
	Name         string
	Description  string
	CategoryName string
	IsTrending   bool
	Images       []ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// PRICE USECASE

// UpsertPriceReq — создание или перезапись цены ритейлера на товар.
type UpsertPriceReq struct {
	ProductID     int64
	RetailerID    int64
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	InStock       bool
}

// UpdatePriceReq — частичное обновление ценовой записи.
type UpdatePriceReq struct {
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	InStock       *bool
}

// UpsertPriceRes — результат записи цены вместе с предыдущим значением,
// из которого строится событие изменения цены.
type UpsertPriceRes struct {
	Offer    *domain.PriceOffer
	OldPrice *decimal.Decimal // nil — запись создана впервые
}

// SEARCH USECASE

// SearchReq — поисковый запрос с необязательным списком разрешённых ритейлеров.
type SearchReq struct {
	Query       string
	RetailerIDs []int64
}

// SearchResult — найденный товар, сведённый к самому дешёвому подходящему предложению.
type SearchResult struct {
	Product       domain.Product
	CategoryName  string
	Cheapest      domain.PriceOffer
	OffersCount   int
	DiscountLabel string // "12%" либо "Best Price"
}

// SUBSCRIPTION USECASE

// SubscribeReq — покупка тарифа пользователем.
type SubscribeReq struct {
	UserID string
	Email  string
	PlanID string
}

// ALERT USECASE

// CreateAlertReq — запрос на создание уведомления о цене.
type CreateAlertReq struct {
	ProductID int64
	Message   string
	Discount  string
}

// PriceChangeEvent — событие изменения цены, публикуемое в Kafka через outbox.
type PriceChangeEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ProductID  int64     `json:"product_id"`
	RetailerID int64     `json:"retailer_id"`
	OldPrice   *string   `json:"old_price,omitempty"`
	NewPrice   string    `json:"new_price"`
	InStock    bool      `json:"in_stock"`
	OccurredAt time.Time `json:"occurred_at"`
}

// INFRASTRUCTURE

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// OUTBOX

type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   string
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewAddNewProductReq(name, description, categoryName string, isTrending bool, images []ProductImage) *AddNewProductReq {
	return &AddNewProductReq{
		Name:         name,
		Description:  description,
		CategoryName: categoryName,
		IsTrending:   isTrending,
		Images:       images,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewUpsertPriceRes(offer *domain.PriceOffer, oldPrice *decimal.Decimal) *UpsertPriceRes {
	return &UpsertPriceRes{
		Offer:    offer,
		OldPrice: oldPrice,
	}
}

func NewOutboxEvent(eventID, eventType string, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}
