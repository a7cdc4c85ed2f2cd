package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Icon      string    `db:"icon"`
	CreatedAt time.Time `db:"created_at"`
}

// RetailerModel представляет запись таблицы retailers в PostgreSQL.
type RetailerModel struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	Slug         string          `db:"slug"`
	Rating       decimal.Decimal `db:"rating"`
	DeliveryInfo string          `db:"delivery_info"`
	Website      string          `db:"website"`
	CreatedAt    time.Time       `db:"created_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	ImageKey    string     `db:"image_key"`
	CategoryID  int64      `db:"category_id"`
	IsTrending  bool       `db:"is_trending"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// PriceModel представляет запись таблицы product_prices в PostgreSQL
// вместе с присоединённым ритейлером.
type PriceModel struct {
	ID            int64            `db:"id"`
	ProductID     int64            `db:"product_id"`
	Retailer      RetailerModel    `db:"-"`
	Price         decimal.Decimal  `db:"price"`
	OriginalPrice *decimal.Decimal `db:"original_price"`
	InStock       bool             `db:"in_stock"`
	LastUpdated   time.Time        `db:"last_updated"`
}

// AlertModel представляет запись таблицы price_alerts в PostgreSQL.
type AlertModel struct {
	ID        int64     `db:"id"`
	ProductID int64     `db:"product_id"`
	Message   string    `db:"message"`
	Discount  string    `db:"discount"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// SubscriberModel представляет запись таблицы subscribers в PostgreSQL.
type SubscriberModel struct {
	ID        int64           `db:"id"`
	UserID    string          `db:"user_id"`
	Email     string          `db:"email"`
	Plan      string          `db:"plan"`
	Price     decimal.Decimal `db:"price"`
	StartDate time.Time       `db:"start_date"`
	EndDate   time.Time       `db:"end_date"`
	IsActive  bool            `db:"is_active"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt *time.Time      `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
