package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Retailer описывает ритейлера, предлагающего цены на товары.
// Rating всегда в диапазоне [0, 5] — инвариант закреплён CHECK-ограничением в БД.
type Retailer struct {
	ID           int64
	Name         string
	Slug         string
	Rating       decimal.Decimal
	DeliveryInfo string
	Website      string
	CreatedAt    time.Time
}
