package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceOffer — текущая цена одного ритейлера на один товар.
// Пара (ProductID, RetailerID) уникальна, история не хранится: запись
// перезаписывается при каждом изменении цены у ритейлера.
type PriceOffer struct {
	ID            int64
	ProductID     int64
	Retailer      Retailer
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal // цена до скидки, если ритейлер её публикует
	InStock       bool
	LastUpdated   time.Time
}

// ReferencePrice возвращает цену для расчёта скидки: оригинальную, если она
// задана, иначе текущую.
func (o *PriceOffer) ReferencePrice() decimal.Decimal {
	if o.OriginalPrice != nil {
		return *o.OriginalPrice
	}
	return o.Price
}
