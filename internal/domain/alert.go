package domain

import "time"

// PriceAlert описывает уведомление о снижении цены на товар
type PriceAlert struct {
	ID        int64
	ProductID int64
	Message   string
	Discount  string // готовая к показу строка вида "-12%"
	IsActive  bool
	CreatedAt time.Time
}

func NewPriceAlert(productID int64, message, discount string) *PriceAlert {
	return &PriceAlert{
		ProductID: productID,
		Message:   message,
		Discount:  discount,
		IsActive:  true,
	}
}
