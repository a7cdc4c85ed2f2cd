package converter

import "github.com/shopspring/decimal"

// ComparisonRedisModel — JSON-представление строки сравнения в кэше.
type ComparisonRedisModel struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	ImageKey       string           `json:"image_key"`
	CategoryName   string           `json:"category_name"`
	CategorySlug   string           `json:"category_slug"`
	IsTrending     bool             `json:"is_trending"`
	LowestPrice    *decimal.Decimal `json:"lowest_price"`
	LowestRetailer string           `json:"lowest_retailer"`
	OffersCount    int              `json:"offers_count"`
	ChangeLabel    string           `json:"change_label"`
}
