package usecase

import (
	"sort"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/shopspring/decimal"
)

// Aggregate сводит ценовые записи одного товара: ранжирует по возрастанию цены
// (стабильно, при равенстве сохраняется исходный порядок), выделяет минимальную
// цену и строит индикатор изменения цены. Чистая функция, вход не мутируется.
func Aggregate(offers []domain.PriceOffer) *AggregateRes {
	ranked := make([]domain.PriceOffer, len(offers))
	copy(ranked, offers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price.LessThan(ranked[j].Price)
	})

	res := &AggregateRes{
		Ranked:      ranked,
		ChangeLabel: changeLabel(offers),
	}
	if len(ranked) > 0 {
		res.Lowest = &ranked[0]
	}

	return res
}

// changeLabel сравнивает самую старую и самую новую запись по last_updated
// и возвращает процент изменения с одним знаком после запятой, с явным "+"
// для роста цены. Меньше двух записей либо нулевая старая цена дают "0%".
func changeLabel(offers []domain.PriceOffer) string {
	if len(offers) < 2 {
		return "0%"
	}

	byTime := make([]domain.PriceOffer, len(offers))
	copy(byTime, offers)
	sort.SliceStable(byTime, func(i, j int) bool {
		return byTime[i].LastUpdated.Before(byTime[j].LastUpdated)
	})

	oldest := byTime[0]
	newest := byTime[len(byTime)-1]

	// Защита от деления на ноль: без неё в лейбл утекли бы Inf/NaN.
	if oldest.Price.IsZero() {
		return "0%"
	}

	change := newest.Price.Sub(oldest.Price).
		Div(oldest.Price).
		Mul(decimal.NewFromInt(100))

	label := change.StringFixed(1) + "%"
	if change.IsPositive() {
		label = "+" + label
	}

	return label
}

// discountLabel — скидка минимальной цены относительно максимальной
// справочной (оригинальной либо текущей) цены, округлённая до целого.
// Нулевая или отрицательная скидка отображается как "Best Price".
func discountLabel(offers []domain.PriceOffer) string {
	const bestPrice = "Best Price"

	if len(offers) == 0 {
		return bestPrice
	}

	maxRef := offers[0].ReferencePrice()
	minPrice := offers[0].Price
	for _, offer := range offers[1:] {
		if ref := offer.ReferencePrice(); ref.GreaterThan(maxRef) {
			maxRef = ref
		}
		if offer.Price.LessThan(minPrice) {
			minPrice = offer.Price
		}
	}

	if maxRef.IsZero() {
		return bestPrice
	}

	discount := maxRef.Sub(minPrice).
		Div(maxRef).
		Mul(decimal.NewFromInt(100)).
		Round(0)

	if discount.LessThanOrEqual(decimal.Zero) {
		return bestPrice
	}

	return discount.String() + "%"
}
