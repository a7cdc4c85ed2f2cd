package usecase

import "sort"

// BuildView сортирует строки сравнительной таблицы по запрошенному полю.
// Сортировка стабильная: равные строки сохраняют исходный порядок.
// Товары без единой цены при сортировке по цене трактуются как бесконечно
// дорогие: последние по возрастанию, первые по убыванию.
func BuildView(rows []ProductComparison, sortBy SortField, order SortOrder) []ProductComparison {
	out := make([]ProductComparison, len(rows))
	copy(out, rows)

	var less func(a, b *ProductComparison) bool
	switch sortBy {
	case SortBySuppliers:
		less = func(a, b *ProductComparison) bool {
			return a.OffersCount < b.OffersCount
		}
	default: // SortByPrice
		less = func(a, b *ProductComparison) bool {
			if a.LowestPrice == nil {
				return false
			}
			if b.LowestPrice == nil {
				return true
			}
			return a.LowestPrice.LessThan(*b.LowestPrice)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == OrderDesc {
			return less(&out[j], &out[i])
		}
		return less(&out[i], &out[j])
	})

	return out
}

// Paginate применяет постраничную выборку к уже отсортированным строкам.
// Нулевые page/perPage отключают пагинацию, сохраняя исходный контракт.
func Paginate(rows []ProductComparison, page, perPage int) []ProductComparison {
	if page <= 0 || perPage <= 0 {
		return rows
	}

	from := (page - 1) * perPage
	if from >= len(rows) {
		return []ProductComparison{}
	}

	to := from + perPage
	if to > len(rows) {
		to = len(rows)
	}

	return rows[from:to]
}

// ToggleExpanded возвращает новое значение развёрнутой строки: повторный клик
// по той же строке сворачивает её, клик по другой переносит единственное
// раскрытие (не стек). Ноль — всё свёрнуто.
func ToggleExpanded(current, clicked int64) int64 {
	if current == clicked {
		return 0
	}
	return clicked
}
