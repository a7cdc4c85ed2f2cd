package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
)

// SearchUseCase — текстовый поиск по каталогу с опциональным фильтром
// по ритейлерам и агрегированной ценой в каждом результате.
type SearchUseCase struct {
	productRepo ProductRepository
	priceRepo   PriceRepository
	logger      logger.Logger
}

func NewSearchUC(productRepo ProductRepository, priceRepo PriceRepository, logger logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		productRepo: productRepo,
		priceRepo:   priceRepo,
		logger:      logger,
	}
}

// Search выполняет поиск по подстроке имени. Запросы короче двух символов
// возвращают пустую выдачу без обращения к хранилищу. Товары без предложений
// (после фильтра по ритейлерам) из выдачи исключаются.
func (s *SearchUseCase) Search(ctx context.Context, req *SearchReq) ([]SearchResult, error) {
	const op = "SearchUseCase.Search"

	query := strings.TrimSpace(req.Query)
	if len([]rune(query)) < minQueryLen {
		return []SearchResult{}, nil
	}

	products, err := s.productRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var allowed map[int64]struct{}
	if len(req.RetailerIDs) > 0 {
		allowed = make(map[int64]struct{}, len(req.RetailerIDs))
		for _, id := range req.RetailerIDs {
			allowed[id] = struct{}{}
		}
	}

	results := make([]*SearchResult, len(products))
	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, maxConcurrentPriceFetch)
	)
	for i, p := range products {
		wg.Add(1)
		go func(i int, pwc ProductWithCategory) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			offers, err := s.priceRepo.ListByProduct(ctx, pwc.Product.ID)
			if err != nil {
				s.logger.Warnf("dropping product %d from search results: %v", pwc.Product.ID, e.Wrap(op, err))
				return
			}

			offers = filterOffers(offers, allowed)
			if len(offers) == 0 {
				return
			}

			agg := Aggregate(offers)
			results[i] = &SearchResult{
				Product:       pwc.Product,
				CategoryName:  pwc.Category.Name,
				Cheapest:      *agg.Lowest,
				OffersCount:   len(offers),
				DiscountLabel: discountLabel(offers),
			}
		}(i, p)
	}
	wg.Wait()

	out := make([]SearchResult, 0, len(products))
	for i := range results {
		if results[i] != nil {
			out = append(out, *results[i])
		}
	}

	return out, nil
}

// filterOffers оставляет предложения только разрешённых ритейлеров.
// Пустой allow-list означает отсутствие фильтра.
func filterOffers(offers []domain.PriceOffer, allowed map[int64]struct{}) []domain.PriceOffer {
	if allowed == nil {
		return offers
	}

	filtered := make([]domain.PriceOffer, 0, len(offers))
	for _, o := range offers {
		if _, ok := allowed[o.Retailer.ID]; ok {
			filtered = append(filtered, o)
		}
	}

	return filtered
}
