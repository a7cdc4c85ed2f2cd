package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUC
	logger        logger.Logger
}

func NewSearchHandler(searchUsecase usecase.SearchUC, logger logger.Logger) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase, logger: logger}
}

// search
//
//	@Summary		Поиск товаров
//	@Description	Поиск по подстроке имени с минимальной ценой в каждом результате
//	@Tags			search
//	@Produce		json
//	@Param			q			query		string	true	"Поисковый запрос (минимум 2 символа)"
//	@Param			retailers	query		string	false	"ID ритейлеров через запятую"
//	@Success		200			{array}		SearchResultResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/search [get]
func (s *SearchHandler) search(w http.ResponseWriter, r *http.Request) {
	req := &usecase.SearchReq{
		Query:       r.URL.Query().Get("q"),
		RetailerIDs: parseRetailerIDs(r.URL.Query().Get("retailers")),
	}

	results, err := s.searchUsecase.Search(r.Context(), req)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]SearchResultResponse, 0, len(results))
	for i := range results {
		item := SearchResultResponse{
			Product: toProductResponse(&usecase.ProductWithCategory{
				Product: results[i].Product,
			}),
			OffersCount:   results[i].OffersCount,
			DiscountLabel: results[i].DiscountLabel,
		}
		item.Product.CategoryName = results[i].CategoryName
		cheapest := toOfferResponse(&results[i].Cheapest)
		item.Cheapest = &cheapest
		res = append(res, item)
	}

	WriteSuccess(w, http.StatusOK, res)
}

// parseRetailerIDs разбирает список вида "1,3,5", пропуская мусорные значения.
func parseRetailerIDs(csv string) []int64 {
	if csv == "" {
		return nil
	}

	parts := strings.Split(csv, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}
