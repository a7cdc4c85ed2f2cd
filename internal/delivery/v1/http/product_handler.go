package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
	maxImageCount  int
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger, maxImageCount int) *ProductHandler {
	return &ProductHandler{
		catalogUsecase: catalogUsecase,
		logger:         logger,
		maxImageCount:  maxImageCount,
	}
}

// listProducts
//
//	@Summary		Сравнительная таблица товаров
//	@Description	Товары с минимальной ценой по ритейлерам, сортировкой и пагинацией
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Slug категории"
//	@Param			search		query		string	false	"Поисковый запрос (минимум 2 символа)"
//	@Param			sort		query		string	false	"Поле сортировки: price или suppliers"
//	@Param			order		query		string	false	"Порядок: asc или desc"
//	@Param			page		query		int		false	"Номер страницы"
//	@Param			per_page	query		int		false	"Размер страницы"
//	@Param			expanded	query		int		false	"ID развёрнутого товара"
//	@Success		200			{object}	ProductListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	expandedID, _ := strconv.ParseInt(q.Get("expanded"), 10, 64)

	req := &usecase.GetProductsReq{
		CategorySlug: q.Get("category"),
		Query:        q.Get("search"),
		SortBy:       usecase.SortField(q.Get("sort")),
		Order:        usecase.SortOrder(q.Get("order")),
		Page:         parsePositiveInt(r, "page"),
		PerPage:      parsePositiveInt(r, "per_page"),
		ExpandedID:   expandedID,
	}

	res, err := p.catalogUsecase.GetProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	out := ProductListResponse{
		Products: make([]ComparisonResponse, 0, len(res.Products)),
		Total:    res.Total,
		Expanded: toOffersResponse(res.Expanded),
	}
	for i := range res.Products {
		out.Products = append(out.Products, toComparisonResponse(&res.Products[i]))
	}

	WriteSuccess(w, http.StatusOK, out)
}

// getProduct
//
//	@Summary		Карточка товара
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id", e.ErrProductNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.GetProductByID(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// getProductPrices
//
//	@Summary		Все предложения по товару
//	@Description	Предложения ритейлеров, отранжированные по цене
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	OffersResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id}/prices [get]
func (p *ProductHandler) getProductPrices(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id", e.ErrProductNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	agg, err := p.catalogUsecase.GetProductOffers(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOffersResponse(agg))
}

// registerNewProduct
//
//	@Summary		Регистрация нового товара
//	@Description	Создаёт новый товар в каталоге с изображениями
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название товара"
//	@Param			category	formData	string	true	"Категория"
//	@Param			description	formData	string	false	"Описание"
//	@Param			trending	formData	bool	false	"Признак популярного товара"
//	@Param			images		formData	file	false	"Изображения товара"
//	@Success		201			{object}	ProductResponse	"Успешное создание"
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	name := r.FormValue("name")
	category := r.FormValue("category")
	if name == "" || category == "" {
		p.logger.Warnf("%d %s: name=%q category=%q", http.StatusBadRequest, e.ErrMissingFields.Error(), name, category)
		WriteError(w, e.ErrMissingFields)
		return
	}
	trending, _ := strconv.ParseBool(r.FormValue("trending"))

	images, err := parseImages(r.MultipartForm.File["images"], p.maxImageCount)
	if err != nil {
		if !errors.Is(err, e.ErrNoImages) {
			p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
	}

	req := usecase.NewAddNewProductReq(name, r.FormValue("description"), category, trending, images)
	product, err := p.catalogUsecase.RegisterNewProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"id":        product.ID,
		"name":      product.Name,
		"image_key": product.ImageKey,
	})
}
