package http

import (
	"net/http"

	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler обслуживает категории и ритейлеров.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает все категории каталога
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		CategoryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categories [get]
func (c *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.GetCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		res = append(res, toCategoryResponse(&categories[i]))
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getCategory
//
//	@Summary		Категория по slug
//	@Tags			categories
//	@Produce		json
//	@Param			slug	path		string	true	"Slug категории"
//	@Success		200		{object}	CategoryResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/categories/{slug} [get]
func (c *CatalogHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteError(w, e.ErrCategoryNotFound)
		return
	}

	category, err := c.catalogUsecase.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// listRetailers
//
//	@Summary		Список ритейлеров
//	@Tags			retailers
//	@Produce		json
//	@Success		200	{array}		RetailerResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/retailers [get]
func (c *CatalogHandler) listRetailers(w http.ResponseWriter, r *http.Request) {
	retailers, err := c.catalogUsecase.GetRetailers(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]RetailerResponse, 0, len(retailers))
	for i := range retailers {
		res = append(res, toRetailerResponse(&retailers[i]))
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getRetailer
//
//	@Summary		Ритейлер по ID
//	@Tags			retailers
//	@Produce		json
//	@Param			id	path		int	true	"ID ритейлера"
//	@Success		200	{object}	RetailerResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/retailers/{id} [get]
func (c *CatalogHandler) getRetailer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id", e.ErrRetailerNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	retailer, err := c.catalogUsecase.GetRetailerByID(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRetailerResponse(retailer))
}
