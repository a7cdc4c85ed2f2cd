package http

import (
	"encoding/json"
	"net/http"

	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
)

type PriceHandler struct {
	priceUsecase usecase.PriceUC
	logger       logger.Logger
}

func NewPriceHandler(priceUsecase usecase.PriceUC, logger logger.Logger) *PriceHandler {
	return &PriceHandler{priceUsecase: priceUsecase, logger: logger}
}

// upsertPrice
//
//	@Summary		Запись цены ритейлера
//	@Description	Создаёт или перезаписывает предложение ритейлера по товару
//	@Tags			prices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpsertPriceRequest	true	"Цена ритейлера"
//	@Success		201		{object}	OfferResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/prices [post]
func (p *PriceHandler) upsertPrice(w http.ResponseWriter, r *http.Request) {
	var body UpsertPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if body.ProductID <= 0 {
		WriteError(w, e.ErrInvalidProductID)
		return
	}
	if body.RetailerID <= 0 {
		WriteError(w, e.ErrInvalidRetailerID)
		return
	}

	price, err := parsePrice(body.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	req := &usecase.UpsertPriceReq{
		ProductID:  body.ProductID,
		RetailerID: body.RetailerID,
		Price:      price,
		InStock:    true,
	}
	if body.InStock != nil {
		req.InStock = *body.InStock
	}
	if body.OriginalPrice != nil {
		original, err := parsePrice(*body.OriginalPrice)
		if err != nil {
			WriteError(w, err)
			return
		}
		req.OriginalPrice = &original
	}

	offer, err := p.priceUsecase.UpsertPrice(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOfferResponse(offer))
}

// updatePrice
//
//	@Summary		Частичное обновление цены
//	@Tags			prices
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"ID записи цены"
//	@Param			request	body		UpdatePriceRequest	true	"Изменяемые поля"
//	@Success		200		{object}	OfferResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/prices/{id} [put]
func (p *PriceHandler) updatePrice(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id", e.ErrPriceNotFound)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body UpdatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	patch := &usecase.UpdatePriceReq{InStock: body.InStock}
	if body.Price != nil {
		price, err := parsePrice(*body.Price)
		if err != nil {
			WriteError(w, err)
			return
		}
		patch.Price = &price
	}
	if body.OriginalPrice != nil {
		original, err := parsePrice(*body.OriginalPrice)
		if err != nil {
			WriteError(w, err)
			return
		}
		patch.OriginalPrice = &original
	}

	if patch.Price == nil && patch.OriginalPrice == nil && patch.InStock == nil {
		WriteError(w, e.ErrMissingFields)
		return
	}

	offer, err := p.priceUsecase.UpdatePrice(r.Context(), id, patch)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOfferResponse(offer))
}
