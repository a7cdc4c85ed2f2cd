package http

import (
	"encoding/json"
	"net/http"

	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUC
	logger       logger.Logger
}

func NewAlertHandler(alertUsecase usecase.AlertUC, logger logger.Logger) *AlertHandler {
	return &AlertHandler{alertUsecase: alertUsecase, logger: logger}
}

// listAlerts
//
//	@Summary		Активные уведомления
//	@Tags			alerts
//	@Produce		json
//	@Success		200	{array}		AlertResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/alerts [get]
func (a *AlertHandler) listAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := a.alertUsecase.GetActiveAlerts(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]AlertResponse, 0, len(alerts))
	for i := range alerts {
		res = append(res, toAlertResponse(&alerts[i]))
	}

	WriteSuccess(w, http.StatusOK, res)
}

// createAlert
//
//	@Summary		Создание уведомления
//	@Tags			alerts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateAlertRequest	true	"Уведомление"
//	@Success		201		{object}	AlertResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/alerts [post]
func (a *AlertHandler) createAlert(w http.ResponseWriter, r *http.Request) {
	var body CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	alert, err := a.alertUsecase.CreateAlert(r.Context(), &usecase.CreateAlertReq{
		ProductID: body.ProductID,
		Message:   body.Message,
		Discount:  body.Discount,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toAlertResponse(alert))
}
