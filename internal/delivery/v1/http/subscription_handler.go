package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
)

// Заголовки, через которые внешний шлюз аутентификации передаёт пользователя.
const (
	headerUserID    = "X-User-Id"
	headerUserEmail = "X-User-Email"
)

type SubscriptionHandler struct {
	subscriptionUsecase usecase.SubscriptionUC
	logger              logger.Logger
}

func NewSubscriptionHandler(subscriptionUsecase usecase.SubscriptionUC, logger logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase, logger: logger}
}

// subscribe
//
//	@Summary		Оформление подписки
//	@Description	Оформляет или продлевает подписку для пользователя из заголовков
//	@Tags			subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			X-User-Id		header		string				false	"ID пользователя"
//	@Param			X-User-Email	header		string				true	"Email пользователя"
//	@Param			request			body		SubscribeRequest	true	"Выбранный тариф"
//	@Success		201				{object}	SubscriptionResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/subscriptions [post]
func (s *SubscriptionHandler) subscribe(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.Header.Get(headerUserEmail))
	if email == "" {
		WriteError(w, e.ErrEmailRequired)
		return
	}

	var body SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	sub, err := s.subscriptionUsecase.Subscribe(r.Context(), &usecase.SubscribeReq{
		UserID: r.Header.Get(headerUserID),
		Email:  email,
		PlanID: body.PlanID,
	})
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toSubscriptionResponse(sub))
}

// getSubscription
//
//	@Summary		Текущая подписка
//	@Tags			subscriptions
//	@Produce		json
//	@Param			X-User-Email	header		string	true	"Email пользователя"
//	@Success		200				{object}	SubscriptionResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/subscriptions [get]
func (s *SubscriptionHandler) getSubscription(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.Header.Get(headerUserEmail))
	if email == "" {
		WriteError(w, e.ErrEmailRequired)
		return
	}

	sub, err := s.subscriptionUsecase.GetSubscription(r.Context(), email)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSubscriptionResponse(sub))
}

// cancelSubscription
//
//	@Summary		Отмена подписки
//	@Description	Деактивирует подписку, сохраняя запись и тариф
//	@Tags			subscriptions
//	@Produce		json
//	@Param			X-User-Email	header		string	true	"Email пользователя"
//	@Success		200				{object}	SubscriptionResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/subscriptions [delete]
func (s *SubscriptionHandler) cancelSubscription(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.Header.Get(headerUserEmail))
	if email == "" {
		WriteError(w, e.ErrEmailRequired)
		return
	}

	sub, err := s.subscriptionUsecase.CancelSubscription(r.Context(), email)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSubscriptionResponse(sub))
}
