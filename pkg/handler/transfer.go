package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_wallet_back/models"
	"social_wallet_back/pkg/middleware"
	"social_wallet_back/pkg/service"
)

func (h *Handler) GetDraft(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	wrapOkJSON(c, map[string]interface{}{
		"draft": h.service.Transfers.GetDraft(userID),
	})
}

func (h *Handler) UpdateDraft(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	var input models.TransferDraft
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"draft": h.service.Transfers.UpdateDraft(userID, input),
	})
}

// Проверка перевода перед подтверждением: валидация полей и сети.
// NetworkMismatch — не ошибка, а состояние с запросом на переключение
func (h *Handler) ReviewTransfer(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	review, err := h.service.Transfers.Review(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFields) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := map[string]interface{}{
		"review": review,
	}

	// профиль отправителя подписывает экран подтверждения; его отсутствие
	// перевод не блокирует
	if review.State == models.StateConfirming {
		if profile, perr := h.service.Profiles.GetProfile(userID); perr == nil {
			response["sender"] = profile
		}
	}

	wrapOkJSON(c, response)
}

func (h *Handler) ConfirmTransfer(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	result, err := h.service.Transfers.Confirm(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTransferInFlight):
			newErrorResponse(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrEmptyFields), errors.Is(err, service.ErrBadAmount):
			newErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"result": result,
	})
}
