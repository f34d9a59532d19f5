package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_wallet_back/models"
)

func (h *Handler) Login(c *gin.Context) {
	var input models.User

	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.Authorization.GetUserByExternalId(input.ExternalID)
	if err != nil {
		// Если пользователь не найден — создаём
		if errors.Is(err, sql.ErrNoRows) {
			id, err := h.service.Authorization.CreateUser(input)
			if err != nil {
				newErrorResponse(c, http.StatusInternalServerError, "cannot create user")
				return
			}

			input.ID = id
			c.JSON(http.StatusOK, input)
			return
		}

		newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"user": user,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	externalID := c.Query("external_id")
	if externalID == "" {
		newErrorResponse(c, http.StatusBadRequest, "external_id is required")
		return
	}

	user, err := h.service.Authorization.GetUserByExternalId(externalID)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "something went wrong")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"user": user,
	})
}
