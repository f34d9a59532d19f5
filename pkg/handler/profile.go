package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social_wallet_back/pkg/middleware"
)

// Профиль пользователя: имя и аватар для экрана подтверждения перевода
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	profile, err := h.service.Profiles.GetProfile(userID)
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "profile not found")
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"profile": profile,
	})
}
