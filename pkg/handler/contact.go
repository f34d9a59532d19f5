package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social_wallet_back/models"
	"social_wallet_back/pkg/middleware"
)

func (h *Handler) GetContacts(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	contacts, err := h.service.Contacts.GetContacts(userID)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"contacts": contacts,
	})
}

func (h *Handler) CreateContact(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	var input models.ContactInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.Contacts.CreateContact(userID, input)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "cannot create contact")
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"id": id,
	})
}

func (h *Handler) DeleteContact(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	contactID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid contact id")
		return
	}

	if err := h.service.Contacts.DeleteContact(userID, contactID); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "cannot delete contact")
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"status": "ok",
	})
}
