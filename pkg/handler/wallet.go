package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social_wallet_back/pkg/middleware"
	"social_wallet_back/pkg/registry"
)

func (h *Handler) CreateWallet(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	wallet, err := h.service.Wallet.CreateWallet(userID)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"wallet": wallet,
	})
}

func (h *Handler) GetWallet(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	wallet, err := h.service.Wallet.GetWallet(userID)
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "wallet not found")
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"wallet": wallet,
	})
}

// Балансы токенов сети с оценкой в USD. Сеть задаётся query-параметром,
// по умолчанию берётся сеть подключённого chainID
func (h *Handler) GetBalance(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	wallet, err := h.service.Wallet.GetWallet(userID)
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "wallet not found")
		return
	}

	network := c.Query("network")
	if network == "" {
		network = h.service.Balances.ActiveNetwork()
	}

	sheet := h.service.Balances.Resolve(c.Request.Context(), network, wallet.Address)

	wrapOkJSON(c, map[string]interface{}{
		"balance": sheet,
	})
}

func (h *Handler) GetPrices(c *gin.Context) {
	table := h.service.Prices.GetPrices(c.Request.Context())

	wrapOkJSON(c, map[string]interface{}{
		"prices":       table.Prices,
		"refreshed_at": table.RefreshedAt,
	})
}

func (h *Handler) GetNetworks(c *gin.Context) {
	wrapOkJSON(c, map[string]interface{}{
		"networks": registry.Networks(),
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	userID := c.GetInt64(middleware.UserCtx)

	transactions, err := h.service.Transfers.GetTransactions(userID)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"transactions": transactions,
	})
}
