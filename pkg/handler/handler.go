package handler

import (
	"social_wallet_back/pkg/middleware"
	"social_wallet_back/pkg/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) InitRoute() *gin.Engine {
	router := gin.New()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://camly.social"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", h.GetMe)
	}

	api := router.Group("/api", middleware.AuthMiddleware())
	{
		api.GET("/profile", h.GetProfile)

		wallet := api.Group("/wallet")
		{
			wallet.GET("/", h.GetWallet)
			wallet.POST("/create", h.CreateWallet)
			wallet.GET("/balance", h.GetBalance)
			wallet.GET("/prices", h.GetPrices)
			wallet.GET("/networks", h.GetNetworks)
			wallet.GET("/transactions", h.GetTransactions)
		}

		transfer := api.Group("/transfer")
		{
			transfer.GET("/draft", h.GetDraft)
			transfer.POST("/draft", h.UpdateDraft)
			transfer.POST("/review", h.ReviewTransfer)
			transfer.POST("/confirm", h.ConfirmTransfer)
		}

		contacts := api.Group("/contacts")
		{
			contacts.GET("/", h.GetContacts)
			contacts.POST("/", h.CreateContact)
			contacts.DELETE("/:id", h.DeleteContact)
		}
	}
	return router
}
