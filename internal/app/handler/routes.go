package handler

import (
	"commissions/internal/app/middleware"
	"commissions/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Заказы (Orders) ============
	orders := api.Group("/orders")
	{
		// Для всех авторизованных пользователей
		orders.GET("", authMiddleware.WithAuthCheck(role.Customer, role.Admin), h.GetOrders)
		orders.GET("/:id", authMiddleware.WithAuthCheck(role.Customer, role.Admin), h.GetOrderDetail)
		orders.POST("/:id/action", authMiddleware.WithAuthCheck(role.Customer, role.Admin), h.HandleOrderAction)

		// Только для заказчиков (администраторы заказы не размещают и не редактируют)
		orders.POST("", authMiddleware.WithAuthCheck(role.Customer), h.PlaceOrder)
		orders.PUT("/:id", authMiddleware.WithAuthCheck(role.Customer), h.EditOrder)

		// Только для администратора
		orders.GET("/accepted", authMiddleware.WithAuthCheck(role.Admin), h.GetAcceptedOrders)
		orders.PUT("/:id/price", authMiddleware.WithAuthCheck(role.Admin), h.SetOrderPrice)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Customer, role.Admin), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Customer, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
