package handler

import (
	"errors"
	"fmt"
	"net/http"

	"commissions/internal/app/authz"
	"commissions/internal/app/dto"
	"commissions/internal/app/repository"
	"commissions/internal/app/role"
	"commissions/internal/app/service"
	"commissions/internal/app/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	Orders      *service.OrderService
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, orders *service.OrderService, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Orders:      orders,
		AuthHandler: authHandler,
	}
}

// Получение identity текущего пользователя из контекста
func (h *APIHandler) identityFromContext(c *gin.Context) (service.Identity, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return service.Identity{}, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("identityFromContext: invalid userID type: %T", userID)
		return service.Identity{}, fmt.Errorf("invalid user ID")
	}

	return service.Identity{UserID: id, Role: r}, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// serviceErrorResponse переводит ошибку операции в HTTP-ответ: ошибки
// валидации — 400 с сообщением как есть, запреты — единый 403, остальное —
// generic 500 без деталей
func (h *APIHandler) serviceErrorResponse(c *gin.Context, err error) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		h.errorResponse(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, authz.ErrInvalidOrderID):
		h.errorResponse(c, http.StatusForbidden, "unauthorized action")
	default:
		logrus.Error("internal error: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
