package dto

import (
	"fmt"
	"time"

	"commissions/internal/app/ds"
	"commissions/internal/app/repository"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Заказы (Orders) ============

type OrderResponse struct {
	ID        uint      `json:"id"`
	OrderName string    `json:"order_name"`
	Price     string    `json:"price"` // "-" пока цена не назначена
	Status    string    `json:"status"`
	DueDate   string    `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type OrderDetailResponse struct {
	OrderResponse
	CharacterPart                string   `json:"character_part"`
	PreferredStyle               string   `json:"preferred_style"`
	PoseView                     string   `json:"pose_view"`
	PoseDescription              string   `json:"pose_description"`
	CharacterFeaturesDescription string   `json:"character_features_description"`
	OutfitDescription            string   `json:"outfit_description"`
	HasBackground                bool     `json:"has_background"`
	BackgroundDescription        *string  `json:"background_description"`
	Colors                       []string `json:"colors"`
	CharacterReferences          []string `json:"character_references"`
	BackgroundReferences         []string `json:"background_references"`
	OwnerUsername                string   `json:"owner_username"`
	OwnerEmail                   string   `json:"owner_email"`
}

// FormatPrice выводит цену в долларах или "-", пока она не назначена
func FormatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *price)
}

const dueDateLayout = "2006-01-02"

func NewOrderResponse(order ds.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		OrderName: order.OrderName,
		Price:     FormatPrice(order.Price),
		Status:    order.Status,
		DueDate:   order.DueDate.Format(dueDateLayout),
		CreatedAt: order.CreatedAt,
	}
}

func NewOrderListResponse(orders []ds.Order) OrderListResponse {
	items := make([]OrderResponse, len(orders))
	for i, order := range orders {
		items[i] = NewOrderResponse(order)
	}
	return OrderListResponse{Orders: items, Total: len(items)}
}

func NewOrderDetailResponse(detail *repository.OrderDetail) OrderDetailResponse {
	return OrderDetailResponse{
		OrderResponse:                NewOrderResponse(detail.Order),
		CharacterPart:                detail.Order.CharacterPart,
		PreferredStyle:               detail.Order.PreferredStyle,
		PoseView:                     detail.Order.PoseView,
		PoseDescription:              detail.Order.PoseDescription,
		CharacterFeaturesDescription: detail.Order.CharacterFeaturesDescription,
		OutfitDescription:            detail.Order.OutfitDescription,
		HasBackground:                detail.Order.HasBackground,
		BackgroundDescription:        detail.Order.BackgroundDescription,
		Colors:                       detail.Colors,
		CharacterReferences:          detail.CharacterReferences,
		BackgroundReferences:         detail.BackgroundReferences,
		OwnerUsername:                detail.OwnerUsername,
		OwnerEmail:                   detail.OwnerEmail,
	}
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50"`
	Password     string `json:"password" binding:"required,min=6"`
	Confirmation string `json:"confirmation" binding:"required"`
	Email        string `json:"email" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
