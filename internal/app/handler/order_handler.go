package handler

import (
	"net/http"

	"commissions/internal/app/authz"
	"commissions/internal/app/dto"
	"commissions/internal/app/intake"
	"commissions/internal/app/validation"

	"github.com/gin-gonic/gin"
)

// orderFormFromRequest собирает сырые поля формы заказа из multipart-запроса
func orderFormFromRequest(c *gin.Context) validation.OrderForm {
	return validation.OrderForm{
		OrderName:                    c.PostForm("order_name"),
		CharacterPart:                c.PostForm("character_part"),
		PreferredStyle:               c.PostForm("preferred_style"),
		PoseView:                     c.PostForm("pose_view"),
		PoseDescription:              c.PostForm("pose_description"),
		CharacterFeaturesDescription: c.PostForm("character_features_description"),
		OutfitDescription:            c.PostForm("outfit_description"),
		BackgroundPreference:         c.PostForm("background"),
		BackgroundDescription:        c.PostForm("background_description"),
		DueDate:                      c.PostForm("due_date"),
		Colors:                       c.PostFormArray("colors[]"),
	}
}

// uploadedFiles читает файлы из multipart-поля формы
func (h *APIHandler) uploadedFiles(c *gin.Context, field string) ([]intake.File, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// Форма без файлов — допустимо
		return nil, true
	}

	files, err := intake.FromMultipart(form.File[field])
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "failed to read uploaded files")
		return nil, false
	}
	return files, true
}

// GetOrders получает список заказов
// @Summary Получение списка заказов
// @Description Администратор видит все заказы, заказчик — только свои; сортировка по сроку сдачи
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders [get]
func (h *APIHandler) GetOrders(c *gin.Context) {
	identity, err := h.identityFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	orders, err := h.Orders.List(c.Request.Context(), identity)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderListResponse(orders))
}

// GetAcceptedOrders получает принятые в работу заказы
// @Summary Получение принятых заказов
// @Description Возвращает заказы в статусе accepted (только для администратора)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/orders/accepted [get]
func (h *APIHandler) GetAcceptedOrders(c *gin.Context) {
	identity, err := h.identityFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	orders, err := h.Orders.ListAccepted(c.Request.Context(), identity)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderListResponse(orders))
}

// GetOrderDetail получает карточку заказа
// @Summary Получение заказа по ID
// @Description Возвращает заказ с палитрой, референсами и данными владельца
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.OrderDetailResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *APIHandler) GetOrderDetail(c *gin.Context) {
	identity, err := h.identityFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	orderID, err := authz.ParseOrderID(c.Param("id"))
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	detail, err := h.Orders.GetDetail(c.Request.Context(), identity, orderID)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderDetailResponse(detail))
}

// PlaceOrder размещает новый заказ
// @Summary Размещение заказа
// @Description Принимает multipart-форму с полями заказа, палитрой и референсами
// @Tags Orders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/orders [post]
func (h *APIHandler) PlaceOrder(c *gin.Context) {
	identity, err := h.identityFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	characterFiles, ok := h.uploadedFiles(c, "character_references[]")
	if !ok {
		return
	}
	backgroundFiles, ok := h.uploadedFiles(c, "background_references[]")
	if !ok {
		return
	}

	orderID, err := h.Orders.Place(c.Request.Context(), identity, orderFormFromRequest(c), characterFiles, backgroundFiles)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "Order submitted successfully!", gin.H{
		"order_id": orderID,
	})
}

// EditOrder редактирует заказ владельца
// @Summary Редактирование заказа
// @Description Перезаписывает поля заказа, заменяет палитру и добавляет новые референсы
// @Tags Orders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/orders/{id} [put]
func (h *APIHandler) EditOrder(c *gin.Context) {
	identity, err := h.identityFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	orderID, err := authz.ParseOrderID(c.Param("id"))
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	characterFiles, ok := h.uploadedFiles(c, "character_references[]")
	if !ok {
		return
	}
	backgroundFiles, ok := h.uploadedFiles(c, "background_references[]")
	if !ok {
		return
	}

	err = h.Orders.Edit(c.Request.Context(), identity, orderID, orderFormFromRequest(c), characterFiles, backgroundFiles)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Order edited successfully!", nil)
}

// SetOrderPrice назначает цену заказа
// @Summary Назначение цены
// @Description Устанавливает цену и переводит заказ в статус reviewed (только для администратора)
// @Tags Orders
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Param order_price formData string false "Цена заказа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/orders/{id}/price [put]
func (h *APIHandler) SetOrderPrice(c *gin.Context) {
	identity, err := h.identityFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	orderID, err := authz.ParseOrderID(c.Param("id"))
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	rawPrice := c.PostForm("order_price")
	if err := h.Orders.SetPriceAndReview(c.Request.Context(), identity, orderID, rawPrice); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	// Пустая цена — no-op, но отвечаем успехом как при обычном сохранении
	message := "Price edited!"
	if rawPrice == "" {
		message = "Nothing to update"
	}
	h.successResponse(c, http.StatusOK, message, nil)
}

// HandleOrderAction выполняет действие над заказом
// @Summary Действие над заказом
// @Description accept/complete — администратор; remove/reject — администратор или владелец
// @Tags Orders
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Param action formData string true "Действие: accept, complete, remove, reject"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/orders/{id}/action [post]
func (h *APIHandler) HandleOrderAction(c *gin.Context) {
	identity, err := h.identityFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	orderID, err := authz.ParseOrderID(c.Param("id"))
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	action := c.PostForm("action")
	if err := h.Orders.ApplyAction(c.Request.Context(), identity, orderID, action); err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, actionMessage(action), nil)
}

func actionMessage(action string) string {
	switch action {
	case "accept":
		return "Order accepted!"
	case "complete":
		return "Order completed!"
	default:
		return "Order deleted!"
	}
}
