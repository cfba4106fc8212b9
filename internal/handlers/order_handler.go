package handlers

import (
	"net/http"

	"renta_backend/internal/middleware"
	"renta_backend/internal/models"
	"renta_backend/internal/services"
	"renta_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

// RegisterRoutes регистрирует маршруты заказов. Смена статусов -
// именованные действия вместо свободного PATCH: множество переходов
// закрыто, и каждый эндпоинт ведет ровно в один статус
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", h.Create)
		orders.GET("", h.ListMine)
		orders.GET("/:id", h.GetByID)
	}

	// Админский список живет под /admin: сегмент под /orders
	// конфликтовал бы с параметром :id
	rg.GET("/admin/orders", middleware.AuthMiddleware(), middleware.RequireMinRole(models.UserRoleAdmin), h.ListAll)

	admin := rg.Group("/orders")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireMinRole(models.UserRoleAdmin))
	{
		admin.PUT("/:id/pick-up", h.transitionTo(models.OrderStatusPickedUp))
		admin.PUT("/:id/in-progress", h.transitionTo(models.OrderStatusInProgress))
		admin.PUT("/:id/complete", h.transitionTo(models.OrderStatusCompleted))
		admin.PUT("/:id/cancel", h.transitionTo(models.OrderStatusCancelled))
		admin.PUT("/:id/payment-status", h.UpdatePaymentStatus)
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusCreated, "Order placed", "orders.placed", order)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	result, err := h.orderService.FindAllForUser(userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", result)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	var req dto.OrderFilterRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	result, err := h.orderService.FindWithFilter(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", result)
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.FindByID(actorID, actorRole, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", order)
}

func (h *OrderHandler) transitionTo(status models.OrderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := h.orderService.UpdateStatus(c.Param("id"), status)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		Success(c, http.StatusOK, "Order status updated", "orders.status_updated", order)
	}
}

func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdatePaymentStatus(c.Param("id"), models.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Payment status updated", "orders.payment_status_updated", order)
}
