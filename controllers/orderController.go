package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-table-order/middleware"
	"go-table-order/models"
	"go-table-order/services"
)

type OrderController struct {
	orders *services.OrderService
	carts  *services.CartService
}

func NewOrderController(orders *services.OrderService, carts *services.CartService) *OrderController {
	return &OrderController{orders: orders, carts: carts}
}

type submitOrderRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	TableNumber  string `json:"tableNumber" validate:"required"`
}

type overrideStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SubmitOrder flushes the session's cart into the store. The cart is only
// cleared after the store call succeeded, so a failed submission leaves
// everything as it was.
func (ct *OrderController) SubmitOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sessionID := middleware.SessionID(c)
		cart := ct.carts.Snapshot(sessionID)
		order, merged, err := ct.orders.Submit(c.Request.Context(), req.TableNumber, req.CustomerName, cart)
		if err != nil {
			respondError(c, err)
			return
		}
		ct.carts.Clear(sessionID)
		c.JSON(http.StatusOK, gin.H{"order": order, "merged": merged, "total": order.Total()})
	}
}

func (ct *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ct.orders.List(c.Request.Context(), c.Query("table"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// AdvanceOrder moves the order one step along the status chain.
func (ct *OrderController) AdvanceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := ct.orders.Advance(c.Request.Context(), c.Param("order_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// OverrideStatus is the explicit staff control allowed to reopen an
// earlier stage.
func (ct *OrderController) OverrideStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req overrideStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := ct.orders.Override(c.Request.Context(), c.Param("order_id"), models.Status(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (ct *OrderController) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ct.orders.Delete(c.Request.Context(), c.Param("order_id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": c.Param("order_id")})
	}
}
