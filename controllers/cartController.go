package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-table-order/middleware"
	"go-table-order/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

type addCartItemRequest struct {
	ItemID       int    `json:"itemId" validate:"required"`
	CustomerName string `json:"customerName"`
}

type setQuantityRequest struct {
	ItemID       int    `json:"itemId" validate:"required"`
	CustomerName string `json:"customerName"`
	Quantity     int    `json:"quantity" validate:"min=0"`
}

type setNoteRequest struct {
	ItemID       int    `json:"itemId" validate:"required"`
	CustomerName string `json:"customerName"`
	Note         string `json:"note"`
}

func (ct *CartController) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := ct.carts.Snapshot(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"lines": cart.Lines, "total": cart.Total()})
	}
}

func (ct *CartController) AddItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := ct.carts.Add(middleware.SessionID(c), req.ItemID, req.CustomerName); err != nil {
			respondError(c, err)
			return
		}
		cart := ct.carts.Snapshot(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"lines": cart.Lines, "total": cart.Total()})
	}
}

func (ct *CartController) SetQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ct.carts.SetQuantity(middleware.SessionID(c), req.ItemID, req.CustomerName, req.Quantity)
		cart := ct.carts.Snapshot(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"lines": cart.Lines, "total": cart.Total()})
	}
}

func (ct *CartController) SetNote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setNoteRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ct.carts.SetNote(middleware.SessionID(c), req.ItemID, req.CustomerName, req.Note)
		cart := ct.carts.Snapshot(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"lines": cart.Lines, "total": cart.Total()})
	}
}

func (ct *CartController) RemoveItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_id must be numeric"})
			return
		}
		ct.carts.Remove(middleware.SessionID(c), itemID, c.Query("customerName"))
		cart := ct.carts.Snapshot(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"lines": cart.Lines, "total": cart.Total()})
	}
}
