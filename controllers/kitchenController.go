package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-table-order/helpers"
	"go-table-order/services"
)

type KitchenController struct {
	board *services.KitchenBoard
	hub   *helpers.Hub
}

func NewKitchenController(board *services.KitchenBoard, hub *helpers.Hub) *KitchenController {
	return &KitchenController{board: board, hub: hub}
}

// GetBoard returns the live read model: every order with its next action,
// plus open waiter calls. Delete is valid from any state so it is not
// listed per order.
func (ct *KitchenController) GetBoard() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"orders":      ct.board.Orders(),
			"waiterCalls": ct.board.Calls(),
		})
	}
}

// Stream upgrades to a websocket that receives a message per applied
// change-feed event.
func (ct *KitchenController) Stream() gin.HandlerFunc {
	return ct.hub.Handle()
}
