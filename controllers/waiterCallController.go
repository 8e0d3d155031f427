package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-table-order/services"
)

type WaiterCallController struct {
	calls *services.WaiterCallService
}

func NewWaiterCallController(calls *services.WaiterCallService) *WaiterCallController {
	return &WaiterCallController{calls: calls}
}

type waiterCallRequest struct {
	TableNumber string `json:"tableNumber"`
}

func (ct *WaiterCallController) CallWaiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req waiterCallRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		call, err := ct.calls.Call(c.Request.Context(), req.TableNumber)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, call)
	}
}

func (ct *WaiterCallController) GetCalls() gin.HandlerFunc {
	return func(c *gin.Context) {
		calls, err := ct.calls.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, calls)
	}
}

func (ct *WaiterCallController) AcknowledgeCall() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ct.calls.Acknowledge(c.Request.Context(), c.Param("call_id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": c.Param("call_id")})
	}
}
