package routes

import (
	"github.com/gin-gonic/gin"

	"go-table-order/controllers"
	"go-table-order/middleware"
)

func OrderRoutes(incomingRoutes *gin.Engine, ct *controllers.OrderController) {
	incomingRoutes.POST("/orders", middleware.CartSession(), ct.SubmitOrder())
	incomingRoutes.GET("/orders", ct.GetOrders())
	incomingRoutes.PATCH("/orders/:order_id/advance", ct.AdvanceOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", ct.OverrideStatus())
	incomingRoutes.DELETE("/orders/:order_id", ct.DeleteOrder())
}
