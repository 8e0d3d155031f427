package routes

import (
	"github.com/gin-gonic/gin"

	"go-table-order/controllers"
)

func WaiterCallRoutes(incomingRoutes *gin.Engine, ct *controllers.WaiterCallController) {
	incomingRoutes.GET("/waiter-calls", ct.GetCalls())
	incomingRoutes.POST("/waiter-calls", ct.CallWaiter())
	incomingRoutes.DELETE("/waiter-calls/:call_id", ct.AcknowledgeCall())
}
