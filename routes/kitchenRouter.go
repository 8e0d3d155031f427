package routes

import (
	"github.com/gin-gonic/gin"

	"go-table-order/controllers"
)

func KitchenRoutes(incomingRoutes *gin.Engine, ct *controllers.KitchenController) {
	incomingRoutes.GET("/kitchen", ct.GetBoard())
	incomingRoutes.GET("/kitchen/ws", ct.Stream())
}
