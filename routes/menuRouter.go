package routes

import (
	"github.com/gin-gonic/gin"

	"go-table-order/controllers"
)

func MenuRoutes(incomingRoutes *gin.Engine, ct *controllers.MenuController) {
	incomingRoutes.GET("/menu", ct.GetMenu())
}
