package routes

import (
	"github.com/gin-gonic/gin"

	"go-table-order/controllers"
	"go-table-order/middleware"
)

func CartRoutes(incomingRoutes *gin.Engine, ct *controllers.CartController) {
	cart := incomingRoutes.Group("/cart", middleware.CartSession())
	cart.GET("", ct.GetCart())
	cart.POST("/items", ct.AddItem())
	cart.PATCH("/items/quantity", ct.SetQuantity())
	cart.PATCH("/items/note", ct.SetNote())
	cart.DELETE("/items/:item_id", ct.RemoveItem())
}
