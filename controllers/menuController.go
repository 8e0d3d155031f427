package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-table-order/models"
)

type MenuController struct{}

func NewMenuController() *MenuController { return &MenuController{} }

func (ct *MenuController) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.MenuItems)
	}
}
