package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"go-table-order/database"
	"go-table-order/services"
)

var validate = validator.New()

// respondError maps service errors onto HTTP statuses. Validation
// problems are the caller's fault; everything else is reported as a
// transient store failure without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrBlankCustomerName),
		errors.Is(err, services.ErrMissingTableNumber),
		errors.Is(err, services.ErrUnknownStatus),
		errors.Is(err, services.ErrTerminalStatus),
		errors.Is(err, services.ErrUnknownMenuItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, services.ErrCallCooldown):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "the operation could not be completed, please try again"})
	}
}
