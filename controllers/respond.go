package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk/models"
	"CareDesk/services"
	"CareDesk/store"
)

func successResponse(data any) gin.H {
	return gin.H{"status": "success", "data": data}
}

func failedResponse(err error) gin.H {
	return gin.H{"status": "failed", "error": err.Error()}
}

// statusFor maps the service error kinds onto HTTP statuses. No handler
// returns an unstructured failure.
func statusFor(err error) int {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	var persistence *services.PersistenceError
	if errors.As(err, &persistence) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), failedResponse(err))
}
