package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/naiapps/pg-backend/pkg/errors"
)

// JSON sends a success response with the payload as the raw body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error renders an error according to its taxonomy: field validation errors
// as a field→message map, not-found and opaque internal errors with an empty
// body, everything else as {"error": message}.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")

	switch {
	case len(appErr.Fields) > 0:
		c.JSON(appErr.Status, appErr.Fields)
	case appErr.Status == http.StatusNotFound:
		c.Status(http.StatusNotFound)
	case appErr.Status >= http.StatusInternalServerError && !appErr.Expose:
		c.Status(appErr.Status)
	default:
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
	}
}
