package controllers

import (
	"fmt"
	"log"
	"net/http"

	"jobportal/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError writes the error envelope. Unclassified errors are logged and reported
// as "Server error while <operation>".
func respondError(c *gin.Context, err error, operation string) {
	appErr, ok := apperror.As(err)
	if !ok || appErr.Kind == apperror.KindInternal {
		log.Printf("Error while %s: %v", operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Server error while " + operation,
		})
		return
	}

	body := gin.H{
		"success": false,
		"error":   appErr.Message,
	}
	if appErr.Code != "" {
		body["code"] = appErr.Code
	}
	c.JSON(apperror.StatusCode(appErr), body)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   message,
	})
}

// parseID reads a UUID path parameter, answering 400 "Invalid <entity> ID" when malformed.
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		badRequest(c, fmt.Sprintf("Invalid %s ID", entity))
		return uuid.Nil, false
	}
	return id, true
}
