package handler

import (
	"errors"
	"net/http"

	"github.com/aniladanir/sms-manager/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError writes the status carried by a domain error with its message as body.
// Unrecognized codes and raw errors become 500.
func respondError(c *gin.Context, err error) {
	var appErr *domain.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch appErr.Code {
	case http.StatusBadRequest,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusConflict,
		http.StatusUnprocessableEntity,
		http.StatusInternalServerError:
		c.JSON(appErr.Code, appErr.Message)
	default:
		c.JSON(http.StatusInternalServerError, appErr)
	}
}

func respondSuccess(c *gin.Context, code int, data any) {
	if code == http.StatusCreated {
		c.JSON(http.StatusCreated, data)
		return
	}
	c.JSON(http.StatusOK, data)
}
