package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sfailla/ecommerce-shop/internal/httperr"
	"github.com/Sfailla/ecommerce-shop/internal/repository"
)

// respondError is the single translation stage every handler failure flows
// through. Failures are classified where they occur (store sentinels, or an
// already-classified httperr.Error) and shaped here: NotFound produces
// 404 {success:false, message}; everything else 500 {success:false, error}
// with a static message. The underlying error is logged, never serialized.
func respondError(c *gin.Context, log *slog.Logger, err error, notFoundMessage string) {
	herr := classify(err, notFoundMessage)

	if herr.Kind == httperr.KindNotFound {
		c.JSON(herr.Status, gin.H{
			"success": false,
			"message": herr.Message,
		})
		return
	}

	log.Error("request failed",
		"error", err,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(herr.Status, gin.H{
		"success": false,
		"error":   herr.Message,
	})
}

func classify(err error, notFoundMessage string) *httperr.Error {
	var herr *httperr.Error
	if errors.As(err, &herr) {
		return herr
	}
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
		return httperr.NotFound(notFoundMessage)
	}
	return httperr.Internal(err)
}

// respondBadRequest shapes binding and payload validation failures.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
