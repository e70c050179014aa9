package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emurray/registrar/internal/pkg/logger"
)

// renderError renders the shared error page
func renderError(ctx *gin.Context, status int, title, message, backLink, backLabel string) {
	ctx.HTML(status, "error.html", gin.H{
		"Title":     title,
		"Message":   message,
		"BackLink":  backLink,
		"BackLabel": backLabel,
	})
}

// renderStoreFailure logs a store error and renders the generic 500 page.
// The underlying error never reaches the response.
func renderStoreFailure(ctx *gin.Context, err error, backLink string) {
	logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("Store operation failed")
	renderError(ctx, http.StatusInternalServerError, "Server Error",
		"An unexpected error occurred while processing the request.",
		backLink, "Back")
}
