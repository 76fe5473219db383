package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/janseva/assistant/internal/assistant"
)

const (
	codeInvalidRequest   = 42201
	codeValidation       = 42202
	codeRouteNotFound    = 40400
	codeNotFound         = 40401
	codeMethodNotAllowed = 40500
	codeInternal         = 50000
	codeChatFailed       = 50001
	codeVoiceFailed      = 50002
)

func ok(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, httpStatus int, code int, detail string) {
	c.AbortWithStatusJSON(httpStatus, gin.H{
		"code":   code,
		"detail": detail,
	})
}

// RouteNotFound and MethodNotAllowed back the router's fallbacks.
func RouteNotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, codeRouteNotFound, "Not Found")
}

func MethodNotAllowed(c *gin.Context) {
	fail(c, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method Not Allowed")
}

// failService maps orchestrator errors. prefix labels upstream failures and
// upstreamCode is used for them.
func failService(c *gin.Context, err error, prefix string, upstreamCode int) {
	var ae *assistant.Error
	if !errors.As(err, &ae) {
		log.Error().Err(err).Msg("unexpected service error")
		fail(c, http.StatusInternalServerError, codeInternal, prefix+": "+err.Error())
		return
	}
	_ = c.Error(err)

	switch ae.Kind {
	case assistant.KindValidation:
		fail(c, http.StatusUnprocessableEntity, codeValidation, ae.Detail())
	case assistant.KindNotFound:
		fail(c, http.StatusNotFound, codeNotFound, ae.Reason)
	default:
		log.Error().Err(err).Str("kind", string(ae.Kind)).Msg(prefix)
		fail(c, http.StatusInternalServerError, upstreamCode, prefix+": "+ae.Detail())
	}
}
