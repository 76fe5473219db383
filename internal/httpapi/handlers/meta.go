package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/janseva/assistant/internal/lang"
	"github.com/janseva/assistant/internal/schemes"
)

const (
	ServiceName    = "JanSeva - Maharashtra Government Schemes Assistant"
	ServiceVersion = "2.0.0"
)

func (h *Handler) Root(c *gin.Context) {
	ok(c, gin.H{
		"service":   ServiceName,
		"version":   ServiceVersion,
		"languages": lang.Names(),
		"scope":     "Active citizen schemes in Maharashtra",
		"endpoints": gin.H{
			"health":       "/health",
			"text_chat":    "/chat",
			"voice_chat":   "/chat/voice",
			"schemes_list": "/schemes",
		},
	})
}

func (h *Handler) Health(c *gin.Context) {
	ok(c, gin.H{
		"status":    "healthy",
		"service":   "JanSeva Assistant",
		"timestamp": unixSeconds(h.Now()),
	})
}

func (h *Handler) Schemes(c *gin.Context) {
	all := schemes.All()
	ok(c, gin.H{"schemes": all, "total": len(all)})
}
