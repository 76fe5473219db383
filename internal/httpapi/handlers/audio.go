package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Audio(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Svc.Audio(c.Request.Context(), id)
	if err != nil {
		failService(c, err, "Audio retrieval failed", codeInternal)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=audio_%s.mp3", id))
	c.Data(http.StatusOK, "audio/mpeg", b)
}
