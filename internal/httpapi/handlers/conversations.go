package handlers

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetConversation(c *gin.Context) {
	id := c.Param("id")
	msgs, err := h.Svc.History(c.Request.Context(), id)
	if err != nil {
		failService(c, err, "Conversation lookup failed", codeInternal)
		return
	}
	ok(c, gin.H{
		"conversation_id": id,
		"messages":        msgs,
		"message_count":   len(msgs),
	})
}

func (h *Handler) DeleteConversation(c *gin.Context) {
	if err := h.Svc.DeleteConversation(c.Request.Context(), c.Param("id")); err != nil {
		failService(c, err, "Conversation delete failed", codeInternal)
		return
	}
	ok(c, gin.H{"message": "Conversation deleted successfully"})
}
