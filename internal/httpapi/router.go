package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/janseva/assistant/internal/httpapi/handlers"
	"github.com/janseva/assistant/internal/httpapi/middleware"
)

func NewRouter(svc handlers.Assistant) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.Recovery())
	r.Use(middleware.Options())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	r.NoRoute(handlers.RouteNotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	h := handlers.NewHandler(svc)

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/schemes", h.Schemes)

	r.POST("/chat", h.Chat)
	r.POST("/chat/voice", h.ChatVoice)
	r.GET("/audio/:id", h.Audio)

	r.GET("/conversations/:id", h.GetConversation)
	r.DELETE("/conversations/:id", h.DeleteConversation)
	return r
}
