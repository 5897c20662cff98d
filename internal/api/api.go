package api

import (
	"net/http"

	crmHandler "voice-crm/internal/crm/handler"
	intentHandler "voice-crm/internal/intent/handler"
	"voice-crm/internal/observability"
	"voice-crm/internal/ratelimit"
	transcriptionHandler "voice-crm/internal/transcription/handler"
	uploadsHandler "voice-crm/internal/uploads/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router               *gin.RouterGroup
	crmHandler           crmHandler.Handler
	intentHandler        intentHandler.Handler
	transcriptionHandler transcriptionHandler.Handler
	uploadsHandler       uploadsHandler.Handler
	rateLimiter          *ratelimit.Service
}

func New(
	router *gin.RouterGroup,
	crmHandler crmHandler.Handler,
	intentHandler intentHandler.Handler,
	transcriptionHandler transcriptionHandler.Handler,
	uploadsHandler uploadsHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:               router,
		crmHandler:           crmHandler,
		intentHandler:        intentHandler,
		transcriptionHandler: transcriptionHandler,
		uploadsHandler:       uploadsHandler,
		rateLimiter:          rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Voice pipeline
	voice := a.router.Group("", a.rateLimiter.Middleware())
	{
		voice.POST("/audio_to_transcript", a.transcriptionHandler.HandleAudioToTranscript)
		voice.POST("/synthesis", a.intentHandler.HandleSynthesis)
		voice.POST("/hubspot_commands", a.intentHandler.HandleCommands)
		voice.POST("/upload-audio", a.uploadsHandler.HandleUploadAudio)
	}

	apiGroup := a.router.Group("/api")
	{
		crmGroup := apiGroup.Group("/crm")
		crmGroup.POST("/contacts", a.crmHandler.HandleFindOrCreateContact)
		crmGroup.POST("/notes", a.crmHandler.HandleAddNote)
		crmGroup.POST("/deals", a.crmHandler.HandleCreateDeal)
		crmGroup.POST("/tasks", a.crmHandler.HandleCreateTask)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	a.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	a.router.GET("/metrics", gin.WrapH(observability.MetricsHandler()))
}
