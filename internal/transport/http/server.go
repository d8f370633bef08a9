package http

import (
	"github.com/gin-gonic/gin"

	appsvc "github.com/kumamoto2401-netizen/document-qa/internal/app"
	"github.com/kumamoto2401-netizen/document-qa/internal/bootstrap"
	"github.com/kumamoto2401-netizen/document-qa/internal/platform/rabbitmq"
	"github.com/kumamoto2401-netizen/document-qa/internal/repository"
	"github.com/kumamoto2401-netizen/document-qa/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.StaticFile("/", "web/index.html")
	router.StaticFile("/inventory", "web/inventory.html")
	router.GET("/healthz", healthHandler.Check)

	docRepo := repository.NewDocumentRepository(app.DB)
	turnRepo := repository.NewTurnRepository(app.DB)
	inventoryRepo := repository.NewInventoryRepository(app.DB)

	turnPublisher := rabbitmq.NewTurnPublisher(app.MQConn, app.Config.RabbitMQ.TurnEventQueue)

	sessionService := appsvc.NewSessionService(
		docRepo,
		turnRepo,
		app.Gateway,
		app.TranscriptCache,
		turnPublisher,
		app.Config.LLM.MaxContextTurns,
	)
	inventoryService := appsvc.NewInventoryService(inventoryRepo)

	documentHandler := handler.NewDocumentHandler(sessionService)
	chatHandler := handler.NewChatHandler(sessionService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)

	v1 := router.Group("/api/v1")

	docGroup := v1.Group("/documents")
	docGroup.POST("", documentHandler.Upload)
	docGroup.GET("/current", documentHandler.Current)

	chatGroup := v1.Group("/chat")
	chatGroup.POST("/ask", chatHandler.Ask)
	chatGroup.GET("/transcript", chatHandler.Transcript)

	invGroup := v1.Group("/inventory")
	invGroup.GET("", inventoryHandler.List)
	invGroup.POST("", inventoryHandler.Create)
	invGroup.PUT("/:id", inventoryHandler.Update)
	invGroup.DELETE("/:id", inventoryHandler.Delete)
	invGroup.GET("/reorder-alerts", inventoryHandler.ReorderAlerts)

	return router
}
