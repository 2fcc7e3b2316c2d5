package handler

import (
	"context"
	"log/slog"
	"net/http"

	_ "github.com/aniladanir/sms-manager/docs"
	"github.com/aniladanir/sms-manager/internal/service"
	"github.com/aniladanir/sms-manager/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	contactSvc service.ContactService
	messageSvc service.MessageService
	validator  *validation.Validator
	server     *http.Server
}

// @title SMS Manager API
// @version 1.0
// @description API for managing contacts and the messages exchanged between them
// @host localhost:8080
// @BasePath /
func NewHttpHandler(addr string, contactSvc service.ContactService, messageSvc service.MessageService, logger *slog.Logger, allowedOrigins []string) *Handler {
	h := &Handler{
		contactSvc: contactSvc,
		messageSvc: messageSvc,
		validator:  validation.New(),
	}

	// create router
	router := gin.New()
	router.Use(requestID(), requestLogger(logger), gin.Recovery())

	// register routes
	router.GET("/", h.welcome)

	router.POST("/api/contact", h.addContact)
	router.GET("/api/contact/:phoneNumber", h.getContact)
	router.PATCH("/api/contact/:phoneNumber", h.updateContact)
	router.DELETE("/api/contact/:phoneNumber", h.deleteContact)
	router.GET("/api/contact/messages/:phoneNumber", h.getAllMessages)
	router.GET("/api/contact/messages/sent/:phoneNumber", h.getAllMessagesSentByContact)
	router.GET("/api/contact/messages/received/:phoneNumber", h.getAllMessagesReceivedByContact)

	router.POST("/api/message", h.addMessage)
	router.GET("/api/message/:messageId", h.getMessage)
	router.PATCH("/api/message/:messageId", h.updateMessage)
	router.DELETE("/api/message/:messageId", h.deleteMessage)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(h.notFound)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})

	// create http server
	h.server = &http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(router.Handler()),
	}

	return h
}

func (h *Handler) Run() error {
	return h.server.ListenAndServe()
}

func (h *Handler) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// Welcome godoc
// @Summary Welcome message
// @Tags General
// @Produce json
// @Success 200 {string} string
// @Router / [get]
func (h *Handler) welcome(c *gin.Context) {
	respondSuccess(c, http.StatusOK, "Welcome to SMS manager")
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  http.StatusNotFound,
		"message": http.StatusText(http.StatusNotFound),
	})
}
