package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aniladanir/sms-manager/internal/domain"
	httpHandler "github.com/aniladanir/sms-manager/internal/handler/http"
	"github.com/aniladanir/sms-manager/internal/persistant/postgresql"
	contactRepo "github.com/aniladanir/sms-manager/internal/repository/contact"
	messageRepo "github.com/aniladanir/sms-manager/internal/repository/message"
	"github.com/aniladanir/sms-manager/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	configFile = flag.String("config", "config.json", "config file path")
	seed       = flag.Bool("seed", false, "populate an empty database with demo contacts")
)

func main() {
	// create root context
	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	// listen for terminate signal
	notifyCtx, stop := signal.NotifyContext(appCtx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// parse flags
	flag.Parse()

	// parse config
	config, err := ReadConfigJson(*configFile)
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	// initialize database
	db, err := postgresql.Initialize(notifyCtx, config.DbConnString, config.DbConnectAttempts, []any{&domain.Contact{}, &domain.Message{}})
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// populate database with demo data
	if config.Seed || *seed {
		if err := populateDatabase(db); err != nil {
			log.Fatalf("failed to populate db: %v", err)
		}
	}

	// init repositories
	contacts := contactRepo.NewContactRepository(db)
	messages := messageRepo.NewMessageRepository(db)

	// init services
	contactSvc := service.NewContactService(contacts, messages, logger.With(slog.String("component", "contactService")))
	messageSvc := service.NewMessageService(messages, contacts, logger.With(slog.String("component", "messageService")))

	// init http handler
	httpHandler := httpHandler.NewHttpHandler(
		fmt.Sprintf(":%d", config.HttpPort),
		contactSvc,
		messageSvc,
		logger.With(slog.String("component", "http")),
		config.AllowedOrigins,
	)

	wg := sync.WaitGroup{}
	// run http handler
	wg.Go(func() {
		logger.Info("http server listening", "port", config.HttpPort)
		if err := httpHandler.Run(); err != nil {
			logger.Error("http server encountered with an error and closed", "error", err.Error())
		}
		// cancel app context if http handler fails
		appCtxCancel()
	})

	// graceful shutdown
	wg.Go(func() {
		<-notifyCtx.Done()
		logger.Info("application shutting down...")

		shutDownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		if err := httpHandler.Shutdown(shutDownCtx); err != nil {
			logger.Error("failed to shutdown http server", "error", err.Error())
		}
		if err := postgresql.Close(db); err != nil {
			logger.Error("failed to close database", "error", err.Error())
		}
	})

	wg.Wait()
	os.Exit(0)
}

func populateDatabase(db *gorm.DB) error {
	var contactCount int64
	if err := db.Model(&domain.Contact{}).Count(&contactCount).Error; err != nil {
		return err
	}
	if contactCount > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		contacts := []domain.Contact{
			{Name: "Alice", PhoneNumber: "+905549998877"},
			{Name: "Bob", PhoneNumber: "+905549998876"},
		}
		if err := tx.Create(&contacts).Error; err != nil {
			return err
		}

		messages := []domain.Message{
			{SenderID: contacts[0].ID, ReceiverID: &contacts[1].ID, Body: "Hello Bob", Status: domain.StatusSent},
			{SenderID: contacts[1].ID, ReceiverID: &contacts[0].ID, Body: "Hello Alice", Status: domain.StatusRead},
		}
		return tx.Create(&messages).Error
	})
}
