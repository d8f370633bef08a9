package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kumamoto2401-netizen/document-qa/internal/ai"
	"github.com/kumamoto2401-netizen/document-qa/internal/app"
	"github.com/kumamoto2401-netizen/document-qa/internal/cache"
	"github.com/kumamoto2401-netizen/document-qa/internal/config"
	"github.com/kumamoto2401-netizen/document-qa/internal/model"
	mysqlClient "github.com/kumamoto2401-netizen/document-qa/internal/platform/mysql"
	rabbitmqClient "github.com/kumamoto2401-netizen/document-qa/internal/platform/rabbitmq"
	redisClient "github.com/kumamoto2401-netizen/document-qa/internal/platform/redis"
	sqliteClient "github.com/kumamoto2401-netizen/document-qa/internal/platform/sqlite"
	"github.com/kumamoto2401-netizen/document-qa/internal/repository"
	"github.com/kumamoto2401-netizen/document-qa/internal/worker"
)

type App struct {
	Config          *config.Config
	DB              *gorm.DB
	Redis           *redis.Client
	MQConn          *amqp.Connection
	TranscriptCache *cache.TranscriptCache
	Gateway         ai.CompletionGateway
	TurnWorker      *worker.TurnEventWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	db, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Document{}, &model.Turn{}, &model.InventoryItem{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	gateway, err := newGateway(ctx, cfg)
	if err != nil {
		return nil, err
	}

	transcriptCache := cache.NewTranscriptCache(
		redisCli,
		time.Duration(cfg.Redis.TranscriptTTLSeconds)*time.Second,
		time.Duration(cfg.Redis.TranscriptDirtyTTLSeconds)*time.Second,
	)

	turnRepo := repository.NewTurnRepository(db)
	turnWorker := worker.NewTurnEventWorker(mqConn, turnRepo, transcriptCache, cfg.RabbitMQ.TurnEventQueue)
	if err := turnWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start turn event worker failed: %w", err)
	}

	if cfg.Inventory.Seed {
		inventoryService := app.NewInventoryService(repository.NewInventoryRepository(db))
		if err := inventoryService.SeedIfEmpty(); err != nil {
			return nil, fmt.Errorf("seed inventory failed: %w", err)
		}
	}

	return &App{
		Config:          cfg,
		DB:              db,
		Redis:           redisCli,
		MQConn:          mqConn,
		TranscriptCache: transcriptCache,
		Gateway:         gateway,
		TurnWorker:      turnWorker,
		StartedAt:       time.Now(),
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Storage.Driver {
	case "sqlite", "":
		return sqliteClient.New(cfg.Storage.SQLitePath)
	case "mysql":
		return mysqlClient.New(ctx, cfg.MySQLDSN())
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newGateway(ctx context.Context, cfg *config.Config) (ai.CompletionGateway, error) {
	switch cfg.LLM.Provider {
	case "gemini", "":
		return ai.NewGeminiClient(ctx, cfg.LLM.GeminiAPIKey, cfg.LLM.GeminiModel)
	case "openai":
		return ai.NewOpenAICompatibleClient(ai.ChatConfig{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

func (a *App) Close() error {
	var closeErr error
	if a.TurnWorker != nil {
		a.TurnWorker.Close()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if closer, ok := a.Gateway.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
