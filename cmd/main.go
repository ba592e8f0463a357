package main

import (
	"context"

	"mcpizza/internal/config"
	"mcpizza/internal/database"
	"mcpizza/internal/logger"
	"mcpizza/internal/migrations"
	"mcpizza/internal/order"
	"mcpizza/internal/payment"
	"mcpizza/internal/server"
	"mcpizza/internal/store"
	"mcpizza/internal/tools"
	"mcpizza/internal/vendorapi"

	"github.com/google/uuid"
	srv "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := migrations.Run(cfg, log); err != nil {
		log.Fatal("Ошибка миграций", zap.Error(err))
	}

	// БД опциональна: без DB_HOST аудит пишется только в лог
	var repo *database.AuditRepository
	if cfg.Database.Host != "" {
		db, err := database.New(cfg, log)
		if err != nil {
			log.Fatal("Ошибка подключения к БД", zap.Error(err))
		}
		defer db.Close(log)
		repo = database.NewAuditRepository(db.DB)
	}

	api := vendorapi.New(cfg.Vendor, log)
	stores := store.NewService(api, log)
	orders := order.NewManager(stores, log)
	payments := payment.NewCoordinator(api, orders, log)

	sessionID := uuid.NewString()
	audit := tools.NewRecorder(repo, log, sessionID)

	s := srv.NewMCPServer("mcpizza", "1.0.0", srv.WithRecovery())
	tools.Register(s, &tools.Deps{
		Log:       log,
		Orders:    orders,
		Stores:    stores,
		Payments:  payments,
		Audit:     audit,
		SessionID: sessionID,
	})

	// HTTP-фасад мониторинга живет рядом со stdio-сервером
	if cfg.App.HTTPEnabled && repo != nil {
		go func() {
			httpSrv := server.New(cfg, log, repo)
			if err := httpSrv.Run(context.Background()); err != nil {
				log.Error("HTTP-фасад остановлен", zap.Error(err))
			}
		}()
	}

	log.Info("MCP-сервер запускается", zap.String("session", sessionID))
	if err := srv.ServeStdio(s); err != nil {
		log.Fatal("Ошибка MCP-сервера", zap.Error(err))
	}
}
