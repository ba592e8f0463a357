// Package server — HTTP-фасад мониторинга поверх журнала аудита.
// Читающие эндпоинты для оператора; в оформлении заказов не участвует.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mcpizza/internal/config"
	"mcpizza/internal/database"
	"mcpizza/internal/logger"
)

type Server struct {
	cfg  *config.Cfg
	log  *logger.Zap
	repo *database.AuditRepository
}

func New(cfg *config.Cfg, log *logger.Zap, repo *database.AuditRepository) *Server {
	return &Server{cfg: cfg, log: log, repo: repo}
}

func (s *Server) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// Простейший лог-мидлвар
	r.Use(func(c *gin.Context) {
		s.log.Info("HTTP",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Последние вызовы инструментов
	r.GET("/api/interactions", func(c *gin.Context) {
		interactions, err := s.repo.ListInteractions(limitParam(c), 0)
		if err != nil {
			s.log.Error("db list interactions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, interactions)
	})

	// Размещенные заказы
	r.GET("/api/orders", func(c *gin.Context) {
		orders, err := s.repo.ListPlacedOrders(limitParam(c), 0)
		if err != nil {
			s.log.Error("db list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, orders)
	})

	addr := fmt.Sprintf("%s:%s", s.cfg.App.Host, s.cfg.App.Port)
	s.log.Info("HTTP-фасад запущен", zap.String("addr", addr))
	return r.Run(addr)
}

func limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		return 50
	}
	return limit
}
