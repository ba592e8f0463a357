package migrations

import (
	"errors"
	"fmt"

	"mcpizza/internal/config"
	"mcpizza/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Run прогоняет SQL-миграции журнала аудита. Без настроенной БД —
// тихий no-op: сервер работает и без аудита.
func Run(cfg *config.Cfg, log *logger.Zap) error {
	if cfg.Database.Host == "" {
		log.Info("БД не настроена, миграции пропущены")
		return nil
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	m, err := migrate.New(cfg.Migrations.Path, dsn)
	if err != nil {
		return fmt.Errorf("инициализация миграций: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("применение миграций: %w", err)
	}

	log.Info("Миграции применены")
	return nil
}
