package db

import (
	"errors"
	"fmt"
	"log"

	"anke-go-api/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies all pending schema migrations from the configured
// migrations directory. Called once at startup, after Init.
func Migrate() error {
	if Dao == nil {
		return errors.New("database not initialized")
	}

	cfg := config.GetConfig()

	sqlDB, err := Dao.DB()
	if err != nil {
		return fmt.Errorf("acquiring sql.DB: %w", err)
	}

	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("creating migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+cfg.Database.MigrationsPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Printf("schema up to date")
			return nil
		}
		return fmt.Errorf("applying migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Printf("schema migrated to version %d (dirty: %v)", version, dirty)
	return nil
}
