package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/shared/constants"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// Manager runs the strategy chosen for the current driver and environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager uses AutoMigrate for sqlite and development databases and the
// versioned SQL scripts everywhere else.
func NewManager(driver, environment string, log logger.Interface) (*Manager, error) {
	log = log.With("component", "migration.manager")

	if driver == "sqlite" || environment == constants.EnvDevelopment {
		return NewManagerWithStrategy(NewGormAutoMigrateStrategy(log), log), nil
	}

	strategy, err := NewGooseStrategy(driver, log)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log,
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
