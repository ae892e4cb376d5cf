package migration

import (
	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every table the application owns, parents first.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.SubscriptionModel{},
		&resource.About{},
		&resource.Skill{},
		&resource.Experience{},
		&resource.Education{},
		&resource.Portfolio{},
		&resource.Testimonial{},
		&resource.Service{},
		&resource.FunFact{},
		&resource.Brand{},
		&resource.Pricing{},
		&resource.Award{},
		&resource.IntroFeature{},
	}
}
