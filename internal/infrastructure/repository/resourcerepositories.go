package repository

import (
	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// ResourceRepositories holds one typed repository per content kind.
type ResourceRepositories struct {
	About        *ResourceRepository[*resource.About]
	Skill        *ResourceRepository[*resource.Skill]
	Experience   *ResourceRepository[*resource.Experience]
	Education    *ResourceRepository[*resource.Education]
	Portfolio    *ResourceRepository[*resource.Portfolio]
	Testimonial  *ResourceRepository[*resource.Testimonial]
	Service      *ResourceRepository[*resource.Service]
	FunFact      *ResourceRepository[*resource.FunFact]
	Brand        *ResourceRepository[*resource.Brand]
	Pricing      *ResourceRepository[*resource.Pricing]
	Award        *ResourceRepository[*resource.Award]
	IntroFeature *ResourceRepository[*resource.IntroFeature]
}

func NewResourceRepositories(db *gorm.DB, log logger.Interface) *ResourceRepositories {
	return &ResourceRepositories{
		About:        NewResourceRepository[*resource.About](db, resource.KindAbout, log),
		Skill:        NewResourceRepository[*resource.Skill](db, resource.KindSkill, log),
		Experience:   NewResourceRepository[*resource.Experience](db, resource.KindExperience, log),
		Education:    NewResourceRepository[*resource.Education](db, resource.KindEducation, log),
		Portfolio:    NewResourceRepository[*resource.Portfolio](db, resource.KindPortfolio, log),
		Testimonial:  NewResourceRepository[*resource.Testimonial](db, resource.KindTestimonial, log),
		Service:      NewResourceRepository[*resource.Service](db, resource.KindService, log),
		FunFact:      NewResourceRepository[*resource.FunFact](db, resource.KindFunFact, log),
		Brand:        NewResourceRepository[*resource.Brand](db, resource.KindBrand, log),
		Pricing:      NewResourceRepository[*resource.Pricing](db, resource.KindPricing, log),
		Award:        NewResourceRepository[*resource.Award](db, resource.KindAward, log),
		IntroFeature: NewResourceRepository[*resource.IntroFeature](db, resource.KindIntroFeature, log),
	}
}

// Registry builds the static kind to counter table used by quota checks.
func (r *ResourceRepositories) Registry() (*resource.Registry, error) {
	return resource.NewRegistry(map[resource.Kind]resource.Counter{
		resource.KindAbout:        r.About,
		resource.KindSkill:        r.Skill,
		resource.KindExperience:   r.Experience,
		resource.KindEducation:    r.Education,
		resource.KindPortfolio:    r.Portfolio,
		resource.KindTestimonial:  r.Testimonial,
		resource.KindService:      r.Service,
		resource.KindFunFact:      r.FunFact,
		resource.KindBrand:        r.Brand,
		resource.KindPricing:      r.Pricing,
		resource.KindAward:        r.Award,
		resource.KindIntroFeature: r.IntroFeature,
	})
}

// ResourceModels lists every content table model for AutoMigrate.
func ResourceModels() []interface{} {
	return []interface{}{
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
