package http

import (
	resourceUsecases "github.com/folio-hq/folio/internal/application/resource/usecases"
	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/interfaces/http/handlers"
	adminHandlers "github.com/folio-hq/folio/internal/interfaces/http/handlers/admin"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances created during initialization.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	subscriptionHandler *handlers.SubscriptionHandler
	siteHandler         *handlers.SiteHandler
	uploadHandler       *handlers.UploadHandler
	healthHandler       *handlers.HealthHandler
	adminHandler        *adminHandlers.Handler
	resourceHandlers    []handlers.ResourceEndpoints
}

func (c *Container) newHandlers() *allHandlers {
	ucs := c.ucs
	log := c.log

	return &allHandlers{
		authHandler: handlers.NewAuthHandler(
			ucs.register, ucs.login, ucs.getProfile, ucs.updateProfile,
			ucs.changePassword, ucs.checkSubdomain, ucs.getPublicProfile, log,
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			ucs.getCurrentSubscription, ucs.getHistory, ucs.getPlans,
			ucs.upgrade, ucs.cancel, ucs.reactivate, ucs.checkLimits, log,
		),
		siteHandler:   handlers.NewSiteHandler(ucs.getSite, log),
		uploadHandler: handlers.NewUploadHandler(ucs.uploadImage, log),
		healthHandler: handlers.NewHealthHandler(c.env),
		adminHandler: adminHandlers.NewHandler(
			ucs.getStatistics, ucs.listUsers, ucs.getUserDetails,
			ucs.updateStatus, ucs.getAnalytics, ucs.getSystemHealth, log,
		),
		resourceHandlers: c.newResourceHandlers(),
	}
}

// newResourceHandlers builds one CRUD handler per content kind, in the order
// the kinds are declared.
func (c *Container) newResourceHandlers() []handlers.ResourceEndpoints {
	r := c.repos.resources
	sites := c.siteCache
	log := c.log

	return []handlers.ResourceEndpoints{
		resourceEndpoint[*resource.About](resource.KindAbout, r.About, sites, log),
		resourceEndpoint[*resource.Skill](resource.KindSkill, r.Skill, sites, log),
		resourceEndpoint[*resource.Experience](resource.KindExperience, r.Experience, sites, log),
		resourceEndpoint[*resource.Education](resource.KindEducation, r.Education, sites, log),
		resourceEndpoint[*resource.Portfolio](resource.KindPortfolio, r.Portfolio, sites, log),
		resourceEndpoint[*resource.Testimonial](resource.KindTestimonial, r.Testimonial, sites, log),
		resourceEndpoint[*resource.Service](resource.KindService, r.Service, sites, log),
		resourceEndpoint[*resource.FunFact](resource.KindFunFact, r.FunFact, sites, log),
		resourceEndpoint[*resource.Brand](resource.KindBrand, r.Brand, sites, log),
		resourceEndpoint[*resource.Pricing](resource.KindPricing, r.Pricing, sites, log),
		resourceEndpoint[*resource.Award](resource.KindAward, r.Award, sites, log),
		resourceEndpoint[*resource.IntroFeature](resource.KindIntroFeature, r.IntroFeature, sites, log),
	}
}

func resourceEndpoint[T resource.Record](
	kind resource.Kind,
	repo resource.Repository[T],
	sites resourceUsecases.SiteInvalidator,
	log logger.Interface,
) handlers.ResourceEndpoints {
	return handlers.NewResourceHandler(resourceUsecases.NewManageResourceUseCase(kind, repo, sites, log), log)
}
