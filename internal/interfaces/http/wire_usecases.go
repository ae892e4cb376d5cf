package http

import (
	"fmt"

	accountUsecases "github.com/folio-hq/folio/internal/application/account/usecases"
	adminUsecases "github.com/folio-hq/folio/internal/application/admin/usecases"
	entitlementUsecases "github.com/folio-hq/folio/internal/application/entitlement/usecases"
	siteUsecases "github.com/folio-hq/folio/internal/application/site/usecases"
	subscriptionUsecases "github.com/folio-hq/folio/internal/application/subscription/usecases"
	tenancyUsecases "github.com/folio-hq/folio/internal/application/tenancy/usecases"
	uploadUsecases "github.com/folio-hq/folio/internal/application/upload/usecases"
	"github.com/folio-hq/folio/internal/infrastructure/auth"
)

// allUseCases holds all use case instances created during initialization.
type allUseCases struct {
	// Tenancy
	authenticate  *tenancyUsecases.AuthenticateUseCase
	resolveTenant *tenancyUsecases.ResolveTenantUseCase

	// Entitlement
	checkQuota *entitlementUsecases.CheckQuotaUseCase

	// Account
	register         *accountUsecases.RegisterUseCase
	login            *accountUsecases.LoginUseCase
	getProfile       *accountUsecases.GetProfileUseCase
	updateProfile    *accountUsecases.UpdateProfileUseCase
	changePassword   *accountUsecases.ChangePasswordUseCase
	checkSubdomain   *accountUsecases.CheckSubdomainUseCase
	getPublicProfile *accountUsecases.GetPublicProfileUseCase

	// Subscription
	getCurrentSubscription *subscriptionUsecases.GetCurrentSubscriptionUseCase
	getHistory             *subscriptionUsecases.GetSubscriptionHistoryUseCase
	getPlans               *subscriptionUsecases.GetPlansUseCase
	upgrade                *subscriptionUsecases.UpgradeSubscriptionUseCase
	cancel                 *subscriptionUsecases.CancelSubscriptionUseCase
	reactivate             *subscriptionUsecases.ReactivateSubscriptionUseCase
	checkLimits            *subscriptionUsecases.CheckLimitsUseCase

	// Site and uploads
	getSite     *siteUsecases.GetSiteUseCase
	uploadImage *uploadUsecases.UploadImageUseCase

	// Admin
	getStatistics   *adminUsecases.GetStatisticsUseCase
	listUsers       *adminUsecases.ListUsersUseCase
	getUserDetails  *adminUsecases.GetUserDetailsUseCase
	updateStatus    *adminUsecases.UpdateUserStatusUseCase
	getAnalytics    *adminUsecases.GetSubscriptionAnalyticsUseCase
	getSystemHealth *adminUsecases.GetSystemHealthUseCase
}

func (c *Container) newUseCases() (*allUseCases, error) {
	log := c.log
	accounts := c.repos.accounts
	subscriptions := c.repos.subscriptions
	portfolios := c.repos.resources.Portfolio

	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.ExpHours)

	sqlDB, err := c.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	return &allUseCases{
		authenticate:  tenancyUsecases.NewAuthenticateUseCase(accounts, jwtSvc, log),
		resolveTenant: tenancyUsecases.NewResolveTenantUseCase(accounts, c.metrics, log),

		checkQuota: entitlementUsecases.NewCheckQuotaUseCase(c.registry, c.plans, c.metrics, log),

		register: accountUsecases.NewRegisterUseCase(
			accounts, hasher, jwtSvc, c.newMailer(), c.reserved, c.cfg.Server.RootDomain, log,
		),
		login:            accountUsecases.NewLoginUseCase(accounts, hasher, jwtSvc, log),
		getProfile:       accountUsecases.NewGetProfileUseCase(accounts, log),
		updateProfile:    accountUsecases.NewUpdateProfileUseCase(accounts, c.siteCache, log),
		changePassword:   accountUsecases.NewChangePasswordUseCase(accounts, hasher, log),
		checkSubdomain:   accountUsecases.NewCheckSubdomainUseCase(accounts, c.reserved, log),
		getPublicProfile: accountUsecases.NewGetPublicProfileUseCase(accounts, log),

		getCurrentSubscription: subscriptionUsecases.NewGetCurrentSubscriptionUseCase(
			subscriptions, accounts, c.plans, c.publisher, log,
		),
		getHistory:  subscriptionUsecases.NewGetSubscriptionHistoryUseCase(subscriptions, log),
		getPlans:    subscriptionUsecases.NewGetPlansUseCase(c.plans),
		upgrade:     subscriptionUsecases.NewUpgradeSubscriptionUseCase(subscriptions, accounts, c.plans, c.publisher, log),
		cancel:      subscriptionUsecases.NewCancelSubscriptionUseCase(subscriptions, accounts, c.plans, c.publisher, log),
		reactivate:  subscriptionUsecases.NewReactivateSubscriptionUseCase(subscriptions, accounts, c.plans, c.publisher, log),
		checkLimits: subscriptionUsecases.NewCheckLimitsUseCase(subscriptions, c.plans, c.registry, log),

		getSite: siteUsecases.NewGetSiteUseCase(
			siteUsecases.NewSectionLoaders(c.repos.resources), c.siteCache, c.metrics, log,
		),
		uploadImage: uploadUsecases.NewUploadImageUseCase(c.store, int64(c.cfg.Storage.MaxSizeMB)<<20, log),

		getStatistics:   adminUsecases.NewGetStatisticsUseCase(accounts, subscriptions, portfolios, log),
		listUsers:       adminUsecases.NewListUsersUseCase(accounts, log),
		getUserDetails:  adminUsecases.NewGetUserDetailsUseCase(accounts, subscriptions, portfolios, log),
		updateStatus:    adminUsecases.NewUpdateUserStatusUseCase(accounts, c.siteCache, log),
		getAnalytics:    adminUsecases.NewGetSubscriptionAnalyticsUseCase(subscriptions, log),
		getSystemHealth: adminUsecases.NewGetSystemHealthUseCase(sqlDB, c.startedAt, log),
	}, nil
}
