package usecases

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/sync/errgroup"

	accountdto "github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/application/site/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/infrastructure/cache"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// CacheRecorder counts site cache hits and misses.
type CacheRecorder interface {
	SiteCacheLookup(hit bool)
}

// maxParallelSections bounds concurrent section queries per request.
const maxParallelSections = 4

type GetSiteUseCase struct {
	loaders  map[resource.Kind]SectionLoader
	cache    cache.SiteCache
	recorder CacheRecorder
	logger   logger.Interface
}

func NewGetSiteUseCase(
	loaders map[resource.Kind]SectionLoader,
	siteCache cache.SiteCache,
	recorder CacheRecorder,
	logger logger.Interface,
) *GetSiteUseCase {
	if siteCache == nil {
		siteCache = cache.NopSiteCache{}
	}
	return &GetSiteUseCase{
		loaders:  loaders,
		cache:    siteCache,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute returns the tenant's profile and every section. The sections are
// served from the site cache when present; the profile is always fresh.
func (uc *GetSiteUseCase) Execute(ctx context.Context, tenant *account.Account) (*dto.SiteDTO, error) {
	payload, err := uc.cache.Get(ctx, tenant.ID())
	if err != nil {
		uc.logger.Warnw("site cache read failed", "error", err, "account_id", tenant.ID())
	}
	uc.recordLookup(payload != nil)

	if payload == nil {
		payload, err = uc.build(ctx, tenant.ID())
		if err != nil {
			uc.logger.Errorw("failed to build site", "error", err, "account_id", tenant.ID())
			return nil, apperrors.NewInternalError("Failed to load portfolio")
		}
		if err := uc.cache.Set(ctx, tenant.ID(), payload); err != nil {
			uc.logger.Warnw("site cache write failed", "error", err, "account_id", tenant.ID())
		}
	}

	return &dto.SiteDTO{
		User:      accountdto.ToPublicProfileDTO(tenant),
		Portfolio: payload,
	}, nil
}

// GetSection returns one section by its route or section name.
func (uc *GetSiteUseCase) GetSection(ctx context.Context, tenant *account.Account, section string) (any, error) {
	kind, ok := resource.ParseKind(section)
	if !ok {
		return nil, apperrors.NewNotFoundError("Section not found")
	}
	load, ok := uc.loaders[kind]
	if !ok {
		return nil, apperrors.NewNotFoundError("Section not found")
	}

	data, err := load(ctx, tenant.ID())
	if err != nil {
		uc.logger.Errorw("failed to load section", "error", err, "account_id", tenant.ID(), "section", section)
		return nil, apperrors.NewInternalError("Server error")
	}
	if data == nil {
		return nil, apperrors.NewNotFoundError("About information not found")
	}
	return data, nil
}

func (uc *GetSiteUseCase) build(ctx context.Context, ownerID uint) ([]byte, error) {
	var (
		mu       sync.Mutex
		sections = make(map[string]any, len(uc.loaders))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelSections)
	for _, info := range resource.Kinds() {
		load, ok := uc.loaders[info.Kind]
		if !ok {
			continue
		}
		g.Go(func() error {
			data, err := load(gctx, ownerID)
			if err != nil {
				return err
			}
			mu.Lock()
			sections[info.Section] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return json.Marshal(sections)
}

func (uc *GetSiteUseCase) recordLookup(hit bool) {
	if uc.recorder != nil {
		uc.recorder.SiteCacheLookup(hit)
	}
}
