package usecases

import (
	"context"
	"sort"

	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/infrastructure/repository"
)

// SectionLoader reads one section of an owner's public site.
type SectionLoader func(ctx context.Context, ownerID uint) (any, error)

func listLoader[T resource.Record](repo resource.Repository[T]) SectionLoader {
	return func(ctx context.Context, ownerID uint) (any, error) {
		return repo.Find(ctx, ownerID)
	}
}

// singletonLoader yields nil when the owner has no record.
func singletonLoader[T resource.Record](repo resource.Repository[T]) SectionLoader {
	return func(ctx context.Context, ownerID uint) (any, error) {
		records, err := repo.Find(ctx, ownerID)
		if err != nil || len(records) == 0 {
			return nil, err
		}
		return records[0], nil
	}
}

// portfolioLoader hides inactive items and lists featured items first,
// keeping display order within each group.
func portfolioLoader(repo resource.Repository[*resource.Portfolio]) SectionLoader {
	return func(ctx context.Context, ownerID uint) (any, error) {
		records, err := repo.Find(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		visible := make([]*resource.Portfolio, 0, len(records))
		for _, p := range records {
			if p.Visible() {
				visible = append(visible, p)
			}
		}
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Featured && !visible[j].Featured
		})
		return visible, nil
	}
}

// NewSectionLoaders wires every kind to its public reader.
func NewSectionLoaders(repos *repository.ResourceRepositories) map[resource.Kind]SectionLoader {
	return map[resource.Kind]SectionLoader{
		resource.KindAbout:        singletonLoader[*resource.About](repos.About),
		resource.KindSkill:        listLoader[*resource.Skill](repos.Skill),
		resource.KindExperience:   listLoader[*resource.Experience](repos.Experience),
		resource.KindEducation:    listLoader[*resource.Education](repos.Education),
		resource.KindPortfolio:    portfolioLoader(repos.Portfolio),
		resource.KindTestimonial:  listLoader[*resource.Testimonial](repos.Testimonial),
		resource.KindService:      listLoader[*resource.Service](repos.Service),
		resource.KindFunFact:      listLoader[*resource.FunFact](repos.FunFact),
		resource.KindBrand:        listLoader[*resource.Brand](repos.Brand),
		resource.KindPricing:      listLoader[*resource.Pricing](repos.Pricing),
		resource.KindAward:        listLoader[*resource.Award](repos.Award),
		resource.KindIntroFeature: listLoader[*resource.IntroFeature](repos.IntroFeature),
	}
}
