package resource

import (
	"strings"

	"github.com/folio-hq/folio/internal/domain/entitlement"
)

// Kind names a content type owned by an account.
type Kind string

const (
	KindAbout        Kind = "about"
	KindSkill        Kind = "skill"
	KindExperience   Kind = "experience"
	KindEducation    Kind = "education"
	KindPortfolio    Kind = "portfolio"
	KindTestimonial  Kind = "testimonial"
	KindService      Kind = "service"
	KindFunFact      Kind = "funfact"
	KindBrand        Kind = "brand"
	KindPricing      Kind = "pricing"
	KindAward        Kind = "award"
	KindIntroFeature Kind = "intro-feature"
)

// Info is the static description of a kind.
type Info struct {
	Kind Kind
	// Route is the path segment under /api.
	Route string
	// Section is the key used in the aggregated site payload.
	Section string
	// Limit is the plan limit counted on creation, empty when unlimited.
	Limit entitlement.LimitedKind
	// Singleton kinds hold at most one record per owner and are upserted.
	Singleton bool
	// SingleFetch kinds expose GET /:id.
	SingleFetch bool
}

func (i Info) QuotaLimited() bool {
	return i.Limit != ""
}

var kinds = []Info{
	{Kind: KindAbout, Route: "about", Section: "about", Singleton: true},
	{Kind: KindSkill, Route: "skills", Section: "skills"},
	{Kind: KindExperience, Route: "experience", Section: "experience"},
	{Kind: KindEducation, Route: "education", Section: "education"},
	{Kind: KindPortfolio, Route: "portfolio", Section: "portfolio", Limit: entitlement.LimitPortfolio, SingleFetch: true},
	{Kind: KindTestimonial, Route: "testimonials", Section: "testimonials", Limit: entitlement.LimitTestimonial},
	{Kind: KindService, Route: "services", Section: "services", Limit: entitlement.LimitService},
	{Kind: KindFunFact, Route: "funfacts", Section: "funFacts"},
	{Kind: KindBrand, Route: "brands", Section: "brands"},
	{Kind: KindPricing, Route: "pricing", Section: "pricing"},
	{Kind: KindAward, Route: "awards", Section: "awards", Limit: entitlement.LimitAward},
	{Kind: KindIntroFeature, Route: "intro-features", Section: "introFeatures"},
}

var aliases = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds)*3)
	for _, info := range kinds {
		m[string(info.Kind)] = info.Kind
		m[info.Route] = info.Kind
		m[strings.ToLower(info.Section)] = info.Kind
	}
	m["fun-facts"] = KindFunFact
	m["introfeature"] = KindIntroFeature
	return m
}()

// Kinds returns every kind in display order.
func Kinds() []Info {
	out := make([]Info, len(kinds))
	copy(out, kinds)
	return out
}

// Info returns the static description of k.
func (k Kind) Info() (Info, bool) {
	for _, info := range kinds {
		if info.Kind == k {
			return info, true
		}
	}
	return Info{}, false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts a kind name, its route segment, or its section key in
// any case.
func ParseKind(s string) (Kind, bool) {
	k, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// ParseSection resolves a site section key such as "funFacts".
func ParseSection(s string) (Info, bool) {
	for _, info := range kinds {
		if strings.EqualFold(info.Section, s) {
			return info, true
		}
	}
	return Info{}, false
}
