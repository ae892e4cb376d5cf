package entitlement

import "strings"

// PlanID names a subscription tier.
type PlanID string

const (
	PlanFree       PlanID = "free"
	PlanPremium    PlanID = "premium"
	PlanEnterprise PlanID = "enterprise"
)

// Unlimited marks a limit that never denies creation.
const Unlimited = -1

var validPlans = map[PlanID]bool{
	PlanFree:       true,
	PlanPremium:    true,
	PlanEnterprise: true,
}

func (p PlanID) String() string {
	return string(p)
}

func (p PlanID) IsValid() bool {
	return validPlans[p]
}

func (p PlanID) IsFree() bool {
	return p == PlanFree
}

// IsPaid reports whether p can be the target of an upgrade.
func (p PlanID) IsPaid() bool {
	return p == PlanPremium || p == PlanEnterprise
}

// ParsePlanID normalizes s into a known plan id.
func ParsePlanID(s string) (PlanID, bool) {
	p := PlanID(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// LimitedKind names the resource types whose creation is counted against a plan.
type LimitedKind string

const (
	LimitPortfolio   LimitedKind = "portfolio"
	LimitTestimonial LimitedKind = "testimonial"
	LimitService     LimitedKind = "service"
	LimitAward       LimitedKind = "award"
)

// Features is the per-plan limit and flag set. It is also the snapshot shape
// stored on a subscription row.
type Features struct {
	PortfolioLimit   int  `json:"portfolioLimit"`
	TestimonialLimit int  `json:"testimonialLimit"`
	ServiceLimit     int  `json:"serviceLimit"`
	AwardLimit       int  `json:"awardLimit"`
	CustomDomain     bool `json:"customDomain"`
	Analytics        bool `json:"analytics"`
	SEOOptimization  bool `json:"seoOptimization"`
	PrioritySupport  bool `json:"prioritySupport"`
}

// LimitFor returns the limit for kind. Kinds that are not quota limited are
// unlimited.
func (f Features) LimitFor(kind LimitedKind) int {
	switch kind {
	case LimitPortfolio:
		return f.PortfolioLimit
	case LimitTestimonial:
		return f.TestimonialLimit
	case LimitService:
		return f.ServiceLimit
	case LimitAward:
		return f.AwardLimit
	default:
		return Unlimited
	}
}

// PlanTable maps each plan to its features. It is built once at startup and
// never mutated.
type PlanTable struct {
	plans map[PlanID]Features
}

func NewPlanTable(free, premium, enterprise Features) *PlanTable {
	return &PlanTable{
		plans: map[PlanID]Features{
			PlanFree:       free,
			PlanPremium:    premium,
			PlanEnterprise: enterprise,
		},
	}
}

// DefaultPlanTable returns the stock limits.
func DefaultPlanTable() *PlanTable {
	return NewPlanTable(
		Features{PortfolioLimit: 3, TestimonialLimit: 5, ServiceLimit: 3, AwardLimit: 3},
		Features{
			PortfolioLimit: 20, TestimonialLimit: 20, ServiceLimit: 10, AwardLimit: 10,
			CustomDomain: true, Analytics: true, SEOOptimization: true,
		},
		Features{
			PortfolioLimit: Unlimited, TestimonialLimit: Unlimited, ServiceLimit: Unlimited, AwardLimit: Unlimited,
			CustomDomain: true, Analytics: true, SEOOptimization: true, PrioritySupport: true,
		},
	)
}

// Features looks up plan. Unknown plans silently fall back to the free tier.
func (t *PlanTable) Features(plan PlanID) Features {
	if f, ok := t.plans[plan]; ok {
		return f
	}
	return t.plans[PlanFree]
}

// Limit is shorthand for Features(plan).LimitFor(kind).
func (t *PlanTable) Limit(plan PlanID, kind LimitedKind) int {
	return t.Features(plan).LimitFor(kind)
}
