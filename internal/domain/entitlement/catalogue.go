package entitlement

// Pricing lists the advertised price per billing cycle.
type Pricing struct {
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// Offering is one entry of the public plan catalogue.
type Offering struct {
	ID          PlanID   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Billing     string   `json:"billing"`
	Pricing     Pricing  `json:"pricing"`
	Features    Features `json:"features"`
	Description string   `json:"description"`
	Popular     bool     `json:"popular"`
}

// Currency is the only currency plans are priced in.
const Currency = "USD"

type offeringText struct {
	id          PlanID
	name        string
	billing     string
	description string
	pricing     Pricing
	popular     bool
}

var offerings = []offeringText{
	{id: PlanFree, name: "Free", billing: "forever", description: "Perfect for getting started"},
	{id: PlanPremium, name: "Premium", billing: "monthly", description: "Best for professionals", pricing: Pricing{Monthly: 9.99, Yearly: 99.99}, popular: true},
	{id: PlanEnterprise, name: "Enterprise", billing: "monthly", description: "For teams and agencies", pricing: Pricing{Monthly: 29.99, Yearly: 299.99}},
}

// Catalogue returns the plan offerings with features taken from t.
func (t *PlanTable) Catalogue() []Offering {
	out := make([]Offering, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, Offering{
			ID:          o.id,
			Name:        o.name,
			Price:       o.pricing.Monthly,
			Currency:    Currency,
			Billing:     o.billing,
			Pricing:     o.pricing,
			Features:    t.Features(o.id),
			Description: o.description,
			Popular:     o.popular,
		})
	}
	return out
}

// PriceFor returns the advertised price of plan for a billing cycle name.
// Unknown cycles and the free plan cost nothing.
func PriceFor(plan PlanID, cycle string) float64 {
	for _, o := range offerings {
		if o.id != plan {
			continue
		}
		switch cycle {
		case "monthly":
			return o.pricing.Monthly
		case "yearly":
			return o.pricing.Yearly
		}
	}
	return 0
}
