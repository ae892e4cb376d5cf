package entitlement

// Quota is the outcome of comparing a usage count against a limit.
type Quota struct {
	Limit     int
	Current   int64
	Remaining int64
	Allowed   bool
}

func (q Quota) Unlimited() bool {
	return q.Limit == Unlimited
}

// Evaluate computes the quota for the given limit and current usage.
// Remaining is -1 when the limit is unlimited and never negative otherwise.
func Evaluate(limit int, current int64) Quota {
	if limit == Unlimited {
		return Quota{Limit: limit, Current: current, Remaining: Unlimited, Allowed: true}
	}

	remaining := int64(limit) - current
	if remaining < 0 {
		remaining = 0
	}
	return Quota{
		Limit:     limit,
		Current:   current,
		Remaining: remaining,
		Allowed:   current < int64(limit),
	}
}
