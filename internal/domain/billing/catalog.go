package billing

import (
	"sort"
	"strings"
	"time"
)

// The purchasable catalog lives in code, not in the database or in Stripe
// products. Checkout sessions are priced from these tables via price_data,
// and the webhook maps metadata ids back through the same tables.

const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	AmountCents int64    `json:"amount_cents"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
}

// ExpiryFrom returns the subscription expiration one billing interval after t.
func (p Plan) ExpiryFrom(t time.Time) time.Time {
	if p.Interval == IntervalYear {
		return t.AddDate(1, 0, 0)
	}
	return t.AddDate(0, 1, 0)
}

type PromotionTier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Days        int    `json:"days"`
	AmountCents int64  `json:"amount_cents"`
}

var plans = map[string]Plan{
	"starter": {
		ID:          "starter",
		Name:        "Starter",
		AmountCents: 999,
		Interval:    IntervalMonth,
		Features:    []string{"Up to 5 active listings", "Email support"},
	},
	"pro": {
		ID:          "pro",
		Name:        "Pro",
		AmountCents: 2900,
		Interval:    IntervalMonth,
		Features:    []string{"Unlimited listings", "Listing analytics", "Priority support"},
	},
	"pro_yearly": {
		ID:          "pro_yearly",
		Name:        "Pro (yearly)",
		AmountCents: 29900,
		Interval:    IntervalYear,
		Features:    []string{"Unlimited listings", "Listing analytics", "Priority support", "2 months free"},
	},
	"agency": {
		ID:          "agency",
		Name:        "Agency",
		AmountCents: 9900,
		Interval:    IntervalMonth,
		Features:    []string{"Unlimited listings", "Listing analytics", "Team seats", "Dedicated support"},
	},
}

var promotionTiers = map[string]PromotionTier{
	"week":      {ID: "week", Name: "Featured for a week", Days: 7, AmountCents: 999},
	"two_weeks": {ID: "two_weeks", Name: "Featured for two weeks", Days: 14, AmountCents: 1799},
	"month":     {ID: "month", Name: "Featured for a month", Days: 30, AmountCents: 2999},
}

func LookupPlan(id string) (Plan, bool) {
	p, ok := plans[strings.ToLower(strings.TrimSpace(id))]
	return p, ok
}

func LookupPromotionTier(id string) (PromotionTier, bool) {
	t, ok := promotionTiers[strings.ToLower(strings.TrimSpace(id))]
	return t, ok
}

// Plans returns the catalog sorted by price for the public listing endpoint.
func Plans() []Plan {
	out := make([]Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AmountCents < out[j].AmountCents })
	return out
}

func PromotionTiers() []PromotionTier {
	out := make([]PromotionTier, 0, len(promotionTiers))
	for _, t := range promotionTiers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}
