package billing

import (
	"testing"
	"time"
)

func TestLookupPlanNormalizesID(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"pro", "pro", true},
		{"PRO", "pro", true},
		{"  starter ", "starter", true},
		{"pro_yearly", "pro_yearly", true},
		{"enterprise", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		plan, ok := LookupPlan(tc.in)
		if ok != tc.ok {
			t.Errorf("LookupPlan(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && plan.ID != tc.want {
			t.Errorf("LookupPlan(%q) = %q, want %q", tc.in, plan.ID, tc.want)
		}
	}
}

func TestLookupPromotionTier(t *testing.T) {
	tier, ok := LookupPromotionTier("Two_Weeks")
	if !ok {
		t.Fatal("expected two_weeks tier to exist")
	}
	if tier.Days != 14 {
		t.Errorf("two_weeks days = %d, want 14", tier.Days)
	}

	if _, ok := LookupPromotionTier("decade"); ok {
		t.Error("unknown tier should not resolve")
	}
}

func TestPlansSortedByPrice(t *testing.T) {
	out := Plans()
	if len(out) == 0 {
		t.Fatal("catalog is empty")
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].AmountCents > out[i].AmountCents {
			t.Errorf("plans out of order: %s (%d) before %s (%d)",
				out[i-1].ID, out[i-1].AmountCents, out[i].ID, out[i].AmountCents)
		}
	}
}

func TestPromotionTiersSortedByDays(t *testing.T) {
	out := PromotionTiers()
	for i := 1; i < len(out); i++ {
		if out[i-1].Days > out[i].Days {
			t.Errorf("tiers out of order: %s before %s", out[i-1].ID, out[i].ID)
		}
	}
}

func TestPlanExpiryFrom(t *testing.T) {
	start := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	monthly, _ := LookupPlan("pro")
	if got := monthly.ExpiryFrom(start); !got.Equal(start.AddDate(0, 1, 0)) {
		t.Errorf("monthly expiry = %v, want one month after start", got)
	}

	yearly, _ := LookupPlan("pro_yearly")
	if got := yearly.ExpiryFrom(start); !got.Equal(start.AddDate(1, 0, 0)) {
		t.Errorf("yearly expiry = %v, want one year after start", got)
	}
}
