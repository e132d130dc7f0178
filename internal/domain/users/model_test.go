package users

import (
	"testing"
	"time"
)

func TestSubscriptionIsActive(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{"active with future expiry", Subscription{Status: SubscriptionActive, ExpiresAt: &future}, true},
		{"active but expired", Subscription{Status: SubscriptionActive, ExpiresAt: &past}, false},
		{"active without expiry", Subscription{Status: SubscriptionActive}, false},
		{"cancelled", Subscription{Status: SubscriptionCancelled, ExpiresAt: &future}, false},
		{"inactive", Subscription{Status: SubscriptionInactive, ExpiresAt: &future}, false},
		{"zero value", Subscription{}, false},
	}

	for _, tc := range cases {
		if got := tc.sub.IsActive(now); got != tc.want {
			t.Errorf("%s: IsActive = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIDListRoundTrip(t *testing.T) {
	in := IDList{3, 7, 42}

	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out IDList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("round trip length = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestIDListScanEmptyAndNil(t *testing.T) {
	var l IDList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if l != nil {
		t.Errorf("Scan(nil) = %v, want nil", l)
	}

	if err := l.Scan("[]"); err != nil {
		t.Fatalf("Scan(\"[]\"): %v", err)
	}
	if len(l) != 0 {
		t.Errorf("Scan(\"[]\") length = %d, want 0", len(l))
	}
}
