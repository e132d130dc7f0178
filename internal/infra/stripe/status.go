package stripe

import "strings"

// NormalizeStatus maps a Stripe subscription status onto the three states
// the user row carries. Anything Stripe considers payable keeps the
// entitlement; terminal states become cancelled, payment trouble inactive.
func NormalizeStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "active", "trialing":
		return "active"
	case "canceled", "incomplete_expired":
		return "cancelled"
	case "past_due", "unpaid", "incomplete", "paused":
		return "inactive"
	default:
		return "inactive"
	}
}
