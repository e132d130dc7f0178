package billing

import "time"

// ProcessedEvent records Stripe event ids that have already been applied.
// The unique index makes duplicate webhook deliveries a no-op: the row is
// inserted in the same transaction as the entitlement mutation and ledger
// write, so either all three land or none do.
type ProcessedEvent struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   string `gorm:"uniqueIndex;not null"`
	Type      string
	CreatedAt time.Time
}
