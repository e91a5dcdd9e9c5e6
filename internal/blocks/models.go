package blocks

import "time"

// BlockRelation is the one-directional suppression of blockedID from
// blockerID's feed. It is created once and never updated or deleted.
type BlockRelation struct {
	BlockerID string    `json:"blocker_id"`
	BlockedID string    `json:"blocked_id"`
	BlockedAt time.Time `json:"blocked_at"`
}
