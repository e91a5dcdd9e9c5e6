package matches

import "time"

// Status is the lifecycle state of a match.
//
//	pending  -> matched | rejected
//	matched  -> (deleted, record removed)
//	rejected -> terminal
type Status string

const (
	StatusPending  Status = "pending"
	StatusMatched  Status = "matched"
	StatusRejected Status = "rejected"
)

// Match tracks one user's like toward another and its resulting state. The
// pair is conceptually unordered but stored with deterministic roles: the
// initiator is the user whose like created the record.
type Match struct {
	ID          string    `json:"id"`
	InitiatorID string    `json:"initiator_id"`
	RecipientID string    `json:"recipient_id"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasParticipant reports whether userID is one of the two users.
func (m *Match) HasParticipant(userID string) bool {
	return m.InitiatorID == userID || m.RecipientID == userID
}

// OtherUser returns the participant that is not userID.
func (m *Match) OtherUser(userID string) string {
	if m.InitiatorID == userID {
		return m.RecipientID
	}
	return m.InitiatorID
}
