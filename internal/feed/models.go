package feed

import "time"

// User is a candidate profile. Profile documents are owned by the external
// profile repository; this service never mutates them.
type User struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Age               int       `json:"age"`
	Bio               string    `json:"bio"`
	GenderIdentity    string    `json:"gender_identity"`
	SexualOrientation string    `json:"sexual_orientation"`
	ProfilePicture    string    `json:"profile_picture,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// FeedPage is one page of the curated feed. Cursor is opaque to callers and
// continues the listing after the last raw (pre-filter) item.
type FeedPage struct {
	Profiles []User `json:"profiles"`
	Cursor   string `json:"cursor,omitempty"`
	HasMore  bool   `json:"has_more"`
}
