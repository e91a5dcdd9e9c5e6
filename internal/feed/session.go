// internal/feed/session.go
// Session replaces the original client's process-wide feed store with an
// explicit state object owned by the caller.

package feed

import "context"

// Session accumulates the feed a single viewer is browsing: the profiles
// fetched so far, the continuation cursor and the hasMore flag. It is not
// safe for concurrent use; each signed-in client owns its own Session.
type Session struct {
	svc      Service
	viewerID string
	pageSize int

	profiles []User
	seen     map[string]struct{}
	cursor   string
	hasMore  bool
	fetched  bool
}

func NewSession(svc Service, viewerID string, pageSize int) *Session {
	return &Session{
		svc:      svc,
		viewerID: viewerID,
		pageSize: pageSize,
		seen:     make(map[string]struct{}),
	}
}

// FetchPage loads the first page, discarding any previous state. On failure
// the session is left empty and non-paginated, never with a partial page.
func (s *Session) FetchPage(ctx context.Context) ([]User, error) {
	s.reset()

	page, err := s.svc.FetchPage(ctx, s.viewerID, s.pageSize, "")
	if err != nil {
		return nil, err
	}

	s.apply(page)
	s.fetched = true
	return page.Profiles, nil
}

// FetchNextPage continues from the stored cursor. It is a no-op returning an
// empty result when no page was fetched yet or hasMore is false.
func (s *Session) FetchNextPage(ctx context.Context) ([]User, error) {
	if !s.fetched || !s.hasMore {
		return nil, nil
	}

	page, err := s.svc.FetchPage(ctx, s.viewerID, s.pageSize, s.cursor)
	if err != nil {
		s.reset()
		return nil, err
	}

	added := s.apply(page)
	return added, nil
}

// Remove drops a profile from the local state. Callers invoke it after a
// block call has succeeded against the store, never before.
func (s *Session) Remove(userID string) {
	for i, u := range s.profiles {
		if u.ID == userID {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			return
		}
	}
}

// Profiles returns the profiles accumulated so far, newest-created first.
func (s *Session) Profiles() []User {
	return s.profiles
}

// HasMore reports whether another page may exist.
func (s *Session) HasMore() bool {
	return s.hasMore
}

func (s *Session) reset() {
	s.profiles = nil
	s.seen = make(map[string]struct{})
	s.cursor = ""
	s.hasMore = false
	s.fetched = false
}

// apply folds a fetched page into the session, deduplicating across pages,
// and returns the profiles that were actually added.
func (s *Session) apply(page *FeedPage) []User {
	var added []User
	for _, u := range page.Profiles {
		if _, dup := s.seen[u.ID]; dup {
			continue
		}
		s.seen[u.ID] = struct{}{}
		s.profiles = append(s.profiles, u)
		added = append(added, u)
	}
	s.cursor = page.Cursor
	s.hasMore = page.HasMore
	return added
}
