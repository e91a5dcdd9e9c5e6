// internal/feed/service.go

package feed

import (
	"context"
	"log"

	"github.com/emberlyapp/emberly-backend/internal/blocks"
	"github.com/emberlyapp/emberly-backend/internal/common/apperrors"
)

type Service interface {
	// FetchPage returns one block-filtered page of candidate profiles for
	// the viewer. cursorToken continues a previous page when non-empty.
	//
	// The raw page is fetched at full size and blocked profiles are dropped
	// afterwards, so a page can legitimately come back shorter than
	// pageSize. HasMore reflects the raw count, not the visible one.
	FetchPage(ctx context.Context, viewerID string, pageSize int, cursorToken string) (*FeedPage, error)
}

type service struct {
	repo            Repository
	blocks          blocks.Service
	defaultPageSize int
}

func NewService(repo Repository, blockService blocks.Service, defaultPageSize int) Service {
	return &service{
		repo:            repo,
		blocks:          blockService,
		defaultPageSize: defaultPageSize,
	}
}

func (s *service) FetchPage(ctx context.Context, viewerID string, pageSize int, cursorToken string) (*FeedPage, error) {
	if viewerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}

	after, err := decodeCursor(cursorToken)
	if err != nil {
		return nil, err
	}

	blocked, err := s.blocks.ListBlocked(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	raw, err := s.repo.ListCandidates(ctx, viewerID, pageSize, after)
	if err != nil {
		log.Printf("feed fetch failed for %s: %v", viewerID, err)
		return nil, apperrors.Persistence("fetch profiles", err)
	}

	page := &FeedPage{
		// hasMore approximates "more data exists" from the raw page being
		// full; it is computed before block filtering on purpose.
		HasMore:  len(raw) == pageSize,
		Profiles: make([]User, 0, len(raw)),
	}

	seen := make(map[string]struct{}, len(raw))
	for _, u := range raw {
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		if _, isBlocked := blocked[u.ID]; isBlocked {
			RecordProfileFiltered()
			continue
		}
		page.Profiles = append(page.Profiles, u)
	}

	if len(raw) > 0 {
		last := raw[len(raw)-1]
		page.Cursor = cursor{CreatedAt: last.CreatedAt, ID: last.ID}.encode()
	}

	RecordPageServed()
	return page, nil
}
