package discussion

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// resolveAuthors fills in a display name for every comment. Three branches:
//
//  1. the name arrived with the comment row (read-time join) — keep it;
//  2. the join carried nothing — batch-load the missing authors in one
//     round trip and use their display name;
//  3. the author cannot be found at all — fall back to the anonymous label.
func (s *Service) resolveAuthors(ctx context.Context, comments []domain.Comment) []domain.Comment {
	var missing []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for i := range comments {
		if comments[i].Author.Source == domain.AuthorJoined && comments[i].Author.Name != "" {
			continue
		}
		if !seen[comments[i].AuthorID] {
			seen[comments[i].AuthorID] = true
			missing = append(missing, comments[i].AuthorID)
		}
	}
	if len(missing) == 0 {
		return comments
	}

	loader := s.newAuthorLoader()
	thunks := make(map[uuid.UUID]func() (*domain.User, error), len(missing))
	for _, id := range missing {
		thunks[id] = loader.Load(ctx, id)
	}

	resolved := make(map[uuid.UUID]domain.AuthorName, len(missing))
	for id, thunk := range thunks {
		u, err := thunk()
		if err != nil || u == nil || u.DisplayName() == "" {
			resolved[id] = domain.Anonymous()
			continue
		}
		resolved[id] = domain.AuthorName{Name: u.DisplayName(), Source: domain.AuthorLookup}
	}

	for i := range comments {
		if comments[i].Author.Source == domain.AuthorJoined && comments[i].Author.Name != "" {
			continue
		}
		comments[i].Author = resolved[comments[i].AuthorID]
	}

	return comments
}

// newAuthorLoader builds a per-request dataloader batching author lookups.
// Loaders are never shared across requests; comment lists are small enough
// that caching across calls buys nothing and risks stale names.
func (s *Service) newAuthorLoader() *dataloader.Loader[uuid.UUID, *domain.User] {
	batchFn := func(ctx context.Context, ids []uuid.UUID) []*dataloader.Result[*domain.User] {
		results := make([]*dataloader.Result[*domain.User], len(ids))

		users, err := s.users.GetByIDs(ctx, ids)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.User]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]domain.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}
		for i, id := range ids {
			if u, ok := byID[id]; ok {
				results[i] = &dataloader.Result[*domain.User]{Data: &u}
			} else {
				// Missing author: resolved as anonymous by the caller.
				results[i] = &dataloader.Result[*domain.User]{Data: nil}
			}
		}
		return results
	}

	return dataloader.NewBatchedLoader(batchFn, dataloader.WithClearCacheOnBatch[uuid.UUID, *domain.User]())
}
