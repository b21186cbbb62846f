package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/buildhub-dev/buildhub-backend/internal/auth"
	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

// Logout revokes the presented refresh token, or every token of the caller
// when Everywhere is set. Revoking an unknown token succeeds silently.
func (s *Service) Logout(ctx context.Context, input LogoutInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if input.Everywhere {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return domain.ErrUnauthorized
		}
		if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("revoke all tokens: %w", err)
		}
		s.log.InfoContext(ctx, "user logged out everywhere",
			slog.String("user_id", userID.String()),
		)
		return nil
	}

	stored, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("lookup refresh token: %w", err)
	}

	if err := s.tokens.Revoke(ctx, stored.ID); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}

	return nil
}
