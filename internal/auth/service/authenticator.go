package service

import (
	"context"
	"strings"

	"github.com/Darrly207/Gemetry-BE/internal/auth/domain"
	autherror "github.com/Darrly207/Gemetry-BE/internal/errors"
	"github.com/Darrly207/Gemetry-BE/pkg/constant"
)

// Authenticator gates protected requests. A request passes only when the
// bearer token carries a valid signature AND still matches a session row for
// the decoded user, so deleting the row revokes the token before its expiry.
type Authenticator struct {
	tokens   TokenGenerator
	sessions domain.SessionRepository
}

func NewAuthenticator(tokens TokenGenerator, sessions domain.SessionRepository) *Authenticator {
	return &Authenticator{tokens: tokens, sessions: sessions}
}

// Authenticate resolves an Authorization header to an identity.
// Failures keep their kind: ErrMissingToken for an absent or malformed
// header, ErrInvalidToken for any codec failure, ErrSessionExpired when the
// signature is fine but the session row is gone.
func (a *Authenticator) Authenticate(ctx context.Context, authorizationHeader string) (*domain.Identity, error) {
	token, ok := bearerToken(authorizationHeader)
	if !ok {
		return nil, autherror.ErrMissingToken
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	exists, err := a.sessions.Exists(ctx, claims.UserID, token)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, autherror.ErrSessionExpired
	}

	return &domain.Identity{UserID: claims.UserID, Token: token}, nil
}

// bearerToken extracts the credential from an "Bearer <token>" header.
// Anything else counts as no token at all.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != constant.BearerScheme || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
