package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"os"
	"seoaudit/internal/config"
	"seoaudit/pkg/controller"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountIDKey is the context key of the authenticated account.
const AccountIDKey controller.CtxKey = "AccountID"

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying bearer tokens.
	PublicKey string
}

// NewSecHandlerOptions reads the public key configured in cfg. A missing key
// file yields empty options and NewSecHandler reports the problem.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	key, err := os.ReadFile(cfg.JWT.PublicKeyPath)
	if err != nil {
		logger.Warn(context.Background(), "could not read JWT public key",
			zap.String("path", cfg.JWT.PublicKeyPath),
			zap.Error(err))
	}

	return &SecHandlerOptions{PublicKey: string(key)}
}

// SecHandler authenticates RS256 bearer tokens whose subject is an account id.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the account id of
// its subject.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, AccountIDKey, domain.AccountID(id))
	ctx = logger.WithFields(ctx, zap.String("account_id", id.String()))

	return ctx, nil
}

// Middleware rejects requests without a valid bearer token. Browsers cannot
// set headers on an EventSource, so the token may also be passed as the
// access_token query parameter.
func (s *SecHandler) Middleware(h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				token = r.URL.Query().Get("access_token")
			}
			if token == "" {
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), token)
			if err != nil {
				h.writeError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccountIDFromContext returns the authenticated account. It is the zero id
// outside of authenticated routes.
func GetAccountIDFromContext(ctx context.Context) domain.AccountID {
	id, _ := ctx.Value(AccountIDKey).(domain.AccountID)

	return id
}
