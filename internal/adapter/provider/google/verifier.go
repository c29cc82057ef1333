package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/habits-backend/internal/auth"
)

var (
	// Made variables for testing purposes
	certsURL     = "https://www.googleapis.com/oauth2/v3/certs"
	validIssuers = []string{"accounts.google.com", "https://accounts.google.com"}
)

const (
	keysRefreshInterval = time.Hour
	// Tokens naming a kid missing from the cached set may trigger at most
	// one out-of-band refresh per window.
	unknownKIDRefreshEvery = 5 * time.Minute
)

// Verifier validates Google ID tokens against Google's published signing keys.
type Verifier struct {
	clientID string
	keys     keyfunc.Keyfunc
	log      *slog.Logger
}

// NewVerifier creates a Google ID-token verifier for the given OAuth client.
// The key set is refreshed in the background until ctx is done. A failed
// first fetch is logged and retried on demand.
func NewVerifier(ctx context.Context, clientID string, timeout time.Duration, logger *slog.Logger) (*Verifier, error) {
	log := logger.With("adapter", "google_id_token")

	certsURI, err := url.Parse(certsURL)
	if err != nil {
		return nil, fmt.Errorf("google: parse certs URL: %w", err)
	}

	remote, err := jwkset.NewStorageFromHTTP(certsURI, jwkset.HTTPClientStorageOptions{
		Client:                    &http.Client{Timeout: timeout},
		Ctx:                       ctx,
		HTTPTimeout:               timeout,
		NoErrorReturnFirstHTTPReq: true,
		RefreshErrorHandler: func(ctx context.Context, err error) {
			log.ErrorContext(ctx, "google certs refresh failed", slog.String("error", err.Error()))
		},
		RefreshInterval: keysRefreshInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("google: create certs storage: %w", err)
	}

	client, err := jwkset.NewHTTPClient(jwkset.HTTPClientOptions{
		HTTPURLs:          map[string]jwkset.Storage{certsURL: remote},
		RateLimitWaitMax:  timeout,
		RefreshUnknownKID: rate.NewLimiter(rate.Every(unknownKIDRefreshEvery), 1),
	})
	if err != nil {
		return nil, fmt.Errorf("google: create certs client: %w", err)
	}

	keys, err := keyfunc.New(keyfunc.Options{
		Ctx:          ctx,
		Storage:      client,
		UseWhitelist: []jwkset.USE{jwkset.UseSig},
	})
	if err != nil {
		return nil, fmt.Errorf("google: create keyfunc: %w", err)
	}

	return &Verifier{clientID: clientID, keys: keys, log: log}, nil
}

// idTokenClaims is the subset of the Google ID token payload we read.
type idTokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// VerifyIDToken checks the RS256 signature, expiry, audience and issuer of
// an ID token and returns the identity it asserts. Token problems wrap
// auth.ErrInvalidIDToken; an empty key set does not.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	token, err := jwt.ParseWithClaims(idToken, &idTokenClaims{}, v.keys.KeyfuncCtx(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.clientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenUnverifiable) && !v.haveKeys(ctx) {
			v.log.ErrorContext(ctx, "google signing keys unavailable", slog.String("error", err.Error()))
			return nil, fmt.Errorf("google: signing keys unavailable: %w", err)
		}
		v.log.DebugContext(ctx, "google id token rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: %w: %v", auth.ErrInvalidIDToken, err)
	}

	claims, ok := token.Claims.(*idTokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("google: %w: invalid claims", auth.ErrInvalidIDToken)
	}
	if !slices.Contains(validIssuers, claims.Issuer) {
		return nil, fmt.Errorf("google: %w: unexpected issuer %q", auth.ErrInvalidIDToken, claims.Issuer)
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("google: %w: missing subject or email", auth.ErrInvalidIDToken)
	}

	return &auth.GoogleIdentity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		Name:          claims.Name,
		EmailVerified: claims.EmailVerified,
	}, nil
}

// haveKeys reports whether any signing key has been loaded.
func (v *Verifier) haveKeys(ctx context.Context) bool {
	all, err := v.keys.Storage().KeyReadAll(ctx)
	return err == nil && len(all) > 0
}
