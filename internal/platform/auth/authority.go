package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is the credential validity window used when no TTL is
// configured.
const DefaultTokenTTL = 30 * time.Minute

// Identity is the authenticated subject embedded in a credential.
type Identity struct {
	Username string
	Role     string
}

// Claims is the JWT payload for issued credentials.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Authority issues and validates signed, role-carrying, time-limited
// credentials. Tokens are stateless and self-contained: there is no session
// store and no revocation list, so the only mutable state is the signing
// secret, which is fixed for the process lifetime.
type Authority struct {
	store  UserStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthority(store UserStore, secret []byte, ttl time.Duration) *Authority {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Authority{
		store:  store,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// dummyHash is compared against when the username is unknown so that the
// bcrypt cost is paid on both paths. Without it, response timing would
// distinguish "no such user" from "wrong password".
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("credential-authority-dummy"), bcrypt.DefaultCost)
	return h
}()

// Issue authenticates username/password against the user store and returns a
// signed credential together with the authenticated identity. Unknown
// usernames and wrong passwords both fail with ErrInvalidCredentials.
func (a *Authority) Issue(ctx context.Context, username, password string) (string, Identity, error) {
	user, err := a.store.Lookup(ctx, username)
	if err != nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", Identity{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", Identity{}, ErrInvalidCredentials
	}

	now := a.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
		Role: user.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", Identity{}, err
	}

	return token, Identity{Username: user.Username, Role: user.Role}, nil
}

// Validate parses and verifies a credential and returns the embedded
// identity. Malformed, mis-signed, and expired tokens, as well as tokens
// missing a subject or role claim, all fail with ErrInvalidToken; callers
// must not be able to tell those cases apart.
func (a *Authority) Validate(tokenStr string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if claims.Subject == "" || claims.Role == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{Username: claims.Subject, Role: claims.Role}, nil
}

// Authorize checks the identity against a required role. The check is
// exact-match: medical_staff does not subsume patient or vice versa.
func Authorize(id Identity, requiredRole string) error {
	if id.Role != requiredRole {
		return ErrForbidden
	}
	return nil
}

// IsAuthError reports whether err is one of the authority's sentinel errors.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrForbidden)
}
