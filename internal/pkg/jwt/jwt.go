package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Token issuance lives in the identity service in front of this API; this
// package only verifies tokens and exposes the claims payroll cares about.

var ErrNoActor = errors.New("no authenticated actor in context")

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ActorID(ctx context.Context) (string, error)
	IsSuperAdmin(ctx context.Context) bool
}

type jwtService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &jwtService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *jwtService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ActorID returns the user_id claim of the verified token. Mutating payroll
// operations require it for processed_by stamping.
func (j *jwtService) ActorID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", ErrNoActor
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrNoActor
	}

	return userID, nil
}

func (j *jwtService) IsSuperAdmin(ctx context.Context) bool {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false
	}

	isSuperAdmin, ok := claims["is_super_admin"].(bool)
	return ok && isSuperAdmin
}
