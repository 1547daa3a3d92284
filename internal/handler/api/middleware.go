package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/apictx"
)

var placementRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// WithPlacement extracts the {department} and {slot} URL params, rejects
// shapes that could never name a placement, and stashes both in context.
// Unrecognised department codes are NOT rejected here: resolution handles
// absence gracefully and new departments must not require a redeploy.
func WithPlacement() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			department := chi.URLParam(r, "department")
			slot := chi.URLParam(r, "slot")
			if department == "" || slot == "" {
				WriteError(w, http.StatusBadRequest, "department and slot are required", nil)
				return
			}
			if !placementRe.MatchString(department) || !placementRe.MatchString(slot) {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid placement %q/%q", department, slot), nil)
				return
			}

			// stash them in context and call the real handler
			ctx := apictx.WithPlacement(r.Context(), department, slot)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithDepartment is the single-param variant for the fee routes.
func WithDepartment() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			department := chi.URLParam(r, "department")
			if department == "" {
				WriteError(w, http.StatusBadRequest, "department is required", nil)
				return
			}
			if !placementRe.MatchString(department) {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid department %q", department), nil)
				return
			}

			ctx := apictx.WithDepartment(r.Context(), department)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithJWTAuth guards mutating routes with an RS256 bearer token. The visitor
// identity from the claims is attached to the request context so write paths
// can record who edited what. An empty key disables the guard entirely,
// which is how local development runs.
func WithJWTAuth(publicKeyPEM string) func(http.Handler) http.Handler {
	if publicKeyPEM == "" {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r)
			})
		}
	}

	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "auth misconfigured", err)
				return
			}

			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return pubKey, nil
			})
			if err != nil || !token.Valid {
				WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			visitor := apictx.Visitor{}
			if name, ok := claims["name"].(string); ok {
				visitor.Name = name
			}
			if email, ok := claims["email"].(string); ok {
				visitor.Email = email
			}

			next.ServeHTTP(w, r.WithContext(apictx.WithVisitor(r.Context(), visitor)))
		})
	}
}
