package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxEmployeeID ctxKey = "employeeID"

const (
	sessionCookieName = "depot_session"
	// Sessions expire after 15 minutes of inactivity; every authenticated
	// request reissues the cookie, sliding the window.
	sessionLifetime = 15 * time.Minute
)

type sessionClaims struct {
	EmployeeID int64 `json:"employee_id"`
	jwt.RegisteredClaims
}

func (h *Handler) issueSessionCookie(w http.ResponseWriter, employeeID int64) {
	now := time.Now()
	claims := sessionClaims{
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		// Signing only fails on a broken secret; the request proceeds
		// without a refreshed cookie.
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(sessionLifetime),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) sessionEmployeeID(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return 0, false
	}
	token, err := jwt.ParseWithClaims(cookie.Value, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return 0, false
	}
	return claims.EmployeeID, true
}

// sessionMiddleware redirects anonymous requests to the login page before any
// query is issued, and refreshes the session cookie for authenticated ones.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employeeID, ok := h.sessionEmployeeID(r)
		if !ok {
			http.Redirect(w, r, "/factory/login", http.StatusFound)
			return
		}
		h.issueSessionCookie(w, employeeID)
		ctx := context.WithValue(r.Context(), ctxEmployeeID, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func employeeIDFromContext(r *http.Request) int64 {
	if val := r.Context().Value(ctxEmployeeID); val != nil {
		if id, ok := val.(int64); ok {
			return id
		}
	}
	return 0
}
