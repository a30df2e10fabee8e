package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	auth "github.com/burundanga/burundanga-api/internal/auth/middleware"
	"github.com/burundanga/burundanga-api/internal/rbac"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := auth.NewAuthService("test-secret")
	tok, err := svc.IssueJWT("user-1", "member")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	c, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Sub != "user-1" || c.Role != "member" {
		t.Fatalf("claims = %+v", c)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	tok, _ := auth.NewAuthService("key-a").IssueJWT("u", "member")
	if c, err := auth.NewAuthService("key-b").Parse(tok); err == nil && c != nil {
		t.Fatalf("token signed with a different key accepted")
	}
}

func TestJWTMiddleware(t *testing.T) {
	svc := auth.NewAuthService("test-secret")
	var gotSub, gotRole string
	h := auth.JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = auth.SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	// No token.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d", rec.Code)
	}

	// Garbage token.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d", rec.Code)
	}

	// Valid token populates subject and role.
	tok, _ := svc.IssueJWT("user-9", "moderator")
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d", rec.Code)
	}
	if gotSub != "user-9" || gotRole != "moderator" {
		t.Fatalf("context carried %q/%q", gotSub, gotRole)
	}
}
