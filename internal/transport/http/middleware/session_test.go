package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"octomate/internal/domain/rbac"
)

func sessionProbe(t *testing.T, secret, header string) (rbac.User, bool) {
	t.Helper()
	var (
		got   rbac.User
		found bool
	)
	handler := Session(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got, found
}

func TestSessionAttachesUser(t *testing.T) {
	user, _ := rbac.UserForRole(rbac.RoleManager)
	token, err := rbac.GenerateToken("secret", user, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	got, ok := sessionProbe(t, "secret", "Bearer "+token)
	if !ok {
		t.Fatal("no user on context")
	}
	if got.Role != rbac.RoleManager || got.ID != user.ID {
		t.Fatalf("context user = %+v", got)
	}
}

func TestSessionIgnoresBadTokens(t *testing.T) {
	user, _ := rbac.UserForRole(rbac.RoleHRAdmin)
	token, err := rbac.GenerateToken("other-secret", user, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	for name, header := range map[string]string{
		"missing":      "",
		"malformed":    "Bearer",
		"not bearer":   "Basic abc",
		"wrong secret": "Bearer " + token,
		"garbage":      "Bearer not-a-token",
	} {
		if _, ok := sessionProbe(t, "secret", header); ok {
			t.Fatalf("%s header produced a context user", name)
		}
	}
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatal("no request id generated")
	}
	if rec.Header().Get("X-Request-ID") != seen {
		t.Fatal("request id not echoed in response header")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given-id")
	handler.ServeHTTP(rec, req)
	if seen != "given-id" {
		t.Fatalf("request id = %q, want the caller's", seen)
	}
}
