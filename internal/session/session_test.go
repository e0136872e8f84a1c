package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestEnsureMintsAndRoundTrips(t *testing.T) {
	m := NewManager([]byte("test-secret"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	sid := m.Ensure(w, r)
	if sid == "" {
		t.Fatal("expected a session id")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName {
		t.Fatalf("expected one %s cookie, got %v", cookieName, cookies)
	}

	// Replay the cookie: same session id, no new cookie set.
	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookies[0])
	if got := m.Ensure(w2, r2); got != sid {
		t.Fatalf("expected %s, got %s", sid, got)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Fatal("expected no new cookie on valid session")
	}
}

func TestEnsureRejectsTamperedToken(t *testing.T) {
	m := NewManager([]byte("test-secret"))
	other := NewManager([]byte("other-secret"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	m.Ensure(w, r)
	cookie := w.Result().Cookies()[0]

	// Token signed by a different secret must be replaced.
	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookie)
	sid := other.Ensure(w2, r2)
	if sid == "" {
		t.Fatal("expected replacement session id")
	}
	if len(w2.Result().Cookies()) != 1 {
		t.Fatal("expected a fresh cookie for invalid token")
	}
}

func TestEnsureRejectsWrongSigningMethod(t *testing.T) {
	secret := []byte("test-secret")
	m := NewManager(secret)

	// Same secret, but not the method we issue with.
	claims := jwt.MapClaims{
		"sid": "forged-sid",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: token})

	sid := m.Ensure(w, r)
	if sid == "forged-sid" {
		t.Fatal("HS384 token must not be accepted")
	}
	if len(w.Result().Cookies()) != 1 {
		t.Fatal("expected a fresh cookie to replace the rejected token")
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
