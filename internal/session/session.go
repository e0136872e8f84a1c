package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "mbti_session"

// Manager issues and verifies the signed session cookie that ties a
// browser to its conversation rows. No accounts, just an opaque id.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret []byte) Manager {
	return Manager{secret: secret, ttl: 30 * 24 * time.Hour}
}

// Ensure returns the request's session id, minting and setting a new
// one when the cookie is missing, expired or tampered with.
func (m Manager) Ensure(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cookieName); err == nil {
		if sid, err := m.parse(c.Value); err == nil {
			return sid
		}
	}

	sid := newID()
	token, err := m.sign(sid)
	if err != nil {
		// Unsigned fallback would defeat the point; the id still works
		// for this request and a fresh one is minted next time.
		return sid
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

func (m Manager) sign(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(m.ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m Manager) parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}

	data, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session claims")
	}
	sid, ok := data["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("missing session id")
	}
	return sid, nil
}

func newID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process is in real trouble;
		// a time-derived id keeps the request alive regardless.
		return fmt.Sprintf("s-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
