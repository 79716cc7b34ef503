package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// CookieName carries the signed session token.
	CookieName = "devfolio_session"

	// TTL is the fixed session lifetime. There is no refresh mechanic; the
	// session simply expires and the next auth check fails.
	TTL = 24 * time.Hour
)

// Store holds server-side sessions keyed by opaque random tokens. A session
// exists only after a successful login, so holding a valid unexpired token is
// the authenticated flag. Sessions live in process memory and do not survive
// a restart.
type Store struct {
	secret []byte
	secure bool

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
	now      func() time.Time
}

// NewStore creates a session store signing cookies with secret. An empty
// secret is replaced with a random one, which invalidates cookies from any
// previous process; the caller is expected to warn about that. With secure
// set, issued cookies are marked Secure.
func NewStore(secret string, secure bool) *Store {
	key := []byte(secret)
	if len(key) == 0 {
		key = randomBytes(32)
	}
	return &Store{
		secret:   key,
		secure:   secure,
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Issue creates a new authenticated session and sets its cookie on w.
func (s *Store) Issue(w http.ResponseWriter) {
	token := hex.EncodeToString(randomBytes(32))

	s.mu.Lock()
	s.purgeExpiredLocked()
	s.sessions[token] = s.now().Add(TTL)
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token + "." + s.sign(token),
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticated reports whether r carries a valid, unexpired session cookie.
func (s *Store) Authenticated(r *http.Request) bool {
	token, ok := s.tokenFromRequest(r)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Destroy removes the session named by r's cookie, if any, and clears the
// cookie on w. Destroying an unknown or absent session is not an error.
func (s *Store) Destroy(w http.ResponseWriter, r *http.Request) {
	if token, ok := s.tokenFromRequest(r); ok {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// tokenFromRequest extracts and verifies the cookie value. A missing cookie,
// malformed value, or bad signature all read as "no session".
func (s *Store) tokenFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	token, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(token))) {
		return "", false
	}
	return token, true
}

func (s *Store) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Store) purgeExpiredLocked() {
	now := s.now()
	for token, expiry := range s.sessions {
		if now.After(expiry) {
			delete(s.sessions, token)
		}
	}
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return b
}
