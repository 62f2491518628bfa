package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tianxinyueming/idealyard/internal/dto"
)

func idEcho(t *testing.T, want int64, wantOK bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := GetUserIDFromContext(r.Context())
		if ok != wantOK || uid != want {
			t.Fatalf("user id in context: got (%d,%v), want (%d,%v)", uid, ok, want, wantOK)
		}
		w.WriteHeader(http.StatusOK)
	})
}

// Тест: IssueToken + WithAuth — user_id попадает в контекст
func TestWithAuth_ValidTokenSetsUserID(t *testing.T) {
	const secret = "test-secret"
	tok, err := IssueToken(77, secret, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	h := WithAuth(secret)(idEcho(t, 77, true))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(dto.TokenHeader, tok)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rr.Code)
	}
}

func TestWithAuth_BearerHeader(t *testing.T) {
	tok, _ := IssueToken(5, "s", time.Hour)
	h := WithAuth("s")(idEcho(t, 5, true))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)
}

// Тест: отсутствие токена — user_id не устанавливается
func TestWithAuth_NoTokenLeavesAnonymous(t *testing.T) {
	h := WithAuth("any-secret")(idEcho(t, 0, false))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: токен подписан другим секретом — user_id не устанавливается
func TestWithAuth_InvalidToken(t *testing.T) {
	tok, _ := IssueToken(5, "secret-A", time.Hour)
	h := WithAuth("secret-B")(idEcho(t, 0, false))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(dto.TokenHeader, tok)
	h.ServeHTTP(httptest.NewRecorder(), req)
}

func TestParseToken_Expired(t *testing.T) {
	tok, _ := IssueToken(5, "s", -time.Minute)
	if _, err := ParseToken(tok, "s"); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("not-a-jwt", "s"); err == nil {
		t.Fatalf("garbage must be rejected")
	}
}

func TestIssueToken_UniqueIDs(t *testing.T) {
	a, _ := IssueToken(1, "s", time.Hour)
	b, _ := IssueToken(1, "s", time.Hour)
	if a == b {
		t.Fatalf("tokens issued in the same second must differ by jti")
	}
}
