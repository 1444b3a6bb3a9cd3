package middleware

import (
	"nabatea/globals"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signedToken(t *testing.T) string {
	t.Helper()
	claims := &Claims{
		Username: "ops1",
		UserID:   "U1",
		Role:     []string{"staff"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return tok
}

func TestValidateJWT(t *testing.T) {
	claims, err := ValidateJWT("Bearer " + signedToken(t))
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if claims.UserID != "U1" || len(claims.Role) != 1 || claims.Role[0] != "staff" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateJWTRejectsBadInput(t *testing.T) {
	if _, err := ValidateJWT(""); err == nil {
		t.Fatal("empty header must fail")
	}
	if _, err := ValidateJWT("Token abc"); err == nil {
		t.Fatal("non-bearer header must fail")
	}
	if _, err := ValidateJWT("Bearer not.a.token"); err == nil {
		t.Fatal("garbage token must fail")
	}
}

func TestAuthenticateStoresClaims(t *testing.T) {
	var gotUser string
	var gotRole []string
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUser, _ = r.Context().Value(globals.UserIDKey).(string)
		gotRole, _ = r.Context().Value(globals.RoleKey).([]string)
	})

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t))
	w := httptest.NewRecorder()
	h(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d", w.Code)
	}
	if gotUser != "U1" || len(gotRole) != 1 || gotRole[0] != "staff" {
		t.Fatalf("claims not stored: %q %v", gotUser, gotRole)
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	called := false
	h := Authenticate(func(http.ResponseWriter, *http.Request, httprouter.Params) { called = true })

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/", nil), nil)

	if called || w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got called=%v code=%d", called, w.Code)
	}
}
