package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmynk/tastyhub/internal/auth"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := bearerToken(tt.header)
			if got != tt.want || ok != tt.ok {
				t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWithClaims(t *testing.T) {
	claims := &auth.Claims{UserID: "u1", Email: "pat@example.com"}
	ctx := WithClaims(context.Background(), claims)

	if GetUserID(ctx) != "u1" || GetEmail(ctx) != "pat@example.com" || GetClaims(ctx) != claims {
		t.Errorf("identity not carried by context")
	}
	if GetUserID(context.Background()) != "" || GetClaims(context.Background()) != nil {
		t.Errorf("empty context should carry no identity")
	}
}

func TestCORS(t *testing.T) {
	called := false
	h := CORS("https://tastyhub.example")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/tastyhub.v1.MenuService/ListMenu", nil))
	if called {
		t.Error("preflight reached the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://tastyhub.example" {
		t.Errorf("Allow-Origin = %q", got)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tastyhub.v1.MenuService/ListMenu", nil))
	if !called {
		t.Error("POST did not reach the handler")
	}
}
