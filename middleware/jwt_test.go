package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	jwtKey = []byte("test-secret")

	tenantID := uuid.New().String()
	userID := uuid.New().String()

	signed, err := GenerateToken(userID, "manager", "Jane Doe", tenantID)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(signed, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims: %v", err)
	}
	if !token.Valid {
		t.Fatal("token should be valid")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		t.Fatal("claims have wrong type")
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID)
	}
	if claims.Role != "manager" {
		t.Errorf("Role = %q, want manager", claims.Role)
	}
	if claims.TenantID != tenantID {
		t.Errorf("TenantID = %q, want %q", claims.TenantID, tenantID)
	}
}

func requestWithRole(role string) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	ctx := context.WithValue(r.Context(), userClaimsKey, &Claims{Role: role})
	return r.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"role in list", "manager", []string{"manager"}, http.StatusOK},
		{"admin passes everything", "admin", []string{"manager"}, http.StatusOK},
		{"role not in list", "staff", []string{"manager"}, http.StatusForbidden},
		{"no claims at all", "", []string{"manager"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.allowed, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			var req *http.Request
			if tt.role == "" {
				req = httptest.NewRequest("GET", "/", nil)
			} else {
				req = requestWithRole(tt.role)
			}
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestGetTenantIDOutsideMiddleware(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if got := GetTenantID(r); got != uuid.Nil {
		t.Errorf("GetTenantID = %v, want uuid.Nil", got)
	}
}
