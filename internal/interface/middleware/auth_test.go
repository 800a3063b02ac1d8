package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"identity-service/pkg/helpers"
)

func newAuthTestRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", BearerAuth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetString(CtxUserIDKey),
			"email": c.GetString(CtxUserEmailKey),
		})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authorization string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := map[string]string{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, body
}

func TestBearerAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthTestRouter(helpers.NewJWTManager("test-secret", time.Hour))

	w, body := doRequest(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("body = %v, want error Unauthorized", body)
	}
}

func TestBearerAuthRejectsNonBearerScheme(t *testing.T) {
	r := newAuthTestRouter(helpers.NewJWTManager("test-secret", time.Hour))

	w, body := doRequest(t, r, "Basic xyz")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("body = %v, want error Unauthorized", body)
	}
}

func TestBearerAuthRejectsBadToken(t *testing.T) {
	r := newAuthTestRouter(helpers.NewJWTManager("test-secret", time.Hour))

	w, body := doRequest(t, r, "Bearer not-a-valid-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("body = %v, want error Unauthorized", body)
	}
}

func TestBearerAuthRejectsForeignSignature(t *testing.T) {
	other := helpers.NewJWTManager("other-secret", time.Hour)
	token, _, err := other.GenerateAccessToken(helpers.TokenSubject{ID: "user-123"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	r := newAuthTestRouter(helpers.NewJWTManager("test-secret", time.Hour))
	w, body := doRequest(t, r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("body = %v, want error Unauthorized", body)
	}
}

func TestBearerAuthRejectsTokenWithoutSubjectID(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	token, _, err := jwt.GenerateAccessToken(helpers.TokenSubject{Email: "john@example.com"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	r := newAuthTestRouter(jwt)
	w, body := doRequest(t, r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if body["error"] != "Invalid Token" {
		t.Errorf("body = %v, want error Invalid Token", body)
	}
}

func TestBearerAuthAttachesIdentity(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	token, _, err := jwt.GenerateAccessToken(helpers.TokenSubject{ID: "user-123", Email: "john@example.com"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	r := newAuthTestRouter(jwt)
	w, body := doRequest(t, r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["id"] != "user-123" || body["email"] != "john@example.com" {
		t.Errorf("body = %v, want attached identity", body)
	}
}
