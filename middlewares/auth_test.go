package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
	"github.com/gaurabwebdev/bistro-boss-server/utils"
)

const testSecret = "test-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", VerifyJWT(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": utils.CurrentEmail(c)})
	})
	if db != nil {
		users := repository.NewUserRepository(db)
		r.GET("/admin-only", VerifyJWT(testSecret), VerifyAdmin(users), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
	return r
}

func signToken(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateToken(map[string]any{"email": email}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (bool, string) {
	t.Helper()
	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body.Error, body.Message
}

func TestVerifyJWT_MissingHeader(t *testing.T) {
	w := get(newTestRouter(nil), "/protected", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	errFlag, msg := decodeError(t, w)
	if !errFlag || msg != "unauthorized access" {
		t.Errorf("body = %v %q, want error=true message=%q", errFlag, msg, "unauthorized access")
	}
}

func TestVerifyJWT_BadTokens(t *testing.T) {
	r := newTestRouter(nil)

	wrongSecret, err := utils.GenerateToken(map[string]any{"email": "a@b.com"}, "other-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := utils.GenerateToken(map[string]any{"email": "a@b.com"}, testSecret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"garbage token", "Bearer garbage"},
		{"wrong secret", "Bearer " + wrongSecret},
		{"expired", "Bearer " + expired},
		{"no token after scheme", "Bearer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/protected", tt.header)
			if w.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want 403", w.Code)
			}
			errFlag, msg := decodeError(t, w)
			if !errFlag || msg != "unauthorized access" {
				t.Errorf("body = %v %q, want error=true message=%q", errFlag, msg, "unauthorized access")
			}
		})
	}
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	w := get(newTestRouter(nil), "/protected", "Bearer "+signToken(t, "alice@example.com"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Email != "alice@example.com" {
		t.Errorf("decoded email = %q, want alice@example.com", body.Email)
	}
}

func TestVerifyAdmin(t *testing.T) {
	db := openTestDB(t)
	db.Create(&entity.User{Email: "admin@example.com", Role: "admin"})
	db.Create(&entity.User{Email: "user@example.com"})
	r := newTestRouter(db)

	tests := []struct {
		name     string
		email    string
		wantCode int
	}{
		{"admin passes", "admin@example.com", http.StatusOK},
		{"non-admin forbidden", "user@example.com", http.StatusForbidden},
		{"unknown email forbidden", "ghost@example.com", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/admin-only", "Bearer "+signToken(t, tt.email))
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusForbidden {
				errFlag, msg := decodeError(t, w)
				if !errFlag || msg != "forbidden access" {
					t.Errorf("body = %v %q, want error=true message=%q", errFlag, msg, "forbidden access")
				}
			}
		})
	}
}
