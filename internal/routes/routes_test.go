package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/miyabidining/table-reservation-api/internal/config"
	"github.com/miyabidining/table-reservation-api/internal/models"
	"github.com/miyabidining/table-reservation-api/internal/timezone"
)

const (
	testChannelID     = "2008319642"
	testChannelSecret = "channel-secret-for-tests"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		StorePath:     filepath.Join(t.TempDir(), "reservations.json"),
		ChannelID:     testChannelID,
		ChannelSecret: testChannelSecret,
		Timezone:      "Asia/Tokyo",
		ServerPort:    "8080",
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "audit.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r
}

func idToken(t *testing.T, userID, name string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"iss":  "https://access.line.me",
		"sub":  userID,
		"aud":  testChannelID,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
		"name": name,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testChannelSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tomorrow() string {
	return timezone.NowIn("Asia/Tokyo").AddDate(0, 0, 1).Format("2006-01-02")
}

func TestRoutes_RequireToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/me", "/api/slots", "/api/me/reservations"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", path, w.Code)
		}
	}
}

func TestRoutes_Me(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/me", idToken(t, "U1", "Tanaka"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		User struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.ID != "U1" || resp.User.Name != "Tanaka" {
		t.Fatalf("profile = %+v", resp.User)
	}
}

func TestRoutes_SlotOptions(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/slots", idToken(t, "U1", "Tanaka"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		MinDate string   `json:"min_date"`
		MaxDate string   `json:"max_date"`
		Times   []string `json:"times"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Times) != 22 {
		t.Fatalf("len(times) = %d, want 22", len(resp.Times))
	}
	if resp.MinDate == "" || resp.MaxDate <= resp.MinDate {
		t.Fatalf("window = [%s, %s]", resp.MinDate, resp.MaxDate)
	}
}

func TestRoutes_ReservationLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := idToken(t, "U1", "Tanaka")

	// create
	w := doJSON(t, r, http.MethodPost, "/api/me/reservations", token, gin.H{
		"date":   tomorrow(),
		"time":   "18:30",
		"guests": 2,
		"name":   "Tanaka",
		"phone":  "090-0000-0000",
		"notes":  "window seat",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	var created struct {
		Reservation  models.Reservation `json:"reservation"`
		ShareMessage string             `json:"share_message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Reservation.ID == "" {
		t.Fatalf("missing id: %s", w.Body.String())
	}
	if created.ShareMessage == "" {
		t.Fatalf("missing share message")
	}

	// list shows it, upcoming
	w = doJSON(t, r, http.MethodGet, "/api/me/reservations", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	var listed struct {
		Data []struct {
			ID     string `json:"id"`
			IsPast bool   `json:"is_past"`
		} `json:"data"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if listed.Total != 1 || listed.Data[0].ID != created.Reservation.ID {
		t.Fatalf("list = %s", w.Body.String())
	}
	if listed.Data[0].IsPast {
		t.Fatalf("tomorrow's reservation flagged past")
	}

	// another user sees nothing
	w = doJSON(t, r, http.MethodGet, "/api/me/reservations", idToken(t, "U2", "Suzuki"), nil)
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if listed.Total != 0 {
		t.Fatalf("other user list = %s", w.Body.String())
	}

	// cancel
	w = doJSON(t, r, http.MethodDelete, "/api/me/reservations/"+created.Reservation.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status = %d, body = %s", w.Code, w.Body.String())
	}

	// cancel again is not found
	w = doJSON(t, r, http.MethodDelete, "/api/me/reservations/"+created.Reservation.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second cancel status = %d, want 404", w.Code)
	}

	// gone from the list
	w = doJSON(t, r, http.MethodGet, "/api/me/reservations", token, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if listed.Total != 0 {
		t.Fatalf("list after cancel = %s", w.Body.String())
	}
}

func TestRoutes_CreateRejectsOutOfWindowDate(t *testing.T) {
	r := newTestRouter(t)
	token := idToken(t, "U1", "Tanaka")

	farFuture := timezone.NowIn("Asia/Tokyo").AddDate(0, 0, 120).Format("2006-01-02")

	w := doJSON(t, r, http.MethodPost, "/api/me/reservations", token, gin.H{
		"date":   farFuture,
		"time":   "18:30",
		"guests": 2,
		"name":   "Tanaka",
		"phone":  "090-0000-0000",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "validation_failed" {
		t.Fatalf("error_code = %q, want validation_failed", resp.Code)
	}
}

func TestRoutes_AuditTrail(t *testing.T) {
	r := newTestRouter(t)
	token := idToken(t, "U1", "Tanaka")

	w := doJSON(t, r, http.MethodPost, "/api/me/reservations", token, gin.H{
		"date":   tomorrow(),
		"time":   "12:00",
		"guests": 3,
		"name":   "Tanaka",
		"phone":  "090-0000-0000",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	// the dispatcher writes from a worker goroutine
	deadline := time.Now().Add(2 * time.Second)
	for {
		w = doJSON(t, r, http.MethodGet, "/api/me/audit-logs", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("audit status = %d", w.Code)
		}

		var resp struct {
			Total int `json:"total"`
			Logs  []struct {
				Action string `json:"action"`
			} `json:"logs"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if resp.Total >= 1 {
			if resp.Logs[0].Action != "reservation_created" {
				t.Fatalf("action = %q", resp.Logs[0].Action)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("audit entry never appeared: %s", w.Body.String())
		}
		time.Sleep(20 * time.Millisecond)
	}
}
