package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitlog/backend/config"
	"github.com/pageza/fitlog/backend/internal/clock"
	"github.com/pageza/fitlog/backend/internal/database"
	"github.com/pageza/fitlog/backend/internal/models"
	"github.com/pageza/fitlog/backend/internal/seed"
	"github.com/pageza/fitlog/backend/internal/server"
	"github.com/pageza/fitlog/backend/internal/testhelpers"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupStack(t *testing.T, now time.Time, authLimit int) (http.Handler, *database.DB) {
	gin.SetMode(gin.TestMode)
	db := database.Wrap(testhelpers.SetupPostgresDB(t))
	rdb := testhelpers.SetupRedis(t)

	cfg := &config.Config{
		JWTSecret:      "integration-secret",
		JWTTTL:         time.Hour,
		AllowedOrigins: []string{"http://localhost:3000"},
		AuthRateLimit:  authLimit,
	}
	srv := server.New(cfg, server.Deps{DB: db, Redis: rdb, Clock: clock.Fixed{T: now}})
	return srv.Handler(), db
}

func call(t *testing.T, h http.Handler, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode %s %s response: %v", method, path, err)
	}
	return w.Code, env
}

func login(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	code, env := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": seed.Password,
	})
	if code != http.StatusOK {
		t.Fatalf("login failed: %d %s", code, env.Message)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &resp); err != nil || resp.Token == "" {
		t.Fatalf("no token from login: %v", err)
	}
	return resp.Token
}

func TestIntegrationSeededStats(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	h, db := setupStack(t, now, 50)

	if _, err := seed.Run(context.Background(), db.DB, now, time.UTC); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	token := login(t, h, "john@example.com")

	code, env := call(t, h, http.MethodGet, "/api/workouts/stats?period=7", token, nil)
	if code != http.StatusOK {
		t.Fatalf("workout stats failed: %d", code)
	}
	var workouts struct {
		Summary struct {
			TotalWorkouts int     `json:"totalWorkouts"`
			TotalDuration int     `json:"totalDuration"`
			TotalCalories float64 `json:"totalCalories"`
			AvgCalories   float64 `json:"avgCalories"`
		} `json:"summary"`
		ByType []struct {
			Type  string `json:"type"`
			Count int    `json:"count"`
		} `json:"byType"`
	}
	if err := json.Unmarshal(env.Data, &workouts); err != nil {
		t.Fatalf("failed to decode workout stats: %v", err)
	}
	if workouts.Summary.TotalWorkouts != 5 || workouts.Summary.TotalDuration != 200 ||
		workouts.Summary.TotalCalories != 1300 || workouts.Summary.AvgCalories != 260 {
		t.Fatalf("unexpected workout summary: %+v", workouts.Summary)
	}
	if len(workouts.ByType) != 5 {
		t.Fatalf("expected 5 workout types, got %d", len(workouts.ByType))
	}

	code, env = call(t, h, http.MethodGet, "/api/workouts/stats?period=3", token, nil)
	if code != http.StatusOK {
		t.Fatalf("workout stats failed: %d", code)
	}
	if err := json.Unmarshal(env.Data, &workouts); err != nil {
		t.Fatalf("failed to decode workout stats: %v", err)
	}
	if workouts.Summary.TotalWorkouts != 3 {
		t.Fatalf("expected 3 workouts in 3 days, got %d", workouts.Summary.TotalWorkouts)
	}

	code, env = call(t, h, http.MethodGet, "/api/nutrition/stats", token, nil)
	if code != http.StatusOK {
		t.Fatalf("nutrition stats failed: %d", code)
	}
	var nutrition struct {
		Summary struct {
			TotalCalories float64 `json:"totalCalories"`
			AvgCalories   float64 `json:"avgCalories"`
		} `json:"summary"`
		ByMeal []struct {
			MealType string `json:"mealType"`
			Count    int    `json:"count"`
		} `json:"byMeal"`
	}
	if err := json.Unmarshal(env.Data, &nutrition); err != nil {
		t.Fatalf("failed to decode nutrition stats: %v", err)
	}
	if nutrition.Summary.TotalCalories != 1225 || nutrition.Summary.AvgCalories != 245 {
		t.Fatalf("unexpected nutrition summary: %+v", nutrition.Summary)
	}
	if len(nutrition.ByMeal) != 4 || nutrition.ByMeal[0].MealType != "snack" || nutrition.ByMeal[0].Count != 2 {
		t.Fatalf("unexpected meal breakdown: %+v", nutrition.ByMeal)
	}

	code, env = call(t, h, http.MethodGet, "/api/water/stats", token, nil)
	if code != http.StatusOK {
		t.Fatalf("water stats failed: %d", code)
	}
	var water struct {
		Summary struct {
			TotalGlasses int     `json:"totalGlasses"`
			AvgGlasses   float64 `json:"avgGlasses"`
			DaysTracked  int     `json:"daysTracked"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(env.Data, &water); err != nil {
		t.Fatalf("failed to decode water stats: %v", err)
	}
	if water.Summary.TotalGlasses != 35 || water.Summary.AvgGlasses != 7 || water.Summary.DaysTracked != 5 {
		t.Fatalf("unexpected water summary: %+v", water.Summary)
	}
}

func TestIntegrationConcurrentWaterLogs(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	h, db := setupStack(t, now, 50)
	if _, err := seed.Run(context.Background(), db.DB, now, time.UTC); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	token := login(t, h, "jane@example.com")

	const writers = 8
	var wg sync.WaitGroup
	codes := make(chan int, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(glasses int) {
			defer wg.Done()
			body, _ := json.Marshal(map[string]interface{}{"glasses": glasses, "amount": glasses * 250})
			req := httptest.NewRequest(http.MethodPost, "/api/water", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			codes <- w.Code
		}(i + 1)
	}
	wg.Wait()
	close(codes)

	created := 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusOK:
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one create, got %d", created)
	}

	var count int64
	start := clock.StartOfDay(now, time.UTC)
	if err := db.Model(&models.WaterIntake{}).Where("date = ?", start).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one water day for today, got %d", count)
	}
}

func TestIntegrationAuthRateLimit(t *testing.T) {
	now := time.Now().UTC()
	h, _ := setupStack(t, now, 3)

	limited := false
	for i := 0; i < 10 && !limited; i++ {
		code, _ := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "nobody@example.com", "password": "wrong-password",
		})
		switch code {
		case http.StatusTooManyRequests:
			limited = true
		case http.StatusUnauthorized:
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}
	if !limited {
		t.Fatalf("expected auth endpoints to be rate limited")
	}
}
