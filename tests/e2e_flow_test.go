package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mansoorceksport/fitpro/internal/config"
	"github.com/mansoorceksport/fitpro/internal/planner"
	"github.com/mansoorceksport/fitpro/internal/server"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldenPath(t *testing.T) {
	// 1. Setup Infrastructure
	db, cleanupDB := SetupTestDB(t)
	defer cleanupDB()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	defer redisClient.Close()

	mockAuth := NewMockAuthClient()
	files := NewMemoryFileRepository()

	// Config (Minimal)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-123"
	cfg.JWT.AccessTTL = time.Hour
	cfg.Planner.DefaultWeeklyAvailability = 3
	cfg.Cache.NutritionPlanTTL = time.Hour
	cfg.Cache.DashboardTTL = time.Minute
	cfg.Cache.IdempotencyTTL = time.Minute

	// 2. Initialize App
	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		MongoDB:     db,
		RedisClient: redisClient,
		AuthClient:  mockAuth,
		FileRepo:    files,
		RandSource: func() planner.Rand {
			return rand.New(rand.NewPCG(1, 2))
		},
	})

	// Helper for requests
	request := func(method, path, token string, body interface{}, headers ...string) *http.Response {
		var bodyReader io.Reader
		if body != nil {
			jsonBytes, _ := json.Marshal(body)
			bodyReader = bytes.NewReader(jsonBytes)
		}
		req, _ := http.NewRequest(method, path, bodyReader)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		for i := 0; i+1 < len(headers); i += 2 {
			req.Header.Set(headers[i], headers[i+1])
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}
	decode := func(resp *http.Response, v interface{}) {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}

	// ==========================================
	// STEP 1: Login creates the user
	// ==========================================
	mockAuth.AddMockUser("token_ana", "uid_ana", "ana@fitpro.test", "Ana")

	resp := request("POST", "/v1/auth/login", "token_ana", nil)
	require.Equal(t, 200, resp.StatusCode)

	var loginData map[string]interface{}
	decode(resp, &loginData)
	token := loginData["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, true, loginData["is_new_user"])
	assert.Equal(t, false, loginData["onboarded"])

	resp = request("POST", "/v1/auth/login", "token_ana", nil)
	decode(resp, &loginData)
	assert.Equal(t, false, loginData["is_new_user"])

	resp = request("GET", "/v1/me/nutrition", "", nil)
	assert.Equal(t, 401, resp.StatusCode)

	fmt.Println("✓ User logged in")

	// ==========================================
	// STEP 2: Onboarding
	// ==========================================
	resp = request("GET", "/v1/me/nutrition", token, nil)
	assert.Equal(t, 400, resp.StatusCode)

	resp = request("PUT", "/v1/me/profile", token, map[string]interface{}{
		"goal": "maintenance", "weekly_availability": 3, "weight_kg": 80, "height_cm": 180,
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp = request("PUT", "/v1/me/profile", token, map[string]interface{}{
		"goal": "cutting", "weekly_availability": 3, "weight_kg": 80, "height_cm": 180,
	})
	require.Equal(t, 200, resp.StatusCode)

	fmt.Println("✓ Profile completed")

	// ==========================================
	// STEP 3: Nutrition plan
	// ==========================================
	var plan struct {
		BMR float64 `json:"bmr"`
		Daily struct {
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein"`
			Fats     float64 `json:"fats"`
			Carbs    float64 `json:"carbs"`
		} `json:"daily"`
		Meals []struct {
			Name string `json:"name"`
			Foods []struct {
				Name string `json:"name"`
			} `json:"foods"`
		} `json:"meals"`
	}
	resp = request("GET", "/v1/me/nutrition", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	decode(resp, &plan)
	assert.Equal(t, 1805.0, plan.BMR)
	assert.Equal(t, 2298.0, plan.Daily.Calories)
	assert.Equal(t, 176.0, plan.Daily.Protein)
	assert.Equal(t, 64.0, plan.Daily.Fats)
	assert.Equal(t, 255.0, plan.Daily.Carbs)
	require.Len(t, plan.Meals, 5)

	resp = request("PUT", "/v1/me/nutrition/preferences", token, map[string]interface{}{
		"foods": []string{"Tuna", "Oatmeal", "Walnuts"},
	})
	require.Equal(t, 200, resp.StatusCode)
	decode(resp, &plan)
	for _, meal := range plan.Meals {
		assert.Equal(t, "Tuna", meal.Foods[0].Name)
		assert.Equal(t, "Oatmeal", meal.Foods[1].Name)
		assert.Equal(t, "Walnuts", meal.Foods[2].Name)
	}

	resp = request("PUT", "/v1/me/nutrition/preferences", token, map[string]interface{}{
		"foods": []string{"Pizza"},
	})
	assert.Equal(t, 400, resp.StatusCode)

	fmt.Println("✓ Nutrition plan generated")

	// ==========================================
	// STEP 4: Workout split and training plan
	// ==========================================
	var split struct {
		Days []struct {
			Name string `json:"name"`
		} `json:"days"`
	}
	resp = request("GET", "/v1/me/workout-plan", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	decode(resp, &split)
	require.Len(t, split.Days, 3)
	assert.Equal(t, "Push", split.Days[0].Name)

	var trainingPlan map[string]interface{}
	resp = request("GET", "/v1/me/training-plan", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	decode(resp, &trainingPlan)
	assert.Equal(t, "pushPullLegs", trainingPlan["id"])

	var plans []map[string]interface{}
	resp = request("GET", "/v1/training-plans", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	decode(resp, &plans)
	assert.Len(t, plans, 5)

	fmt.Println("✓ Training plan resolved")

	// ==========================================
	// STEP 5: Log sessions
	// ==========================================
	session := func(date string, bench float64) map[string]interface{} {
		return map[string]interface{}{
			"date":    date,
			"plan_id": "pushPullLegs",
			"day_id":  "push",
			"exercises": []map[string]interface{}{
				{"name": "Supino com Barra", "sets": []map[string]interface{}{
					{"weight": bench - 10, "reps": 10, "rir": 3},
					{"weight": bench, "reps": 8, "rir": 1},
				}},
			},
		}
	}

	var logged struct {
		Outcome struct {
			ExperienceGain int      `json:"experience_gain"`
			NewPBs         []string `json:"new_pbs"`
		} `json:"outcome"`
	}
	resp = request("POST", "/v1/me/progress", token, session("2026-07-01", 90), "X-Correlation-ID", "log-1")
	require.Equal(t, 201, resp.StatusCode)
	decode(resp, &logged)
	assert.Equal(t, 150, logged.Outcome.ExperienceGain)
	assert.Equal(t, []string{"bench_press"}, logged.Outcome.NewPBs)

	// A retried submission is replayed, not scored again
	resp = request("POST", "/v1/me/progress", token, session("2026-07-01", 90), "X-Correlation-ID", "log-1")
	require.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("X-Idempotent-Replay"))

	resp = request("POST", "/v1/me/progress", token, session("2026-07-03", 95))
	require.Equal(t, 201, resp.StatusCode)
	decode(resp, &logged)
	assert.Equal(t, 150, logged.Outcome.ExperienceGain)

	resp = request("POST", "/v1/me/progress", token, session("2026-07-05", -5))
	assert.Equal(t, 400, resp.StatusCode)

	bad := session("2026-07-05", 100)
	bad["day_id"] = "arms"
	resp = request("POST", "/v1/me/progress", token, bad)
	assert.Equal(t, 404, resp.StatusCode)

	fmt.Println("✓ Sessions logged")

	// ==========================================
	// STEP 6: Stats, history and dashboard
	// ==========================================
	var stats struct {
		Stats struct {
			Experience        int `json:"experience"`
			WorkoutsCompleted int `json:"workouts_completed"`
			PersonalBests     struct {
				BenchPress float64 `json:"bench_press"`
			} `json:"personal_bests"`
		} `json:"stats"`
		LevelProgress struct {
			Level int `json:"level"`
		} `json:"level_progress"`
	}
	resp = request("GET", "/v1/me/stats", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	decode(resp, &stats)
	assert.Equal(t, 300, stats.Stats.Experience)
	assert.Equal(t, 2, stats.Stats.WorkoutsCompleted)
	assert.Equal(t, 95.0, stats.Stats.PersonalBests.BenchPress)
	assert.Equal(t, 2, stats.LevelProgress.Level)

	var history []map[string]interface{}
	resp = request("GET", "/v1/me/progress?limit=1", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	decode(resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "2026-07-03", history[0]["date"])

	resp = request("GET", "/v1/me/progress/2026-07-02", token, nil)
	assert.Equal(t, 404, resp.StatusCode)

	var dashboard map[string]interface{}
	resp = request("GET", "/v1/me/dashboard", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	decode(resp, &dashboard)
	assert.Len(t, dashboard["recent_sessions"], 2)
	assert.Len(t, dashboard["achievements"], 3)

	fmt.Println("✓ Dashboard loaded")

	// ==========================================
	// STEP 7: Export
	// ==========================================
	var export map[string]string
	resp = request("POST", "/v1/me/progress/export", token, nil)
	require.Equal(t, 201, resp.StatusCode)
	decode(resp, &export)
	require.Contains(t, files.Objects, export["key"])
	assert.Equal(t, "memory://exports/"+export["key"], export["url"])

	fmt.Println("✓ Progress exported")
}
