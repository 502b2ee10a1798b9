package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/middleware"
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAdminMiddleware_BlocksRegularUser(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "u_plain", Username: "u_plain", Email: "u_plain@example.com", Role: models.RoleUser})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/admin/badges", nil)
	c.Set("userId", "u_plain")

	middleware.AdminMiddleware()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddleware_AllowsAdmin(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "u_admin", Username: "u_admin", Email: "u_admin@example.com", Role: models.RoleAdmin})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/admin/badges", nil)
	c.Set("userId", "u_admin")

	middleware.AdminMiddleware()(c)

	assert.False(t, c.IsAborted())
}

func TestUpsertBadge_CreatesAndUpdates(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	payload := gin.H{
		"id":        "week-warrior",
		"name":      "Week Warrior",
		"condition": models.BadgeCondStreakDays,
		"threshold": 7,
	}
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/admin/badges", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	UpsertBadge(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var badge models.Badge
	assert.NoError(t, database.DB.First(&badge, "id = ?", "week-warrior").Error)
	assert.Equal(t, 7, badge.Threshold)

	// Same ID again updates in place
	payload["threshold"] = 14
	body, _ = json.Marshal(payload)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/admin/badges", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	UpsertBadge(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, database.DB.First(&badge, "id = ?", "week-warrior").Error)
	assert.Equal(t, 14, badge.Threshold)
}

func TestUpsertBadge_RejectsUnknownCondition(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(gin.H{
		"id":        "bad-badge",
		"name":      "Bad Badge",
		"condition": "lessons_skipped",
		"threshold": 1,
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/admin/badges", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	UpsertBadge(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAllBadges_IncludesSeededDefinitions(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/admin/badges", nil)

	ListAllBadges(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Badges []models.Badge `json:"badges"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.GreaterOrEqual(t, len(response.Badges), 3)
}
