package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/middleware"
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/internal/services"
	"github.com/pcrims/finpath-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestGetTrack_AnonymousIsCacheable(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedHandlerCatalog("anon")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/content/tracks/t_anon", nil)
	c.Params = []gin.Param{{Key: "trackId", Value: "t_anon"}}

	GetTrack(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))

	var response map[string]json.RawMessage
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response, "track")
	assert.NotContains(t, response, "completedLessons")
}

func TestGetTrack_SignedInGetsCompletionFlags(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "u_cat", Username: "u_cat", Email: "u_cat@example.com"})
	seedHandlerCatalog("cat")

	_, err := services.RecordAnswer(database.DB, "u_cat", "t_cat", "c_cat", "l_cat", 0, 0)
	assert.NoError(t, err)
	_, err = services.CompleteLesson(database.DB, "u_cat", "t_cat", "c_cat", "l_cat", time.Now())
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/content/tracks/t_cat", nil)
	c.Params = []gin.Param{{Key: "trackId", Value: "t_cat"}}
	c.Set("userId", "u_cat")

	GetTrack(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "private, no-store", w.Header().Get("Cache-Control"))

	var response struct {
		CompletedLessons []string `json:"completedLessons"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, []string{"l_cat"}, response.CompletedLessons)
}

func TestGetLesson_SignedInGetsCompleteFlag(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "u_lfl", Username: "u_lfl", Email: "u_lfl@example.com"})
	seedHandlerCatalog("lfl")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/content/tracks/t_lfl/chapters/c_lfl/lessons/l_lfl", nil)
	c.Params = lessonParams("lfl")
	c.Set("userId", "u_lfl")

	GetLesson(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Complete *bool `json:"complete"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotNil(t, response.Complete)
	assert.False(t, *response.Complete)
}

func TestOptionalAuth_ValidTokenSetsUser(t *testing.T) {
	setupAuthTest()

	database.DB.Create(&models.User{ID: "u_opt", Username: "u_opt", Email: "u_opt@example.com"})
	token, err := utils.GenerateToken("u_opt")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/content/tracks", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	middleware.OptionalAuthMiddleware()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, "u_opt", c.GetString("userId"))
}

func TestOptionalAuth_GarbageTokenStaysAnonymous(t *testing.T) {
	setupAuthTest()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/content/tracks", nil)
	c.Request.Header.Set("Authorization", "Bearer not-a-token")

	middleware.OptionalAuthMiddleware()(c)

	assert.False(t, c.IsAborted())
	assert.Empty(t, c.GetString("userId"))
	assert.Equal(t, http.StatusOK, w.Code)
}
