package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/config"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func setupAuthTest() {
	SetupTestDB()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func postJSON(handler gin.HandlerFunc, path string, payload gin.H) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", path, bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestRegister_CreatesUserAndGameState(t *testing.T) {
	setupAuthTest()

	w := postJSON(Register, "/api/auth/register", gin.H{
		"name":     "Reg User",
		"email":    "reg@example.com",
		"username": "reg_user",
		"password": "Sup3rSecret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "reg_user", response.User.Username)
	assert.Empty(t, response.User.Password)

	// Registration materializes the default game state row
	var state models.GameState
	err := database.DB.First(&state, "user_id = ?", response.User.ID).Error
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Streak)
	assert.Equal(t, 5, state.Weekly.Target)
}

func TestRegister_RejectsWeakPassword(t *testing.T) {
	setupAuthTest()

	w := postJSON(Register, "/api/auth/register", gin.H{
		"name":     "Weak",
		"email":    "weak@example.com",
		"username": "weak_user",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	setupAuthTest()

	payload := gin.H{
		"name":     "Dup",
		"email":    "dup@example.com",
		"username": "dup_user",
		"password": "Sup3rSecret",
	}
	w := postJSON(Register, "/api/auth/register", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	payload["username"] = "dup_user_2"
	w = postJSON(Register, "/api/auth/register", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_RoundTrip(t *testing.T) {
	setupAuthTest()

	w := postJSON(Register, "/api/auth/register", gin.H{
		"name":     "Login User",
		"email":    "login@example.com",
		"username": "login_user",
		"password": "Sup3rSecret",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(Login, "/api/auth/login", gin.H{
		"email":    "login@example.com",
		"password": "Sup3rSecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(Login, "/api/auth/login", gin.H{
		"email":    "login@example.com",
		"password": "WrongPass1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
