package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mohamedabdelbaset2026-cyber/POS/controllers"
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

func setupChefRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		panic(err)
	}

	chef := services.NewChefService(services.NewSettingsService(db))

	router := gin.Default()
	chefCtrl := controllers.NewChefController(chef)
	router.POST("/chef/suggest", chefCtrl.Suggest)
	return router
}

func TestSuggestWithoutKeyStillAnswers200(t *testing.T) {
	utils.InitLogger()
	router := setupChefRouter()

	body, _ := json.Marshal(map[string]string{"prompt": "I bought salmon and shrimp"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/chef/suggest", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Suggestion string `json:"suggestion"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.Suggestion, "settings page")
}

func TestSuggestRequiresPrompt(t *testing.T) {
	utils.InitLogger()
	router := setupChefRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/chef/suggest", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
