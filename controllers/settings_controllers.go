package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// GetAPIKey -> reports whether a credential is stored; the value itself is
// masked down to its tail.
func (sc *SettingsController) GetAPIKey(c *gin.Context) {
	value, err := sc.Settings.Get(services.SettingAPIKey)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	masked := ""
	if len(value) > 4 {
		masked = strings.Repeat("*", len(value)-4) + value[len(value)-4:]
	} else if value != "" {
		masked = strings.Repeat("*", len(value))
	}

	utils.RespondJSON(c, http.StatusOK, "API key", gin.H{
		"configured": value != "",
		"api_key":    masked,
	})
}

// SaveAPIKey -> persists the credential, the only durable value in the
// system.
func (sc *SettingsController) SaveAPIKey(c *gin.Context) {
	type reqBody struct {
		APIKey string `json:"api_key" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.Settings.Set(services.SettingAPIKey, req.APIKey); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Println("API key saved")
	utils.RespondJSON(c, http.StatusOK, "API key saved", nil)
}
