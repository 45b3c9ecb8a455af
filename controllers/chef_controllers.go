package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

type ChefController struct {
	Chef *services.ChefService
}

func NewChefController(chef *services.ChefService) *ChefController {
	return &ChefController{Chef: chef}
}

// Suggest -> forwards a free-form prompt to the AI chef. Always answers 200:
// upstream failures come back as a displayable fallback message.
func (cc *ChefController) Suggest(c *gin.Context) {
	type reqBody struct {
		Prompt string `json:"prompt" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	suggestion := cc.Chef.Suggest(c.Request.Context(), req.Prompt)
	utils.RespondJSON(c, http.StatusOK, "Chef suggestion", gin.H{"suggestion": suggestion})
}
