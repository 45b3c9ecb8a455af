package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

type SalesController struct {
	Ledger *services.SalesLedger
}

func NewSalesController(ledger *services.SalesLedger) *SalesController {
	return &SalesController{Ledger: ledger}
}

// GetAllSales -> completed checkouts, most recent first.
func (sc *SalesController) GetAllSales(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Sales history", sc.Ledger.List())
}

func (sc *SalesController) GetSummary(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Sales summary", sc.Ledger.Summary())
}
