package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

type CatalogController struct {
	Catalog  *services.Catalog
	Notifier services.Notifier
}

func NewCatalogController(catalog *services.Catalog, notifier services.Notifier) *CatalogController {
	return &CatalogController{Catalog: catalog, Notifier: notifier}
}

// GetAllProducts -> full list, or filtered by ?search= and ?category=
func (cc *CatalogController) GetAllProducts(c *gin.Context) {
	search := c.Query("search")
	category := c.DefaultQuery("category", services.CategoryAll)

	products := cc.Catalog.Filter(search, category)
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// CreateProduct -> adds a catalog entry. Products are immutable once added.
func (cc *CatalogController) CreateProduct(c *gin.Context) {
	type reqBody struct {
		Name     string  `json:"name" binding:"required"`
		Category string  `json:"category" binding:"required"`
		Price    float64 `json:"price"`
		Unit     string  `json:"unit" binding:"required"`
		Image    string  `json:"image"`
		Stock    float64 `json:"stock"`
		IsFresh  bool    `json:"is_fresh"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be non-negative"))
		return
	}

	product := cc.Catalog.Add(models.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Unit:     req.Unit,
		Image:    req.Image,
		Stock:    req.Stock,
		IsFresh:  req.IsFresh,
	})

	utils.InfoLogger.Printf("Product created (ID=%s) %q", product.ID, product.Name)
	cc.notifyCatalog()
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// CreateMeal -> builds a bundle-priced composite product from component
// snapshots.
func (cc *CatalogController) CreateMeal(c *gin.Context) {
	type reqBody struct {
		Name       string                   `json:"name" binding:"required"`
		Category   string                   `json:"category"`
		Price      float64                  `json:"price"`
		Components []services.MealComponent `json:"components" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	meal, ok := cc.Catalog.BuildMeal(req.Name, req.Category, req.Price, req.Components)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid meal definition"))
		return
	}

	cc.notifyCatalog()
	utils.RespondJSON(c, http.StatusCreated, "Meal created", meal)
}

func (cc *CatalogController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", cc.Catalog.Categories())
}

func (cc *CatalogController) CreateCategory(c *gin.Context) {
	type reqBody struct {
		Name string `json:"name" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Catalog.AddCategory(req.Name)
	cc.notifyCatalog()
	utils.RespondJSON(c, http.StatusCreated, "Category added", cc.Catalog.Categories())
}

func (cc *CatalogController) GetAllUnits(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of units", cc.Catalog.Units())
}

func (cc *CatalogController) CreateUnit(c *gin.Context) {
	type reqBody struct {
		Name string `json:"name" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Catalog.AddUnit(req.Name)
	cc.notifyCatalog()
	utils.RespondJSON(c, http.StatusCreated, "Unit added", cc.Catalog.Units())
}

// DeleteUnit -> removing the reserved weight unit is silently ignored.
func (cc *CatalogController) DeleteUnit(c *gin.Context) {
	cc.Catalog.RemoveUnit(c.Param("unit"))
	cc.notifyCatalog()
	utils.RespondJSON(c, http.StatusOK, "List of units", cc.Catalog.Units())
}

func (cc *CatalogController) notifyCatalog() {
	if cc.Notifier != nil {
		cc.Notifier.Notify(services.EventCatalogUpdate, cc.Catalog.ListAll())
	}
}
