package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mohamedabdelbaset2026-cyber/POS/controllers"
	"github.com/mohamedabdelbaset2026-cyber/POS/events"
	"github.com/mohamedabdelbaset2026-cyber/POS/middlewares"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
)

// Deps collects everything the HTTP layer forwards into.
type Deps struct {
	Catalog   *services.Catalog
	Customers *services.CustomerDirectory
	Session   *services.OrderSession
	Ledger    *services.SalesLedger
	Settings  *services.SettingsService
	Chef      *services.ChefService
	Hub       *events.Hub
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	catalogCtrl := controllers.NewCatalogController(deps.Catalog, deps.Hub)
	customerCtrl := controllers.NewCustomerController(deps.Customers, deps.Hub)
	sessionCtrl := controllers.NewSessionController(deps.Session, deps.Catalog, deps.Customers)
	salesCtrl := controllers.NewSalesController(deps.Ledger)
	settingsCtrl := controllers.NewSettingsController(deps.Settings)
	chefCtrl := controllers.NewChefController(deps.Chef)
	eventsCtrl := controllers.NewEventsController(deps.Hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// CATALOG
	r.GET("/products", catalogCtrl.GetAllProducts)
	r.POST("/products", catalogCtrl.CreateProduct)
	r.POST("/products/meal", catalogCtrl.CreateMeal)
	r.GET("/categories", catalogCtrl.GetAllCategories)
	r.POST("/categories", catalogCtrl.CreateCategory)
	r.GET("/units", catalogCtrl.GetAllUnits)
	r.POST("/units", catalogCtrl.CreateUnit)
	r.DELETE("/units/:unit", catalogCtrl.DeleteUnit)

	// CUSTOMERS
	r.GET("/customers", customerCtrl.GetAllCustomers)
	r.POST("/customers", customerCtrl.CreateCustomer)

	// ORDER SESSION
	r.GET("/session", sessionCtrl.GetSession)
	r.POST("/session/orders", sessionCtrl.CreateOrder)
	r.DELETE("/session/orders/:order_id", sessionCtrl.CloseOrder)
	r.POST("/session/orders/:order_id/activate", sessionCtrl.ActivateOrder)
	r.POST("/session/items", sessionCtrl.AddItem)
	r.DELETE("/session/items/:cart_id", sessionCtrl.RemoveItem)
	r.POST("/session/customer", sessionCtrl.AssignCustomer)
	r.POST("/session/customer-search", sessionCtrl.SetCustomerSearch)
	r.POST("/session/order-type", sessionCtrl.SetOrderType)
	r.POST("/session/table", sessionCtrl.SetTable)
	r.POST("/session/checkout", sessionCtrl.Checkout)

	// SALES
	r.GET("/sales", salesCtrl.GetAllSales)
	r.GET("/sales/summary", salesCtrl.GetSummary)

	// SETTINGS
	r.GET("/settings/api-key", settingsCtrl.GetAPIKey)
	r.PUT("/settings/api-key", settingsCtrl.SaveAPIKey)

	// AI CHEF (upstream service is metered, keep a strict limit)
	chef := r.Group("/chef")
	chef.Use(middlewares.NewStrictRateLimiter())
	{
		chef.POST("/suggest", chefCtrl.Suggest)
	}

	// Change-notification WebSocket
	r.GET("/ws", eventsCtrl.Subscribe)

	return r
}
