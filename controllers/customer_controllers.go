package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

type CustomerController struct {
	Customers *services.CustomerDirectory
	Notifier  services.Notifier
}

func NewCustomerController(customers *services.CustomerDirectory, notifier services.Notifier) *CustomerController {
	return &CustomerController{Customers: customers, Notifier: notifier}
}

// GetAllCustomers -> full directory, or ?search= substring match on
// name/phone/address.
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	if search := c.Query("search"); search != "" {
		utils.RespondJSON(c, http.StatusOK, "Customer search results", cc.Customers.Search(search))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", cc.Customers.ListAll())
}

// CreateCustomer -> registers a customer with zero loyalty counters.
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	type reqBody struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Address string `json:"address"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := cc.Customers.Add(req.Name, req.Phone, req.Address)
	utils.InfoLogger.Printf("New customer created (ID=%s) %q", customer.ID, customer.Name)

	if cc.Notifier != nil {
		cc.Notifier.Notify(services.EventCustomerUpdate, cc.Customers.ListAll())
	}
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}
