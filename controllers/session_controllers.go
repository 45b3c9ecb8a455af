package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

// SessionController forwards user intents into the order session manager.
// The session's silent no-op semantics are preserved here: requests that
// target unknown ids or carry non-positive quantities leave the state
// unchanged and still answer 200 with the current snapshot; only
// structurally invalid requests are rejected.
type SessionController struct {
	Session   *services.OrderSession
	Catalog   *services.Catalog
	Customers *services.CustomerDirectory
}

func NewSessionController(session *services.OrderSession, catalog *services.Catalog, customers *services.CustomerDirectory) *SessionController {
	return &SessionController{Session: session, Catalog: catalog, Customers: customers}
}

func (sc *SessionController) GetSession(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Session state", sc.Session.Snapshot())
}

func (sc *SessionController) CreateOrder(c *gin.Context) {
	order := sc.Session.CreateOrder()
	utils.InfoLogger.Printf("Order created (ID=%s) %q", order.ID, order.Label)
	utils.RespondJSON(c, http.StatusCreated, "Order created", sc.Session.Snapshot())
}

func (sc *SessionController) CloseOrder(c *gin.Context) {
	sc.Session.CloseOrder(c.Param("order_id"))
	utils.RespondJSON(c, http.StatusOK, "Order closed", sc.Session.Snapshot())
}

func (sc *SessionController) ActivateOrder(c *gin.Context) {
	sc.Session.SetActive(c.Param("order_id"))
	utils.RespondJSON(c, http.StatusOK, "Active order set", sc.Session.Snapshot())
}

// AddItem -> snapshots a catalog product into the active cart. Quantity is
// in grams for weighed products, discrete count otherwise.
func (sc *SessionController) AddItem(c *gin.Context) {
	type reqBody struct {
		ProductID string  `json:"product_id" binding:"required"`
		Quantity  float64 `json:"quantity"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, ok := sc.Catalog.Get(req.ProductID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	if _, added := sc.Session.AddItem(product, req.Quantity); !added {
		utils.RespondJSON(c, http.StatusOK, "Quantity must be positive, item ignored", sc.Session.Snapshot())
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added", sc.Session.Snapshot())
}

func (sc *SessionController) RemoveItem(c *gin.Context) {
	sc.Session.RemoveItem(c.Param("cart_id"))
	utils.RespondJSON(c, http.StatusOK, "Item removed", sc.Session.Snapshot())
}

// AssignCustomer -> empty customer_id clears the assignment (walk-in).
func (sc *SessionController) AssignCustomer(c *gin.Context) {
	type reqBody struct {
		CustomerID string `json:"customer_id"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CustomerID == "" {
		sc.Session.AssignCustomer(nil)
		utils.RespondJSON(c, http.StatusOK, "Customer cleared", sc.Session.Snapshot())
		return
	}

	customer, ok := sc.Customers.Get(req.CustomerID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	sc.Session.AssignCustomer(&customer)
	utils.RespondJSON(c, http.StatusOK, "Customer assigned", sc.Session.Snapshot())
}

func (sc *SessionController) SetOrderType(c *gin.Context) {
	type reqBody struct {
		Type models.OrderType `json:"type" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !req.Type.Valid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order type"))
		return
	}

	sc.Session.SetOrderType(req.Type)
	utils.RespondJSON(c, http.StatusOK, "Order type set", sc.Session.Snapshot())
}

func (sc *SessionController) SetTable(c *gin.Context) {
	type reqBody struct {
		TableNum string `json:"table_num" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sc.Session.SetTableNum(req.TableNum)
	utils.RespondJSON(c, http.StatusOK, "Table set", sc.Session.Snapshot())
}

// SetCustomerSearch -> tracks the in-progress customer search text; the
// session clears it on order creation and customer assignment.
func (sc *SessionController) SetCustomerSearch(c *gin.Context) {
	type reqBody struct {
		Text string `json:"text"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sc.Session.SetCustomerSearch(req.Text)
	utils.RespondJSON(c, http.StatusOK, "Customer search updated", sc.Session.Snapshot())
}

// Checkout -> finalizes the active order into a sale. The cart must be
// non-empty; the UI disables the action but the session also refuses.
func (sc *SessionController) Checkout(c *gin.Context) {
	type reqBody struct {
		PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !req.PaymentMethod.Valid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid payment method"))
		return
	}

	sale, ok := sc.Session.Checkout(req.PaymentMethod)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	utils.InfoLogger.Printf("Sale recorded (ID=%s) total %s", sale.ID, utils.FormatCurrency(sale.Total))
	utils.RespondJSON(c, http.StatusOK,
		fmt.Sprintf("Sale recorded, total %s", utils.FormatCurrency(sale.Total)), sale)
}
