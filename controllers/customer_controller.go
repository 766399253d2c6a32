package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/services"
	"hotel-admin/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

type createCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address"`
	State       string `json:"state"`
}

// updateCustomerRequest is a partial update; omitted fields stay untouched.
type updateCustomerRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Address     *string `json:"address"`
	State       *string `json:"state"`
}

func (r updateCustomerRequest) patch() services.CustomerPatch {
	return services.CustomerPatch{
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		State:       r.State,
	}
}

// GetCustomers (GET /api/customers?search=&state=)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	var filter services.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	customers, err := ctrl.CustomerSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "customers", err)
		return
	}

	visible := services.FilterCustomers(customers, filter)
	utils.JSONSuccess(c, http.StatusOK, newListPayload(visible, len(customers), filter.Active()))
}

// GetCustomerStats (GET /api/customers/stats)
func (ctrl *CustomerController) GetCustomerStats(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "customers", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.CustomerStatsOf(customers))
}

func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	customer, err := ctrl.CustomerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "customer", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer := models.Customer{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		State:       req.State,
	}
	if err := ctrl.CustomerSvc.Create(c.Request.Context(), &customer); err != nil {
		respondServiceError(c, "customer", err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, customer)
}

// UpdateCustomer (PUT|PATCH /api/customers/:id)
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload updateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := ctrl.CustomerSvc.Update(c.Request.Context(), id, payload.patch())
	if err != nil {
		respondServiceError(c, "customer", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// DeleteCustomer (DELETE /api/customers/:id)
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.CustomerSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, "customer", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
