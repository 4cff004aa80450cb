package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stealthycommerce/stealthy/internal/application/customer/usecases"
	"github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/utils"
)

type CustomerHandler struct {
	createCustomerUC createCustomerUseCase
	getCustomerUC    getCustomerUseCase
	logger           logger.Interface
}

func NewCustomerHandler(
	createCustomerUC createCustomerUseCase,
	getCustomerUC getCustomerUseCase,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createCustomerUC: createCustomerUC,
		getCustomerUC:    getCustomerUC,
		logger:           logger,
	}
}

type CreateCustomerRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// CreateCustomer godoc
// @Summary Register customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CreateCustomerRequest true "Customer data"
// @Success 201 {object} utils.APIResponse{data=dto.CustomerDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse "Email already registered"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCustomerUC.Execute(c.Request.Context(), usecases.CreateCustomerCommand{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer created successfully")
}

// GetCustomer godoc
// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} utils.APIResponse{data=dto.CustomerDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCustomerUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
