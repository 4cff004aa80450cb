package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stealthycommerce/stealthy/internal/application/order/usecases"
	"github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/utils"
)

type OrderHandler struct {
	addOrdersUC       addOrdersUseCase
	cancelOrderUC     cancelOrderUseCase
	listOrdersUC      listCustomerOrdersUseCase
	getOrderDetailsUC getOrderDetailsUseCase
	logger            logger.Interface
}

func NewOrderHandler(
	addOrdersUC addOrdersUseCase,
	cancelOrderUC cancelOrderUseCase,
	listOrdersUC listCustomerOrdersUseCase,
	getOrderDetailsUC getOrderDetailsUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		addOrdersUC:       addOrdersUC,
		cancelOrderUC:     cancelOrderUC,
		listOrdersUC:      listOrdersUC,
		getOrderDetailsUC: getOrderDetailsUC,
		logger:            logger,
	}
}

// AddOrdersRequest uses camelCase keys to match existing storefront clients.
type AddOrdersRequest struct {
	CustomerID uint   `json:"customerId"`
	OfferIDs   []uint `json:"offerIds"`
}

// AddOrders godoc
// @Summary Place orders
// @Description Creates one order per offer id. Returns the new order ids, or an empty array if nothing was created.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body AddOrdersRequest true "Customer and offers"
// @Success 200 {array} integer "Created order ids"
// @Failure 400 {object} utils.APIResponse "Malformed body"
// @Router /orders [post]
func (h *OrderHandler) AddOrders(c *gin.Context) {
	var req AddOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add orders", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	ids := h.addOrdersUC.Execute(c.Request.Context(), usecases.AddOrdersCommand{
		CustomerID: req.CustomerID,
		OfferIDs:   req.OfferIDs,
	})
	if ids == nil {
		ids = []uint{}
	}

	utils.SentinelResponse(c, ids)
}

// CancelOrder godoc
// @Summary Cancel an order
// @Description Cancels the customer's order and records a prorated refund.
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Param customerId query int true "Customer ID"
// @Success 200 {boolean} boolean "Whether the order was cancelled"
// @Failure 400 {object} utils.APIResponse "Malformed id"
// @Router /cancel-order/{id} [put]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := utils.ParseUintParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	customerID, err := utils.ParseUintQuery(c, "customerId", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cancelled := h.cancelOrderUC.Execute(c.Request.Context(), usecases.CancelOrderCommand{
		CustomerID: customerID,
		OrderID:    orderID,
	})

	utils.SentinelResponse(c, cancelled)
}

// ListCustomerOrders godoc
// @Summary List a customer's orders
// @Tags orders
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /orders/{customerId} [get]
func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	customerID, err := utils.ParseUintParam(c, "customerId", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orders, err := h.listOrdersUC.Execute(c.Request.Context(), customerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", orders)
}

// GetOrderDetails godoc
// @Summary Get one of a customer's orders
// @Tags orders
// @Produce json
// @Param customerId path int true "Customer ID"
// @Param id query int true "Order ID"
// @Success 200 {object} utils.APIResponse{data=dto.OrderDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /order-details/{customerId} [get]
func (h *OrderHandler) GetOrderDetails(c *gin.Context) {
	customerID, err := utils.ParseUintParam(c, "customerId", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	orderID, err := utils.ParseUintQuery(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	order, err := h.getOrderDetailsUC.Execute(c.Request.Context(), usecases.GetOrderDetailsQuery{
		CustomerID: customerID,
		OrderID:    orderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", order)
}
