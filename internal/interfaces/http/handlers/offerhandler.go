package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/usecases"
	"github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/utils"
)

type OfferHandler struct {
	createOfferUC createOfferUseCase
	updateOfferUC updateOfferUseCase
	deleteOfferUC deleteOfferUseCase
	getOfferUC    getOfferUseCase
	listOffersUC  listOffersUseCase
	logger        logger.Interface
}

func NewOfferHandler(
	createOfferUC createOfferUseCase,
	updateOfferUC updateOfferUseCase,
	deleteOfferUC deleteOfferUseCase,
	getOfferUC getOfferUseCase,
	listOffersUC listOffersUseCase,
	logger logger.Interface,
) *OfferHandler {
	return &OfferHandler{
		createOfferUC: createOfferUC,
		updateOfferUC: updateOfferUC,
		deleteOfferUC: deleteOfferUC,
		getOfferUC:    getOfferUC,
		listOffersUC:  listOffersUC,
		logger:        logger,
	}
}

// OfferRequest is the body of offer create and update. Price accepts a JSON
// number or a decimal string.
type OfferRequest struct {
	ProductID     uint            `json:"product_id"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
	NumberOfTerms *int            `json:"number_of_terms"`
	Active        *bool           `json:"active"`
}

func (r OfferRequest) active() bool {
	return r.Active == nil || *r.Active
}

// CreateOffer godoc
// @Summary Create offer
// @Tags offers
// @Accept json
// @Produce json
// @Param request body OfferRequest true "Offer data"
// @Success 200 {integer} integer "New offer id, or -1 on failure"
// @Failure 400 {object} utils.APIResponse "Malformed body"
// @Router /offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create offer", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createOfferUC.Execute(c.Request.Context(), usecases.CreateOfferCommand{
		ProductID:     req.ProductID,
		Description:   req.Description,
		Price:         req.Price,
		NumberOfTerms: req.NumberOfTerms,
		Active:        req.active(),
	})
	if err != nil {
		h.logger.Warnw("create offer rejected", "error", err, "product_id", req.ProductID)
		utils.SentinelResponse(c, failedID)
		return
	}

	utils.SentinelResponse(c, result.ID)
}

// UpdateOffer godoc
// @Summary Update offer
// @Tags offers
// @Accept json
// @Produce json
// @Param id path int true "Offer ID"
// @Param request body OfferRequest true "Offer data"
// @Success 200 {boolean} boolean "Whether the offer was updated"
// @Failure 400 {object} utils.APIResponse "Malformed id or body"
// @Router /offers/{id} [put]
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "offer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update offer", "error", err, "offer_id", id)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	_, err = h.updateOfferUC.Execute(c.Request.Context(), usecases.UpdateOfferCommand{
		ID:            id,
		ProductID:     req.ProductID,
		Description:   req.Description,
		Price:         req.Price,
		NumberOfTerms: req.NumberOfTerms,
		Active:        req.active(),
	})
	if err != nil {
		h.logger.Warnw("update offer rejected", "error", err, "offer_id", id)
	}

	utils.SentinelResponse(c, err == nil)
}

// DeleteOffer godoc
// @Summary Delete offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {boolean} boolean "Whether the offer was deleted"
// @Failure 400 {object} utils.APIResponse "Malformed id"
// @Router /offers/{id} [delete]
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "offer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteOfferUC.Execute(c.Request.Context(), id); err != nil {
		h.logger.Warnw("delete offer rejected", "error", err, "offer_id", id)
		utils.SentinelResponse(c, false)
		return
	}

	utils.SentinelResponse(c, true)
}

// GetOffer godoc
// @Summary Get offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} utils.APIResponse{data=dto.OfferDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /offers/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "offer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOfferUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOffers godoc
// @Summary List offers
// @Tags offers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	p := utils.ParsePagination(c)

	items, total, err := h.listOffersUC.Execute(c.Request.Context(), usecases.ListOffersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
