package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/usecases"
	"github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/utils"
)

// failedID is written by create routes when nothing was stored.
const failedID = -1

type ProductHandler struct {
	createProductUC createProductUseCase
	updateProductUC updateProductUseCase
	deleteProductUC deleteProductUseCase
	getProductUC    getProductUseCase
	listProductsUC  listProductsUseCase
	logger          logger.Interface
}

func NewProductHandler(
	createProductUC createProductUseCase,
	updateProductUC updateProductUseCase,
	deleteProductUC deleteProductUseCase,
	getProductUC getProductUseCase,
	listProductsUC listProductsUseCase,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
		getProductUC:    getProductUC,
		listProductsUC:  listProductsUC,
		logger:          logger,
	}
}

// ProductRequest is the body of product create and update. Active defaults to true.
type ProductRequest struct {
	Name   string `json:"name"`
	Brand  string `json:"brand"`
	Term   string `json:"term"`
	Active *bool  `json:"active"`
}

func (r ProductRequest) active() bool {
	return r.Active == nil || *r.Active
}

// CreateProduct godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body ProductRequest true "Product data"
// @Success 200 {integer} integer "New product id, or -1 on failure"
// @Failure 400 {object} utils.APIResponse "Malformed body"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createProductUC.Execute(c.Request.Context(), usecases.CreateProductCommand{
		Name:   req.Name,
		Brand:  req.Brand,
		Term:   req.Term,
		Active: req.active(),
	})
	if err != nil {
		h.logger.Warnw("create product rejected", "error", err)
		utils.SentinelResponse(c, failedID)
		return
	}

	utils.SentinelResponse(c, result.ID)
}

// UpdateProduct godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Product data"
// @Success 200 {boolean} boolean "Whether the product was updated"
// @Failure 400 {object} utils.APIResponse "Malformed id or body"
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update product", "error", err, "product_id", id)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	_, err = h.updateProductUC.Execute(c.Request.Context(), usecases.UpdateProductCommand{
		ID:     id,
		Name:   req.Name,
		Brand:  req.Brand,
		Term:   req.Term,
		Active: req.active(),
	})
	if err != nil {
		h.logger.Warnw("update product rejected", "error", err, "product_id", id)
	}

	utils.SentinelResponse(c, err == nil)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {boolean} boolean "Whether the product was deleted"
// @Failure 400 {object} utils.APIResponse "Malformed id"
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProductUC.Execute(c.Request.Context(), id); err != nil {
		h.logger.Warnw("delete product rejected", "error", err, "product_id", id)
		utils.SentinelResponse(c, false)
		return
	}

	utils.SentinelResponse(c, true)
}

// GetProduct godoc
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} utils.APIResponse{data=dto.ProductDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProductUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ProductExists godoc
// @Summary Check product existence
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {boolean} boolean "Whether the product exists"
// @Failure 400 {object} utils.APIResponse "Malformed id"
// @Router /products/{id}/exists [get]
func (h *ProductHandler) ProductExists(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	exists, err := h.getProductUC.Exists(c.Request.Context(), id)
	if err != nil {
		h.logger.Warnw("product existence check failed", "error", err, "product_id", id)
	}

	utils.SentinelResponse(c, exists && err == nil)
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	p := utils.ParsePagination(c)

	items, total, err := h.listProductsUC.Execute(c.Request.Context(), usecases.ListProductsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
