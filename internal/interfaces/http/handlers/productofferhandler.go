package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stealthycommerce/stealthy/internal/application/catalog/usecases"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/utils"
)

// ProductOfferHandler serves the storefront view of the active catalog.
type ProductOfferHandler struct {
	searchUC searchProductOffersUseCase
	logger   logger.Interface
}

func NewProductOfferHandler(searchUC searchProductOffersUseCase, logger logger.Interface) *ProductOfferHandler {
	return &ProductOfferHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// SearchProductOffers godoc
// @Summary Search active product offers
// @Description Pages through active offers of active products. Unknown sort keys fall back to created.
// @Tags product-offers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param sort query string false "Sort key" Enums(price, created, name) default(created)
// @Param descending query bool false "Highest, newest or last name first" default(true)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /product-offers [get]
func (h *ProductOfferHandler) SearchProductOffers(c *gin.Context) {
	p := utils.ParsePagination(c)

	items, total, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchProductOffersQuery{
		Page:       p.Page,
		PageSize:   p.PageSize,
		SortBy:     c.Query("sort"),
		Descending: utils.ParseBoolQuery(c, "descending", true),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}
