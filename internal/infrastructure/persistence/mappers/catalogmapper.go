package mappers

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/models"
)

// CatalogMapper converts between catalog entities and their persistence models.
type CatalogMapper interface {
	ProductToModel(p *catalog.Product) *models.ProductModel
	ProductToDomain(model *models.ProductModel) (*catalog.Product, error)
	ProductsToDomain(models []*models.ProductModel) ([]*catalog.Product, error)

	OfferToModel(o *catalog.Offer) *models.OfferModel
	OfferToDomain(model *models.OfferModel) (*catalog.Offer, error)
	OffersToDomain(models []*models.OfferModel) ([]*catalog.Offer, error)

	OfferWithProductToDomain(row *models.OfferWithProductRow) (*catalog.OfferWithProduct, error)
	ProductOffersToDomain(rows []*models.ProductOfferRow) []*catalog.ProductOffer
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) ProductToModel(p *catalog.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:           p.ID(),
		Name:         p.Name(),
		Brand:        p.Brand(),
		Term:         p.Term(),
		Active:       p.IsActive(),
		DateCreated:  p.CreatedAt(),
		DateModified: p.ModifiedAt(),
	}
}

func (m *CatalogMapperImpl) ProductToDomain(model *models.ProductModel) (*catalog.Product, error) {
	if model == nil {
		return nil, nil
	}
	p, err := catalog.ReconstructProduct(model.ID, model.Name, model.Brand, model.Term, model.Active,
		model.DateCreated, model.DateModified)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product %d: %w", model.ID, err)
	}
	return p, nil
}

func (m *CatalogMapperImpl) ProductsToDomain(rows []*models.ProductModel) ([]*catalog.Product, error) {
	products := make([]*catalog.Product, 0, len(rows))
	for _, row := range rows {
		p, err := m.ProductToDomain(row)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (m *CatalogMapperImpl) OfferToModel(o *catalog.Offer) *models.OfferModel {
	return &models.OfferModel{
		ID:            o.ID(),
		ProductID:     o.ProductID(),
		Description:   o.Description(),
		Price:         o.Price(),
		NumberOfTerms: o.NumberOfTerms(),
		Active:        o.IsActive(),
		DateCreated:   o.CreatedAt(),
		DateModified:  o.ModifiedAt(),
	}
}

func (m *CatalogMapperImpl) OfferToDomain(model *models.OfferModel) (*catalog.Offer, error) {
	if model == nil {
		return nil, nil
	}
	o, err := catalog.ReconstructOffer(model.ID, model.ProductID, model.Description, model.Price,
		model.NumberOfTerms, model.Active, model.DateCreated, model.DateModified)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct offer %d: %w", model.ID, err)
	}
	return o, nil
}

func (m *CatalogMapperImpl) OffersToDomain(rows []*models.OfferModel) ([]*catalog.Offer, error) {
	offers := make([]*catalog.Offer, 0, len(rows))
	for _, row := range rows {
		o, err := m.OfferToDomain(row)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (m *CatalogMapperImpl) OfferWithProductToDomain(row *models.OfferWithProductRow) (*catalog.OfferWithProduct, error) {
	offer, err := m.OfferToDomain(&row.OfferModel)
	if err != nil {
		return nil, err
	}
	product, err := m.ProductToDomain(&models.ProductModel{
		ID:           row.ProductID,
		Name:         row.ProductName,
		Brand:        row.ProductBrand,
		Term:         row.ProductTerm,
		Active:       row.ProductActive,
		DateCreated:  row.ProductDateCreated,
		DateModified: row.ProductDateModified,
	})
	if err != nil {
		return nil, err
	}
	return &catalog.OfferWithProduct{Offer: offer, Product: product}, nil
}

func (m *CatalogMapperImpl) ProductOffersToDomain(rows []*models.ProductOfferRow) []*catalog.ProductOffer {
	return lo.Map(rows, func(row *models.ProductOfferRow, _ int) *catalog.ProductOffer {
		created := row.OfferDateCreated
		if row.OfferDateModified != nil {
			created = *row.OfferDateModified
		}
		return &catalog.ProductOffer{
			ProductID:   row.ProductID,
			OfferID:     row.OfferID,
			Brand:       row.Brand,
			ProductName: row.ProductName,
			Description: row.Description,
			Price:       row.Price,
			CreatedDate: created,
		}
	})
}
