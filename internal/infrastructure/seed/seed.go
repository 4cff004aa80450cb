// Package seed loads a catalog and customers from a YAML file into the database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/db"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type File struct {
	Products  []ProductEntry  `yaml:"products"`
	Customers []CustomerEntry `yaml:"customers"`
}

type ProductEntry struct {
	Name   string       `yaml:"name"`
	Brand  string       `yaml:"brand"`
	Term   string       `yaml:"term"`
	Active *bool        `yaml:"active"`
	Offers []OfferEntry `yaml:"offers"`
}

type OfferEntry struct {
	Description   string `yaml:"description"`
	Price         string `yaml:"price"`
	NumberOfTerms *int   `yaml:"number_of_terms"`
	Active        *bool  `yaml:"active"`
}

type CustomerEntry struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// Result counts what a seed run inserted.
type Result struct {
	Products  int
	Offers    int
	Customers int
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()

	return Parse(fh)
}

type Seeder struct {
	products  catalog.ProductRepository
	offers    catalog.OfferRepository
	customers customer.Repository
	txMgr     db.Transactor
	clock     biztime.Clock
	logger    logger.Interface
}

func NewSeeder(
	products catalog.ProductRepository,
	offers catalog.OfferRepository,
	customers customer.Repository,
	txMgr db.Transactor,
	clock biztime.Clock,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		products:  products,
		offers:    offers,
		customers: customers,
		txMgr:     txMgr,
		clock:     clock,
		logger:    logger,
	}
}

// Run inserts everything in f in one transaction. Customers whose email is
// already registered are skipped.
func (s *Seeder) Run(ctx context.Context, f *File) (Result, error) {
	var res Result
	now := s.clock.Now()

	err := s.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		res = Result{}
		for i, pe := range f.Products {
			p, err := catalog.NewProduct(pe.Name, pe.Brand, pe.Term, boolOr(pe.Active, true), now)
			if err != nil {
				return fmt.Errorf("product %d (%q): %w", i+1, pe.Name, err)
			}
			if err := s.products.Create(ctx, p); err != nil {
				return err
			}
			res.Products++

			for j, oe := range pe.Offers {
				price, err := decimal.NewFromString(oe.Price)
				if err != nil {
					return fmt.Errorf("product %q offer %d: invalid price %q: %w", pe.Name, j+1, oe.Price, err)
				}
				o, err := catalog.NewOffer(p.ID(), oe.Description, price, oe.NumberOfTerms, boolOr(oe.Active, true), now)
				if err != nil {
					return fmt.Errorf("product %q offer %d: %w", pe.Name, j+1, err)
				}
				if err := s.offers.Create(ctx, o); err != nil {
					return err
				}
				res.Offers++
			}
		}

		for _, ce := range f.Customers {
			c, err := customer.NewCustomer(ce.Email, ce.FirstName, ce.LastName, now)
			if err != nil {
				return fmt.Errorf("customer %q: %w", ce.Email, err)
			}
			if err := s.customers.Create(ctx, c); err != nil {
				if errors.Is(err, customer.ErrEmailExists) {
					s.logger.Warnw("customer already exists, skipping", "email", c.Email())
					continue
				}
				return err
			}
			res.Customers++
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to seed database", "error", err)
		return Result{}, err
	}

	s.logger.Infow("database seeded successfully",
		"products", res.Products,
		"offers", res.Offers,
		"customers", res.Customers,
	)
	return res, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
