package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/stealthycommerce/stealthy/internal/domain/catalog/valueobjects"
)

const (
	MaxProductNameLength  = 50
	MaxProductBrandLength = 50
	MaxProductTermLength  = 50
)

// Product is a subscribable item. Term is free text; see valueobjects.ParseTermUnit.
type Product struct {
	id         uint
	name       string
	brand      string
	term       string
	active     bool
	createdAt  time.Time
	modifiedAt *time.Time
}

func NewProduct(name, brand, term string, active bool, now time.Time) (*Product, error) {
	p := &Product{active: active, createdAt: now}
	if err := p.apply(name, brand, term); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructProduct(id uint, name, brand, term string, active bool,
	createdAt time.Time, modifiedAt *time.Time) (*Product, error) {

	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}

	return &Product{
		id:         id,
		name:       name,
		brand:      brand,
		term:       term,
		active:     active,
		createdAt:  createdAt,
		modifiedAt: modifiedAt,
	}, nil
}

func (p *Product) apply(name, brand, term string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProductName)
	}
	if utf8.RuneCountInString(name) > MaxProductNameLength {
		return errTooLong("name", MaxProductNameLength)
	}
	if utf8.RuneCountInString(brand) > MaxProductBrandLength {
		return errTooLong("brand", MaxProductBrandLength)
	}
	if utf8.RuneCountInString(term) > MaxProductTermLength {
		return errTooLong("term", MaxProductTermLength)
	}

	p.name = name
	p.brand = brand
	p.term = term
	return nil
}

// Update replaces the editable fields and stamps the modification time.
func (p *Product) Update(name, brand, term string, active bool, now time.Time) error {
	if err := p.apply(name, brand, term); err != nil {
		return err
	}
	p.active = active
	p.modifiedAt = &now
	return nil
}

func (p *Product) ID() uint {
	return p.id
}

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Brand() string {
	return p.brand
}

func (p *Product) Term() string {
	return p.term
}

// TermUnit returns the recognized billing period for the free-text term.
func (p *Product) TermUnit() vo.TermUnit {
	return vo.ParseTermUnit(&p.term)
}

func (p *Product) IsActive() bool {
	return p.active
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) ModifiedAt() *time.Time {
	return p.modifiedAt
}

// LastChanged returns the modification time, or the creation time if never modified.
func (p *Product) LastChanged() time.Time {
	if p.modifiedAt != nil {
		return *p.modifiedAt
	}
	return p.createdAt
}
