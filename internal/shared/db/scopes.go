package db

import (
	"gorm.io/gorm"
)

// Paginate is a GORM scope applying 1-based page/pageSize as OFFSET/LIMIT.
// Non-positive values leave the query unbounded.
//
//	db.Model(&models.ProductModel{}).Scopes(db.Paginate(2, 20)).Find(&rows)
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 || pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// LatestModifiedFirst orders rows by their last modification, falling back to
// the creation time for rows never modified. alias may be empty.
func LatestModifiedFirst(alias string) func(db *gorm.DB) *gorm.DB {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("COALESCE(" + prefix + "date_modified, " + prefix + "date_created) DESC").
			Order(prefix + "id DESC")
	}
}
