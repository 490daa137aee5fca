package db

import (
	"gorm.io/gorm"
)

// ActiveOnly is a GORM scope that keeps only records whose is_active flag is
// set. Clients, areas and area assignments are deactivated rather than
// deleted, so most read paths compose this scope.
//
// Example usage:
//
//	db.Model(&AreaModel{}).Scopes(db.ActiveOnly()).Where("client_id = ?", id).Find(&results)
func ActiveOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// ActiveOnlyWithAlias is like ActiveOnly for queries that join tables and need
// to name which table's is_active to check.
func ActiveOnlyWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".is_active = ?", true)
	}
}
