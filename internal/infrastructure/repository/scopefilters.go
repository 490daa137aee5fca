package repository

import (
	"gorm.io/gorm"

	"shieldtrack/internal/domain/access"
)

// scopeClients restricts a query on the clients table to the rows a scope
// admits. Client visibility is client-level: an area-bound principal still
// sees its own client row.
func scopeClients(scope access.Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.IsUnrestricted() {
			return db
		}
		clientID, _ := scope.ClientID()
		return db.Where("id = ?", clientID)
	}
}

// scopeTenantRows restricts a query on a table carrying a client_id column
// and the given area column. An empty scope compiles to a clause that matches
// nothing; it must never compile to no clause at all.
func scopeTenantRows(scope access.Scope, areaColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.IsUnrestricted() {
			return db
		}
		if scope.IsEmpty() {
			return db.Where("1 = 0")
		}

		clientID, _ := scope.ClientID()
		db = db.Where("client_id = ?", clientID)

		if areaIDs, bound := scope.AreaIDs(); bound {
			db = db.Where(areaColumn+" IN ?", areaIDs)
		}
		return db
	}
}
