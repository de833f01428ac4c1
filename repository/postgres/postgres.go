// Package postgres provides the PostgreSQL implementation of the repository interfaces
package postgres

import (
	"context"

	"gorm.io/gorm"
)

// dbFromContext returns the transaction carried by ctx when one is present,
// falling back to the repository's own handle. Write operations go through
// this so several repositories can share one transaction boundary.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return fallback
}
