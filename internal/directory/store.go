package directory

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Increment bumps a counter column in a single UPDATE so concurrent requests
// never lose updates. Callers must not reconstruct this as read-then-write.
func Increment(d *gorm.DB, table string, id uint, column string, delta int) error {
	col := pq.QuoteIdentifier(column)
	return d.Table(table).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(col+" + ?", delta)).
		Error
}
