// Package sequence allocates identifiers for the append-only audit tables.
package sequence

import (
	"fmt"

	"gorm.io/gorm"
)

// Tables that take counted identifiers. Table names cannot be bound as
// statement parameters, so anything else is refused.
var Tables = map[string]struct{}{
	"orders":                {},
	"productupdates":        {},
	"productsupplyrequests": {},
}

// NextID returns the row count of table plus one.
//
// The value is unique at the instant of counting only. Another allocation or
// insert against the same table can race it and receive the same number; run
// it inside the transaction that inserts the row and let the primary key
// reject a duplicate. Under serial use numbering is dense and starts at 1.
func NextID(db *gorm.DB, table string) (int64, error) {
	if _, ok := Tables[table]; !ok {
		return 0, fmt.Errorf("no sequence for table %q", table)
	}
	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count + 1, nil
}
