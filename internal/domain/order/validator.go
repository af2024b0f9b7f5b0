package order

import (
	"fmt"
	"strconv"

	"pdv_xpto/internal/domain/entities"
)

// StockValidation is the outcome of checking order lines against a catalog
// snapshot. Errors holds one human-readable message per violating line.

type StockValidation struct {
	Valid  bool
	Errors []string
}

// ValidateStock compares each line's requested quantity against the current
// stock of the corresponding product in the snapshot.
//
// The snapshot must be read from the store immediately before commit, not
// cached from add-time: stock can change between adding a product and
// checkout (other terminals, restocking). The check is read-only and reports
// every violation in a single pass, naming the product and the shortfall. A
// line whose product is missing from the snapshot is a violation too.
func ValidateStock(lines []Line, snapshot map[string]entities.Product) StockValidation {
	var errs []string
	for _, l := range lines {
		p, ok := snapshot[l.Product.ID]
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: no longer available in the catalog", l.Product.Name))
			continue
		}
		if l.Quantity > p.Stock {
			errs = append(errs, fmt.Sprintf(
				"%s: insufficient stock (available: %s, requested: %s, short: %s)",
				p.Name,
				formatQuantity(p.Stock),
				formatQuantity(l.Quantity),
				formatQuantity(l.Quantity-p.Stock),
			))
		}
	}
	return StockValidation{Valid: len(errs) == 0, Errors: errs}
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
