package service

import (
	"errors"
	"fmt"

	"go-warehouse-ledger/pkg/validator"
)

// NotFound family: a referenced entity id does not exist. All of them are
// raised before any mutation.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDepotNotFound     = errors.New("depot not found")
	ErrPartnerNotFound   = errors.New("partner not found")
	ErrPricelistNotFound = errors.New("pricelist not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderLineNotFound = errors.New("order line not found on the referenced order")
	ErrImportNotFound    = errors.New("import not found")
	ErrExportNotFound    = errors.New("export not found")
)

var (
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrProductUnpriced = errors.New("product has no price in the pinned pricelist")
)

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}
