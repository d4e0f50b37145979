package persistence

import (
	"fmt"
	"strings"

	"github.com/ledger/backend/internal/domain/ledger"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// transactionOrder is the ORDER BY clause of a transaction listing. created_at
// and id break ties between transactions sharing an occurrence date, so pages
// never overlap.
func transactionOrder(order ledger.SortOrder) string {
	dir := ValidateSortOrder(string(order))
	return fmt.Sprintf("occurred_at %s, created_at %s, id %s", dir, dir, dir)
}
