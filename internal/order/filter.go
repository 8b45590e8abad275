// Package order provides read-side queries over the immutable order history.
package order

import (
	"strings"

	"github.com/streetbrew/coffee-cart-api/internal/models"
)

// StatusAll is the status filter value that matches every order.
const StatusAll = "all"

// Filter returns the orders matching both predicates, preserving the
// relative order of the input. The status predicate is an exact,
// case-sensitive match against the status enum unless it is StatusAll; the
// search predicate is a case-insensitive substring match on the storefront
// name. An empty search term matches everything. The input slice is never
// mutated and an empty result is a valid outcome, not an error.
func Filter(orders []models.Order, status string, search string) []models.Order {
	search = strings.ToLower(search)

	result := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if status != StatusAll && string(o.Status) != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(o.StorefrontName), search) {
			continue
		}
		result = append(result, o)
	}
	return result
}

// CountByStatus returns the number of orders per status, used for the
// order-list tab badges.
func CountByStatus(orders []models.Order) map[models.OrderStatus]int {
	counts := make(map[models.OrderStatus]int, 4)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}
