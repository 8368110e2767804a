package services

import (
	"strings"

	"whatstock/internal/models"
)

// ItemFilter describes the search and filter criteria applied to an
// inventory listing. Zero-valued criteria match everything.
type ItemFilter struct {
	Query    string
	Tags     []string
	Status   string
	Category string
}

// FilterItems returns the items matching every criterion of the filter.
func FilterItems(items []models.InventoryItem, filter ItemFilter) []models.InventoryItem {
	matched := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if !MatchesQuery(item, filter.Query) {
			continue
		}
		if !MatchesTags(item, filter.Tags) {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// MatchesQuery reports whether the query is a case-insensitive substring of
// the item's title, description, or any of its tags. An empty query matches
// every item.
func MatchesQuery(item models.InventoryItem, query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(item.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), query) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// MatchesTags reports whether the item carries at least one of the selected
// tags. No selected tags matches every item.
func MatchesTags(item models.InventoryItem, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, tag := range item.Tags {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}
