// Package catalog implements the campaign discovery engine: free-text search,
// category filtering, and ordering over an in-memory campaign collection.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/givehope/givehope/internal/domain"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortRecent   SortKey = "recent"
	SortProgress SortKey = "progress"
	SortAmount   SortKey = "amount"
)

// CategoryAll is the sentinel category matching every campaign.
const CategoryAll = "all"

// ParseSortKey maps a request parameter to a SortKey. An empty value falls
// back to SortRecent, the catalog's default ordering.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortRecent, SortProgress, SortAmount:
		return SortKey(s), nil
	case "":
		return SortRecent, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// ValidFilterCategory reports whether category is usable as a filter: the
// "all" sentinel, empty (treated as "all"), or a member of the fixed set.
func ValidFilterCategory(category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return domain.ValidCategory(domain.Category(category))
}

// Visible returns the filtered, ordered view of records. A record is retained
// iff the query (case-insensitive) occurs in its title or description, and the
// category filter is "all" or matches exactly. Ordering is stable: records
// that compare equal keep their input order. The input slice is not mutated.
func Visible(records []domain.Campaign, query, category string, key SortKey) []domain.Campaign {
	q := strings.ToLower(query)

	out := make([]domain.Campaign, 0, len(records))
	for _, c := range records {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			continue
		}
		if category != "" && category != CategoryAll && string(c.Category) != category {
			continue
		}
		out = append(out, c)
	}

	switch key {
	case SortProgress:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Progress() > out[j].Progress()
		})
	case SortAmount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentAmount > out[j].CurrentAmount
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// Featured returns up to n active campaigns in their original order. The home
// page highlights these without applying any filter or sort.
func Featured(records []domain.Campaign, n int) []domain.Campaign {
	out := make([]domain.Campaign, 0, n)
	for _, c := range records {
		if c.Status != domain.CampaignStatusActive {
			continue
		}
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	return out
}
