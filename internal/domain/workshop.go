package domain

import (
	"fmt"
	"sort"
	"strings"
)

type WorkshopID string

type Category string

const (
	CategoryAll          Category = "all"
	CategoryFundamentals Category = "fundamentals"
	CategoryPreaching    Category = "preaching"
	CategoryLeadership   Category = "leadership"
	CategoryPastoral     Category = "pastoral"
	CategoryEvangelism   Category = "evangelism"
)

var categoryLabels = map[Category]string{
	CategoryAll:          "Todos los Talleres",
	CategoryFundamentals: "Fundamentos",
	CategoryPreaching:    "Predicación",
	CategoryLeadership:   "Liderazgo",
	CategoryPastoral:     "Cuidado Pastoral",
	CategoryEvangelism:   "Evangelismo",
}

func Categories() []Category {
	return []Category{CategoryAll, CategoryFundamentals, CategoryPreaching, CategoryLeadership, CategoryPastoral, CategoryEvangelism}
}

func ParseCategory(raw string) (Category, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return CategoryAll, nil
	}
	c := Category(trimmed)
	if _, ok := categoryLabels[c]; !ok {
		return "", NewValidationError("category", fmt.Sprintf("unknown category %q", raw))
	}
	return c, nil
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

type Workshop struct {
	ID              WorkshopID
	Order           int
	Title           string
	Description     string
	Content         string
	DurationMinutes int
	Category        Category
	Resources       []string
}

// FilterByCategory keeps the catalog order; CategoryAll returns every workshop.
func FilterByCategory(workshops []Workshop, category Category) []Workshop {
	if category == "" || category == CategoryAll {
		return workshops
	}

	filtered := make([]Workshop, 0, len(workshops))
	for _, w := range workshops {
		if w.Category == category {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

func SortByOrder(workshops []Workshop) {
	sort.SliceStable(workshops, func(i, j int) bool {
		return workshops[i].Order < workshops[j].Order
	})
}

// Neighbours returns the workshops one position before and after current by order.
func Neighbours(workshops []Workshop, current Workshop) (prev *Workshop, next *Workshop) {
	for i := range workshops {
		switch workshops[i].Order {
		case current.Order - 1:
			prev = &workshops[i]
		case current.Order + 1:
			next = &workshops[i]
		}
	}
	return prev, next
}
