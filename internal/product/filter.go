package product

import "strings"

// Filters selects products by free text and activity. The zero value matches all.
type Filters struct {
	Search     string
	ActiveOnly bool
}

// Filter keeps products whose name or description contains f.Search (case-insensitive),
// restricted to active products when f.ActiveOnly is set. Input order is preserved.
func Filter(list []Product, f Filters) []Product {
	out := make([]Product, 0, len(list))
	needle := strings.ToLower(f.Search)
	for _, p := range list {
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}
