package customer

import "strings"

// Filter returns the customers whose name, phone, address or notes contain term,
// ignoring case. An empty term matches everything. Input order is preserved.
func Filter(list []Customer, term string) []Customer {
	out := make([]Customer, 0, len(list))
	needle := strings.ToLower(term)
	for _, c := range list {
		if Matches(c, needle) {
			out = append(out, c)
		}
	}
	return out
}

// Matches expects needle to be lower-cased already.
func Matches(c Customer, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range [...]string{c.Name, c.PhoneNumber, c.Address, c.Notes} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
