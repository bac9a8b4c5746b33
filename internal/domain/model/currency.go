package model

import "sort"

type Currency string

func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the code is a non-empty uppercase alphabetic
// identifier, the only shape the catalog accepts.
func (c Currency) IsValid() bool {
	if len(c) == 0 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// CurrencyCatalog maps a currency code to its display name. It is populated
// once at startup and treated as immutable for the rest of the session.
type CurrencyCatalog map[Currency]string

func (c CurrencyCatalog) Has(code Currency) bool {
	_, ok := c[code]
	return ok
}

// Codes returns the catalog's codes sorted alphabetically.
func (c CurrencyCatalog) Codes() []Currency {
	codes := make([]Currency, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
