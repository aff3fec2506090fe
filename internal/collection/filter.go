package collection

import (
	"fmt"
	"strings"
)

// Filter restricts queries to light or dark themes.
type Filter int

const (
	FilterNone Filter = iota
	FilterLight
	FilterDark
)

// Match reports whether a theme with the given classification passes.
func (f Filter) Match(isLight bool) bool {
	switch f {
	case FilterLight:
		return isLight
	case FilterDark:
		return !isLight
	default:
		return true
	}
}

func (f Filter) String() string {
	switch f {
	case FilterLight:
		return "light"
	case FilterDark:
		return "dark"
	default:
		return "any"
	}
}

// Next cycles any -> dark -> light -> any.
func (f Filter) Next() Filter {
	switch f {
	case FilterNone:
		return FilterDark
	case FilterDark:
		return FilterLight
	default:
		return FilterNone
	}
}

// ParseFilter accepts "any", "all", "none", "" , "light" and "dark".
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "all", "none":
		return FilterNone, nil
	case "light":
		return FilterLight, nil
	case "dark":
		return FilterDark, nil
	}
	return FilterNone, fmt.Errorf("unknown filter %q (want any, dark or light)", s)
}

// FilterFromFlags maps the --light/--dark flags onto a filter. Setting both
// is the same as setting neither.
func FilterFromFlags(light, dark bool) Filter {
	switch {
	case light && !dark:
		return FilterLight
	case dark && !light:
		return FilterDark
	default:
		return FilterNone
	}
}
