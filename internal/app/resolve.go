package app

import (
	"errors"
	"fmt"

	"tvibe/internal/collection"
	"tvibe/internal/fonts"
)

var (
	// ErrNoTheme is returned when no theme matches the request.
	ErrNoTheme = errors.New("no matching theme")
	// ErrNoSelection is returned when neither a theme name nor a random pick was requested.
	ErrNoSelection = errors.New("no theme selected: give a theme name or --rand")
	// ErrNoFont is returned when no installed Nerd Font matches the request.
	ErrNoFont = errors.New("no matching Nerd Font")
)

// ResolveTheme looks up the requested theme under filter. An exact name wins
// over the fuzzy search.
func ResolveTheme(col *collection.Collection, opts Options, filter collection.Filter, r collection.RandSource) (*collection.Theme, error) {
	var (
		lt collection.LazyTheme
		ok bool
	)
	switch {
	case opts.Theme != "":
		lt, ok = col.ByName(opts.Theme, filter)
		if !ok {
			lt, ok = col.FuzzySearch(opts.Theme, filter)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q (filter %s)", ErrNoTheme, opts.Theme, filter)
		}
	case opts.Rand:
		lt, ok = col.Rand(r, filter)
		if !ok {
			return nil, fmt.Errorf("%w (filter %s)", ErrNoTheme, filter)
		}
	default:
		return nil, ErrNoSelection
	}
	return lt.Theme(), nil
}

// ResolveFont picks a Nerd Font family. It returns "" when no font was
// requested.
func ResolveFont(families []string, opts Options, r collection.RandSource) (string, error) {
	var (
		family string
		ok     bool
	)
	switch {
	case opts.Font != "":
		family, ok = fonts.Search(families, opts.Font)
	case opts.FontRand:
		family, ok = fonts.Rand(families, r)
	default:
		return "", nil
	}
	if !ok {
		return "", fmt.Errorf("%w: %d families installed", ErrNoFont, len(families))
	}
	return family, nil
}
