// Package fonts discovers installed Nerd Fonts and picks one by name or at
// random.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"sort"
	"strings"

	"tvibe/internal/fuzzy"
	"tvibe/pkg/logging"
)

const (
	compactMarker = "NerdFont"
	spacedMarker  = " Nerd Font"
)

var fontExts = map[string]bool{".ttf": true, ".otf": true}

// styleWords are dropped from the spaced file name form.
var styleWords = map[string]bool{
	"regular": true, "bold": true, "italic": true, "light": true, "medium": true,
	"thin": true, "black": true, "semibold": true, "extrabold": true, "extralight": true,
	"oblique": true, "book": true, "retina": true,
}

// FamilyFromFile derives the Nerd Font family name from a font file name.
// It reports false for files that are not Nerd Fonts.
//
//	JetBrainsMonoNerdFontMono-Bold.ttf          -> JetBrainsMono Nerd Font Mono
//	Hack Regular Nerd Font Complete Mono.ttf    -> Hack Nerd Font Mono
func FamilyFromFile(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if !fontExts[ext] {
		return "", false
	}
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	if i := strings.Index(stem, compactMarker); i > 0 {
		prefix := stem[:i]
		rest := stem[i+len(compactMarker):]
		if j := strings.IndexByte(rest, '-'); j >= 0 {
			rest = rest[:j]
		}
		family := prefix + spacedMarker
		if rest != "" {
			family += " " + rest
		}
		return family, true
	}

	if i := strings.Index(stem, spacedMarker); i > 0 {
		var words []string
		for _, w := range strings.Fields(stem[:i]) {
			if !styleWords[strings.ToLower(w)] {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			return "", false
		}
		family := strings.Join(words, " ") + spacedMarker
		rest := strings.Fields(stem[i+len(spacedMarker):])
		for _, w := range rest {
			if w == "Mono" || w == "Propo" {
				family += " " + w
				break
			}
		}
		return family, true
	}

	return "", false
}

// Scan walks dirs for Nerd Font files and returns the sorted, de-duplicated
// family names. Missing directories are skipped.
func Scan(dirs []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir && errors.Is(err, fs.ErrNotExist) {
					return fs.SkipDir
				}
				if errors.Is(err, fs.ErrPermission) {
					logging.Debug("Fonts", "Skipping unreadable %s", path)
					return nil
				}
				return err
			}
			if d.IsDir() {
				return nil
			}
			if family, ok := FamilyFromFile(d.Name()); ok {
				seen[family] = true
			}
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to scan fonts in %s: %w", dir, err)
		}
	}

	families := make([]string, 0, len(seen))
	for f := range seen {
		families = append(families, f)
	}
	sort.Strings(families)
	logging.Debug("Fonts", "Found %d Nerd Font families", len(families))
	return families, nil
}

// Search returns the family that best matches query.
func Search(families []string, query string) (string, bool) {
	return fuzzy.Best(families, query)
}

// Rand picks a family uniformly. A nil r uses the process-wide source.
func Rand(families []string, r interface{ IntN(int) int }) (string, bool) {
	if len(families) == 0 {
		return "", false
	}
	if r == nil {
		return families[rand.IntN(len(families))], true
	}
	return families[r.IntN(len(families))], true
}
