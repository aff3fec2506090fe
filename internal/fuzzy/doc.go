// Package fuzzy scores free-form queries against short names such as theme
// and font families.
//
// A score combines Jaro-Winkler and normalized Levenshtein similarity with a
// small bonus for every query word found verbatim in the candidate. Both
// strings are normalized first, so "TOKYO   night" and "Tokyo Night" are
// identical.
package fuzzy
