// Package preview renders themes for the terminal: swatch strips drawn with
// lipgloss, the derived palette as YAML, and multi-column name listings.
package preview
