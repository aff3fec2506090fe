// Package builder converts a directory of Alacritty theme files into the
// binary collection embedded by package collection.
//
// Each *.toml file becomes one theme named after the file stem. The 22
// canonical colors are read from colors.primary, colors.selection,
// colors.cursor, colors.normal and colors.bright; any missing key aborts the
// build with a *MissingFieldError.
package builder
