// Package collection stores named terminal color themes in a compact binary
// container and derives full UI palettes from them.
//
// # Palette derivation
//
// A theme is described by 22 canonical colors in a fixed order (see Slot):
// background, foreground, selection and cursor pairs, then the normal and
// bright ANSI sets. NewColorScheme expands them into a background ramp of
// five shades, a foreground ramp of four, and lazily derived dim, comment,
// diff and code-selection colors.
//
// # Container format
//
//	u16 BE   count
//	u32 BE   offset[count]   relative to the first record
//	record   [name_len u8][name][is_light u8][22 x RGB]
//
// New parses only the header and offset table. LazyTheme reads a record's
// name and light flag in place; LazyTheme.Theme decodes the palette.
//
// # Usage Example
//
//	col, err := collection.Embedded()
//	if err != nil {
//		return err
//	}
//	lt, ok := col.FuzzySearch("drakula", collection.FilterDark)
//	if ok {
//		theme := lt.Theme().Prepare(collection.DefaultDeriveParams())
//		fmt.Println(theme.Name, theme.Colors.Comment(0))
//	}
//
// A Collection is safe for concurrent readers. A ColorScheme caches derived
// colors without locking and must be owned by one goroutine.
package collection
