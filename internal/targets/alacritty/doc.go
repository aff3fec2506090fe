// Package alacritty writes derived palettes into Alacritty's TOML
// configuration.
//
// The primary table carries the base background and foreground plus the
// derived dim and bright foregrounds. The normal, bright and dim ANSI sets are
// written in full, and orange and pink are exposed as indexed colors 16 and 17.
package alacritty
