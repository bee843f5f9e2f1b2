package encode

import "github.com/fatih/color"

// Colors maps outline parts to sprintf-style colorizers.
type Colors struct {
	Branch func(string, ...any) string
	Block  func(string, ...any) string
	Inline func(string, ...any) string
	Attr   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Branch: color.RGB(74, 92, 138).SprintfFunc(),
		Block:  color.RGB(128, 168, 196).SprintfFunc(),
		Inline: color.RGB(128, 216, 236).SprintfFunc(),
		Attr:   color.RGB(196, 96, 16).SprintfFunc(),
	}
}
