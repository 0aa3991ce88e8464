// Package export serializes a generated design system into its output formats.
//
// The formats intentionally cover different subsets of the system: json and js
// carry everything, css carries the four scales as custom properties, scss only
// the brand and semantic colors, and figma-tokens only brand colors and the
// heading/body families. Consumers must not assume parity between them.
package export

import (
	"strings"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// Format identifies an output format.
type Format int

const (
	FormatJSON Format = iota
	FormatCSS
	FormatSCSS
	FormatJS
	FormatFigmaTokens
)

var formatNames = map[Format]string{
	FormatJSON:        "json",
	FormatCSS:         "css",
	FormatSCSS:        "scss",
	FormatJS:          "js",
	FormatFigmaTokens: "figma-tokens",
}

// Formats lists every supported format name in declaration order.
func Formats() []string {
	return []string{"json", "css", "scss", "js", "figma-tokens"}
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "json"
}

// Extension is the conventional file extension of the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSS:
		return "css"
	case FormatSCSS:
		return "scss"
	case FormatJS:
		return "js"
	case FormatFigmaTokens:
		return "tokens.json"
	default:
		return "json"
	}
}

// ParseFormat resolves a format name case-insensitively. Unknown names are an
// UnsupportedFormatError rather than a silent json fallback.
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == normalized {
			return f, nil
		}
	}
	return FormatJSON, brandkiterrors.NewUnsupportedFormatError(name, Formats())
}
