package gofonts

import (
	"strings"

	"github.com/npillmayer/fontresolve"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Generic family names understood by Create.
const (
	Serif     = "serif"
	SansSerif = "sans-serif"
	Monospace = "monospace"
)

// splitGeneric separates a family name like "sans-serif-medium" into the
// generic family and the weight suffix. Unknown families are served by
// sans-serif, as on other platforms.
func splitGeneric(family string) (generic, suffix string) {
	family = strings.ToLower(strings.TrimSpace(family))
	for _, g := range []string{SansSerif, Serif, Monospace} {
		if strings.HasPrefix(family, g) {
			return g, family[len(g):]
		}
	}
	return SansSerif, ""
}

// packaged returns the Go font data for a generic family. The Go fonts do
// not have serif, thin, light or black designs; these are approximated.
func packaged(generic, suffix string, flags fontresolve.StyleFlags) (name string, data []byte) {
	if generic == Monospace {
		switch flags {
		case fontresolve.Bold:
			return "Go Mono Bold", gomonobold.TTF
		case fontresolve.Italic:
			return "Go Mono Italic", gomonoitalic.TTF
		case fontresolve.BoldItalic:
			return "Go Mono Bold Italic", gomonobolditalic.TTF
		}
		return "Go Mono", gomono.TTF
	}
	heavy := suffix == "-medium" || suffix == "-black"
	switch {
	case flags == fontresolve.Bold:
		return "Go Bold", gobold.TTF
	case flags == fontresolve.BoldItalic:
		return "Go Bold Italic", gobolditalic.TTF
	case flags == fontresolve.Italic && heavy:
		return "Go Medium Italic", gomediumitalic.TTF
	case flags == fontresolve.Italic:
		return "Go Italic", goitalic.TTF
	case heavy:
		return "Go Medium", gomedium.TTF
	}
	return "Go Regular", goregular.TTF
}
