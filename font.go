/*
Package fontresolve maps platform-neutral font descriptions to concrete
typeface handles.

A font description, as found in style sheets, consists of a family list
("MyFont, serif"), a size, a style, a weight and optional variation
settings. Resolving it means walking the family list and asking the host
platform for a typeface, either from one of the generic families

▪︎ serif

▪︎ sans-serif (alias "system")

▪︎ monospace

or from a font file packaged with the application under
<app-root>/fonts/<family>.ttf (or .otf). Resolution results for custom
families are cached for the lifetime of a registry, including failed
lookups.

This package holds the value types and the weight-to-family-suffix
mapping. Sub-package locate implements the resolver and the loader,
fontregistry the cache and platform the contracts for host font
factories.

# Platform versions

Some features are available on newer platform versions only. Versions are
plain integers, compared against the floors VersionThinLight,
VersionMediumBlack and VersionVariations.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontresolve

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
)

// tracer writes to trace with key 'fontresolve'
func tracer() tracing.Trace {
	return tracing.Select("fontresolve")
}

const (
	StyleNormal  = font.StyleNormal
	StyleItalic  = font.StyleItalic
	StyleOblique = font.StyleOblique
)

// Descriptor is an immutable description of a font as requested by styling.
//
// An empty Family and a zero Size are "undefined". VariationSettings has
// three states: nil (not given), empty but non-nil (explicitly given as
// empty) and a list of axis values.
type Descriptor struct {
	Family            string
	Size              float64
	Style             font.Style
	Weight            Weight
	VariationSettings []Variation
}

// Default returns the default font description: undefined family and size,
// normal style and weight.
func Default() Descriptor {
	return Descriptor{
		Style:  StyleNormal,
		Weight: WeightNormal,
	}
}

// IsBold is true for weights rendered with the platform's bold style flag.
func (d Descriptor) IsBold() bool {
	w, _ := canonicalWeight(d.Weight)
	switch w {
	case WeightSemiBold, WeightBold, WeightExtraBold, WeightBlack:
		return true
	}
	return false
}

// IsItalic is true for italic and oblique styles.
func (d Descriptor) IsItalic() bool {
	return d.Style == font.StyleItalic || d.Style == font.StyleOblique
}

// Flags returns the style flags to request from the platform.
func (d Descriptor) Flags() StyleFlags {
	var flags StyleFlags
	if d.IsBold() {
		flags |= Bold
	}
	if d.IsItalic() {
		flags |= Italic
	}
	return flags
}

func (d Descriptor) WithFamily(family string) Descriptor {
	d.Family = family
	return d
}

func (d Descriptor) WithStyle(style font.Style) Descriptor {
	d.Style = style
	return d
}

func (d Descriptor) WithWeight(weight Weight) Descriptor {
	d.Weight = weight
	return d
}

func (d Descriptor) WithSize(size float64) Descriptor {
	d.Size = size
	return d
}

// WithScale returns a copy with the size multiplied by scale.
// An undefined size stays undefined.
func (d Descriptor) WithScale(scale float64) Descriptor {
	if d.Size > 0 && scale > 0 {
		d.Size *= scale
	}
	return d
}

// WithVariationSettings returns a copy using vs. The slice is copied;
// passing nil resets the settings to "not given".
func (d Descriptor) WithVariationSettings(vs []Variation) Descriptor {
	if vs == nil {
		d.VariationSettings = nil
		return d
	}
	d.VariationSettings = append(make([]Variation, 0, len(vs)), vs...)
	return d
}

// String returns a CSS-like shorthand, mainly for tracing.
func (d Descriptor) String() string {
	s := "normal"
	switch d.Style {
	case font.StyleItalic:
		s = "italic"
	case font.StyleOblique:
		s = "oblique"
	}
	w := string(d.Weight)
	if w == "" {
		w = string(WeightNormal)
	}
	return s + " " + w + " " + formatFloat(d.Size) + " " + d.Family
}
