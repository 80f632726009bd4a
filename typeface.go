package fontresolve

import (
	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// StyleFlags is a bit set of style variants requested from a platform.
type StyleFlags uint8

const (
	Bold StyleFlags = 1 << iota
	Italic
	BoldItalic StyleFlags = Bold | Italic
)

func (f StyleFlags) String() string {
	switch f {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	}
	return "normal"
}

// Typeface is a handle for a typeface created by a platform. Clients treat
// it as opaque and compare handles by identity; platforms fill in the
// fields.
//
// Typefaces are shared: a registry holds them for its lifetime, callers
// hold transient references and must not modify them.
type Typeface struct {
	Name       string       // family name, including a weight suffix for generic families
	Flags      StyleFlags   // style flags this typeface has been created with
	Path       string       // source file, empty for built-in typefaces
	Variations string       // variation settings applied at construction
	Font       *sfnt.Font   // parsed font data
	Face       *gotext.Face // variable face, set if created by a builder
	Base       *Typeface    // typeface this one has been derived from, if any
}

// FamilyName returns the family name stored in the font's name table, or
// t.Name if there is none.
func (t *Typeface) FamilyName() string {
	if t == nil {
		return ""
	}
	if t.Font != nil {
		if name, err := t.Font.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
			return name
		}
	}
	return t.Name
}

func (t *Typeface) String() string {
	if t == nil {
		return "<no typeface>"
	}
	s := t.Name + " (" + t.Flags.String() + ")"
	if t.Path != "" {
		s += " @ " + t.Path
	}
	if t.Variations != "" {
		s += " [" + t.Variations + "]"
	}
	return s
}
