package gofonts

import (
	"bytes"
	"fmt"
	"io/fs"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/fontresolve/platform"
	"golang.org/x/image/font/opentype"
)

// NewBuilder reads the font file at fpath and returns a builder for it.
func (p *Platform) NewBuilder(assets fs.FS, fpath string) (platform.Builder, error) {
	if p.noBuilder {
		return nil, fontresolve.ErrBuilderUnavailable
	}
	if assets == nil {
		return nil, fmt.Errorf("no file system to read %s from", fpath)
	}
	data, err := fs.ReadFile(assets, fpath)
	if err != nil {
		return nil, err
	}
	return &builder{path: fpath, data: data}, nil
}

type builder struct {
	path     string
	data     []byte
	settings string
}

func (b *builder) SetVariationSettings(settings string) platform.Builder {
	b.settings = settings
	return b
}

// Build parses the font data twice: into an sfnt.Font for metrics and
// rasterizing, and into a go-text face carrying the variation coordinates.
func (b *builder) Build() (*fontresolve.Typeface, error) {
	f, err := opentype.Parse(b.data)
	if err != nil {
		return nil, err
	}
	face, err := gotext.ParseTTF(bytes.NewReader(b.data))
	if err != nil {
		return nil, err
	}
	if b.settings != "" {
		vs, err := fontresolve.ParseVariationSettings(b.settings)
		if err != nil {
			return nil, err
		}
		variations := make([]gotext.Variation, 0, len(vs))
		for _, v := range vs {
			if len(v.Axis) != 4 {
				return nil, fmt.Errorf("invalid variation axis tag %q", v.Axis)
			}
			variations = append(variations, gotext.Variation{
				Tag:   ot.MustNewTag(v.Axis),
				Value: float32(v.Value),
			})
		}
		face.SetVariations(variations)
	}
	return &fontresolve.Typeface{
		Name:       familyName(f, b.path),
		Path:       b.path,
		Variations: b.settings,
		Font:       f,
		Face:       face,
	}, nil
}
