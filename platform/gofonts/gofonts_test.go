package gofonts

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestCreateGenericFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	p := New()
	for _, c := range []struct {
		family string
		flags  fontresolve.StyleFlags
		name   string
		font   string
	}{
		{"sans-serif", 0, "sans-serif", "Go"},
		{"sans-serif-medium", fontresolve.Italic, "sans-serif-medium", "Go Medium"},
		{"serif-light", fontresolve.Bold, "serif-light", "Go"},
		{"monospace", fontresolve.BoldItalic, "monospace", "Go Mono"},
		{"cursive", 0, "sans-serif", "Go"},
	} {
		tf := p.Create(c.family, c.flags)
		if tf == nil || tf.Font == nil {
			t.Fatalf("expected parsed typeface for %s", c.family)
		}
		if tf.Name != c.name {
			t.Errorf("expected typeface name %s, got %s", c.name, tf.Name)
		}
		if tf.Flags != c.flags {
			t.Errorf("expected flags %s for %s, got %s", c.flags, c.family, tf.Flags)
		}
		if fam := tf.FamilyName(); fam != c.font {
			t.Errorf("expected %s to be served by %q, got %q", c.family, c.font, fam)
		}
	}
}

func TestCreateIsMemoized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	p := New()
	a := p.Create("serif", fontresolve.Bold)
	b := p.Create("SERIF", fontresolve.Bold)
	if a != b {
		t.Errorf("expected identical typeface for repeated Create")
	}
	if c := p.Create("serif", 0); c == a {
		t.Errorf("expected different typeface for different flags")
	}
}

func TestDerive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	p := New()
	base := p.Create("monospace", 0)
	if p.Derive(base, 0) != base {
		t.Errorf("expected base to be returned for equal flags")
	}
	d := p.Derive(base, fontresolve.Italic)
	if d == base || d.Base != base || d.Flags != fontresolve.Italic {
		t.Fatalf("unexpected derived typeface %v", d)
	}
	if p.Derive(base, fontresolve.Italic) != d {
		t.Errorf("expected derived typeface to be memoized")
	}
	if p.Derive(nil, fontresolve.Bold) != nil {
		t.Errorf("expected nil for nil base")
	}
}

func TestCreateFromFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	assets := fstest.MapFS{
		"fonts/Mono.ttf":   &fstest.MapFile{Data: gomono.TTF},
		"fonts/Broken.ttf": &fstest.MapFile{Data: []byte("dummy")},
	}
	p := New()
	tf, err := p.CreateFromFile(assets, "fonts/Mono.ttf")
	if err != nil {
		t.Fatal(err)
	}
	if tf.Name != "Go Mono" || tf.Path != "fonts/Mono.ttf" {
		t.Errorf("unexpected typeface %v", tf)
	}
	if _, err = p.CreateFromFile(assets, "fonts/Broken.ttf"); err == nil {
		t.Errorf("expected parse error for broken font file")
	}
	if _, err = p.CreateFromFile(nil, "fonts/Mono.ttf"); err == nil {
		t.Errorf("expected error without assets")
	}
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	assets := fstest.MapFS{
		"fonts/Regular.ttf": &fstest.MapFile{Data: goregular.TTF},
	}
	p := New()
	b, err := p.NewBuilder(assets, "fonts/Regular.ttf")
	if err != nil {
		t.Fatal(err)
	}
	tf, err := b.SetVariationSettings("").Build()
	if err != nil {
		t.Fatal(err)
	}
	if tf.Face == nil || tf.Font == nil {
		t.Fatalf("expected builder to produce a face and a font")
	}
	if tf.Name != "Go" {
		t.Errorf("expected family name Go, got %q", tf.Name)
	}
	b, _ = p.NewBuilder(assets, "fonts/Regular.ttf")
	if _, err = b.SetVariationSettings("'wght' heavy").Build(); err == nil {
		t.Errorf("expected malformed variation settings to fail")
	}
	if _, err = p.NewBuilder(assets, "fonts/Missing.ttf"); err == nil {
		t.Errorf("expected missing file to fail")
	}
}

func TestWithoutBuilder(t *testing.T) {
	p := New(WithoutBuilder())
	_, err := p.NewBuilder(fstest.MapFS{}, "fonts/X.ttf")
	if !errors.Is(err, fontresolve.ErrBuilderUnavailable) {
		t.Errorf("expected ErrBuilderUnavailable, got %v", err)
	}
}
