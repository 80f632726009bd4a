package fontregistry

import (
	"errors"
	"testing"

	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeVariationSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	for in, expected := range map[string]string{
		"'wght' 400, 'wdth' 100": "wght_400__wdth_100",
		`"slnt" -10,"ital" 1`:    "slnt_-10_ital_1",
		"'wght'\t700":            "wght_700",
		"":                       "",
	} {
		if n := NormalizeVariationSettings(in); n != expected {
			t.Errorf("expected %q for %q, got %q", expected, in, n)
		}
	}
}

func TestCacheKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	vs := []fontresolve.Variation{{Axis: "wght", Value: 400}, {Axis: "wdth", Value: 87.5}}
	if k := CacheKey("Inter", vs, 26); k != "Inter:wght_400__wdth_87.5" {
		t.Errorf("unexpected cache key %q", k)
	}
	if k := CacheKey("Inter", nil, 26); k != "Inter:" {
		t.Errorf("unexpected cache key without settings %q", k)
	}
	if k := CacheKey("Inter", vs, 25); k != "Inter" {
		t.Errorf("expected variation settings to be ignored on old platforms, got %q", k)
	}
}

func TestRegistryFirstWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	fr := NewRegistry()
	if _, ok := fr.Lookup("Clarendon"); ok {
		t.Fatal("expected empty registry")
	}
	failure := Entry{Err: fontresolve.ErrFontFileNotFound}
	if _, stored := fr.Store("Clarendon", failure); !stored {
		t.Fatal("expected first entry to be stored")
	}
	tf := &fontresolve.Typeface{Name: "Clarendon"}
	e, stored := fr.Store("Clarendon", Entry{Typeface: tf})
	if stored {
		t.Fatal("expected second entry to be rejected")
	}
	if !e.Failed() || !errors.Is(e.Err, fontresolve.ErrFontFileNotFound) {
		t.Fatalf("expected failure entry to stay authoritative, got %+v", e)
	}
	e, ok := fr.Lookup("Clarendon")
	if !ok || e.Typeface != nil {
		t.Fatalf("expected cached failure, got %+v", e)
	}
	if fr.Len() != 1 {
		t.Errorf("expected 1 entry, have %d", fr.Len())
	}
}

func TestRegistryStoresTypeface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontresolve")
	defer teardown()
	//
	fr := NewRegistry()
	tf := &fontresolve.Typeface{Name: "Gill Sans", Path: "app/fonts/Gill Sans.ttf"}
	fr.Store("Gill Sans:", Entry{Typeface: tf})
	e, ok := fr.Lookup("Gill Sans:")
	if !ok || e.Typeface != tf {
		t.Fatalf("expected identical typeface from registry, got %+v", e)
	}
	fr.LogTypefaces(tracer())
}
