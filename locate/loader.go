package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/fontresolve/fontregistry"
	"github.com/npillmayer/fontresolve/platform"
)

// Font file extensions, in probing order.
var fontExtensions = [...]string{".ttf", ".otf"}

// Loader loads typefaces for custom families from font files located at
// <app-root>/fonts/<family>.ttf or <app-root>/fonts/<family>.otf.
//
// Every outcome, failures included, is stored in the registry and will be
// returned for subsequent requests with the same cache key; failed loads
// are not retried.
type Loader struct {
	host     platform.Host
	registry *fontregistry.Registry

	assetsMu sync.Mutex
	assets   fs.FS // fetched on first use, kept once available
}

// NewLoader creates a loader for a host. If registry is nil, the loader
// will use a registry of its own.
func NewLoader(host platform.Host, registry *fontregistry.Registry) *Loader {
	if registry == nil {
		registry = fontregistry.NewRegistry()
	}
	return &Loader{host: host, registry: registry}
}

// Registry returns the registry the loader stores its results in.
func (l *Loader) Registry() *fontregistry.Registry {
	return l.registry
}

// Locator returns l.Load as a Locator.
func (l *Loader) Locator() Locator {
	return l.Load
}

// Load returns the typeface for a custom family.
//
// If the application assets are unavailable, Load fails with
// fontresolve.ErrAssetsUnavailable; this outcome is not cached.
func (l *Loader) Load(family string, desc fontresolve.Descriptor) Result {
	key := fontregistry.CacheKey(family, desc.VariationSettings, l.host.Version)
	assets := l.appAssets()
	if assets == nil {
		tracer().Infof("no application assets, cannot load font %s", family)
		return Result{Err: fontresolve.ErrAssetsUnavailable}
	}
	if e, ok := l.registry.Lookup(key); ok {
		return Result{Typeface: e.Typeface, Err: e.Err}
	}
	var r Result
	if fpath, err := l.probe(family); err != nil {
		tracer().Errorf("%v", err)
		r.Err = err
	} else {
		r = l.construct(assets, family, fpath, desc)
	}
	e, _ := l.registry.Store(key, fontregistry.Entry{Typeface: r.Typeface, Err: r.Err})
	return Result{Typeface: e.Typeface, Err: e.Err}
}

func (l *Loader) appAssets() fs.FS {
	l.assetsMu.Lock()
	defer l.assetsMu.Unlock()
	if l.assets == nil && l.host.Assets != nil {
		l.assets = l.host.Assets()
	}
	return l.assets
}

// probe looks for a font file for family, trying .ttf before .otf.
func (l *Loader) probe(family string) (string, error) {
	files := l.host.Files
	if files == nil {
		return "", &fontresolve.FontFileNotFoundError{Family: family}
	}
	base := files.Join(files.AppRoot(), platform.FontsFolder, family)
	probed := make([]string, 0, len(fontExtensions))
	for _, ext := range fontExtensions {
		fpath := base + ext
		if files.Exists(fpath) {
			tracer().Debugf("found font file %s", fpath)
			return fpath, nil
		}
		probed = append(probed, fpath)
	}
	return "", &fontresolve.FontFileNotFoundError{Family: family, Probed: probed}
}

// construct asks the platform for a typeface from fpath. Errors and panics
// of the platform are reported as *fontresolve.ConstructionError.
func (l *Loader) construct(assets fs.FS, family, fpath string, desc fontresolve.Descriptor) (r Result) {
	defer func() {
		if x := recover(); x != nil {
			r = Result{Err: &fontresolve.ConstructionError{Path: fpath, Err: fmt.Errorf("%v", x)}}
		}
		if r.Err != nil {
			tracer().Errorf("%v", r.Err)
		}
	}()
	var tf *fontresolve.Typeface
	var err error
	if l.host.Version >= fontresolve.VersionVariations {
		tf, err = l.build(assets, family, fpath, desc)
	} else {
		tf, err = l.host.Factory.CreateFromFile(assets, fpath)
	}
	if err == nil && tf == nil {
		err = errors.New("platform returned no typeface")
	}
	if err != nil {
		return Result{Err: &fontresolve.ConstructionError{Path: fpath, Err: err}}
	}
	return Result{Typeface: tf}
}

// build uses the platform's typeface builder, if there is one, falling back
// to plain construction from the file otherwise.
func (l *Loader) build(assets fs.FS, family, fpath string, desc fontresolve.Descriptor) (*fontresolve.Typeface, error) {
	if bf, ok := l.host.Factory.(platform.BuilderFactory); ok {
		b, err := bf.NewBuilder(assets, fpath)
		if err == nil {
			if desc.VariationSettings != nil {
				b = b.SetVariationSettings(fontresolve.VariationString(desc.VariationSettings))
			}
			return b.Build()
		}
		if !errors.Is(err, fontresolve.ErrBuilderUnavailable) {
			return nil, err
		}
	}
	tf, err := l.host.Factory.CreateFromFile(assets, fpath)
	tracer().Errorf("could not create builder for %s: %v", family, fontresolve.ErrBuilderUnavailable)
	return tf, err
}
