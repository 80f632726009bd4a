/*
Package gofonts is a platform for hosts without a native font system.

Generic families are served from the Go font family
(https://go.dev/blog/go-fonts), or, if enabled, from well-known fonts
installed on the system. Font files are parsed with
golang.org/x/image/font/opentype; the typeface builder uses
github.com/go-text/typesetting to apply variation settings.
*/
package gofonts

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/fontresolve/platform"
	"github.com/npillmayer/fontresolve/platform/systemfont"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontresolve'
func tracer() tracing.Trace {
	return tracing.Select("fontresolve")
}

var (
	_ platform.Factory        = (*Platform)(nil)
	_ platform.BuilderFactory = (*Platform)(nil)
)

type createKey struct {
	family string
	flags  fontresolve.StyleFlags
}

type deriveKey struct {
	base  *fontresolve.Typeface
	flags fontresolve.StyleFlags
}

// Platform implements platform.Factory and platform.BuilderFactory.
//
// Typefaces for generic families and derived typefaces are created once
// and handed out repeatedly, i.e. they may be compared by identity.
//
// Platform is safe for concurrent use.
type Platform struct {
	mu      sync.Mutex
	created map[createKey]*fontresolve.Typeface
	derived map[deriveKey]*fontresolve.Typeface

	system    *systemfont.Locator
	noBuilder bool
}

// Option configures a Platform.
type Option func(*Platform)

// WithSystemFonts lets generic families be served by installed fonts, if
// available. io may be nil.
func WithSystemFonts(appkey string, io systemfont.IO) Option {
	return func(p *Platform) {
		p.system = systemfont.New(appkey, io)
	}
}

// WithoutBuilder makes NewBuilder fail with fontresolve.ErrBuilderUnavailable.
func WithoutBuilder() Option {
	return func(p *Platform) {
		p.noBuilder = true
	}
}

// New creates a platform.
func New(opts ...Option) *Platform {
	p := &Platform{
		created: make(map[createKey]*fontresolve.Typeface),
		derived: make(map[deriveKey]*fontresolve.Typeface),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Create returns a typeface for a generic family, possibly carrying a weight
// suffix, e.g. "serif-light". Create never returns nil.
func (p *Platform) Create(family string, flags fontresolve.StyleFlags) *fontresolve.Typeface {
	key := createKey{family: strings.ToLower(family), flags: flags}
	p.mu.Lock()
	defer p.mu.Unlock()
	if tf, ok := p.created[key]; ok {
		return tf
	}
	generic, suffix := splitGeneric(family)
	tf := p.systemTypeface(generic, flags)
	if tf == nil {
		name, data := packaged(generic, suffix, flags)
		tf = &fontresolve.Typeface{Flags: flags}
		if f, err := opentype.Parse(data); err != nil {
			tracer().Errorf("cannot parse packaged font %s: %v", name, err)
		} else {
			tf.Font = f
		}
	}
	tf.Name = generic + suffix
	tracer().Debugf("platform created typeface %s for %s", tf, family)
	p.created[key] = tf
	return tf
}

func (p *Platform) systemTypeface(generic string, flags fontresolve.StyleFlags) *fontresolve.Typeface {
	if p.system == nil {
		return nil
	}
	fsys, fpath, err := p.system.Locate(generic, flags)
	if err != nil {
		return nil
	}
	f, err := parseFile(fsys, fpath)
	if err != nil {
		tracer().Infof("cannot use system font %s: %v", fpath, err)
		return nil
	}
	return &fontresolve.Typeface{Flags: flags, Path: fpath, Font: f}
}

// Derive returns a variant of base using different style flags. If base
// already has the flags requested, base is returned.
func (p *Platform) Derive(base *fontresolve.Typeface, flags fontresolve.StyleFlags) *fontresolve.Typeface {
	if base == nil || base.Flags == flags {
		return base
	}
	key := deriveKey{base: base, flags: flags}
	p.mu.Lock()
	defer p.mu.Unlock()
	if tf, ok := p.derived[key]; ok {
		return tf
	}
	tf := *base
	tf.Flags = flags
	tf.Base = base
	p.derived[key] = &tf
	return &tf
}

// CreateFromFile parses the font file at fpath within assets.
func (p *Platform) CreateFromFile(assets fs.FS, fpath string) (*fontresolve.Typeface, error) {
	f, err := parseFile(assets, fpath)
	if err != nil {
		return nil, err
	}
	return &fontresolve.Typeface{
		Name: familyName(f, fpath),
		Path: fpath,
		Font: f,
	}, nil
}

func parseFile(fsys fs.FS, fpath string) (*sfnt.Font, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no file system to read %s from", fpath)
	}
	data, err := fs.ReadFile(fsys, fpath)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

func familyName(f *sfnt.Font, fpath string) string {
	if f != nil {
		if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
			return name
		}
	}
	base := path.Base(fpath)
	return strings.TrimSuffix(base, path.Ext(base))
}
