package locate

import (
	"strings"
	"sync"

	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/fontresolve/fontregistry"
	"github.com/npillmayer/fontresolve/platform"
	"golang.org/x/text/cases"
)

// Generic family keywords.
const (
	GenericSerif     = "serif"
	GenericSansSerif = "sans-serif"
	GenericSystem    = "system"
	GenericMonospace = "monospace"
)

// Resolver maps font descriptors to typefaces of a platform.
type Resolver struct {
	host   platform.Host
	custom Locator
}

// NewResolver creates a resolver for a host, loading custom families with a
// Loader which caches in registry. registry may be nil.
func NewResolver(host platform.Host, registry *fontregistry.Registry) *Resolver {
	return NewResolverWithLocator(host, NewLoader(host, registry).Locator())
}

// NewResolverWithLocator creates a resolver for a host, loading custom
// families with loc.
func NewResolverWithLocator(host platform.Host, loc Locator) *Resolver {
	return &Resolver{host: host, custom: loc}
}

// ParseFamilies splits a font-family list into family names. Names are
// trimmed and unquoted, empty entries are dropped.
func ParseFamilies(family string) []string {
	var families []string
	for _, f := range strings.Split(family, ",") {
		f = strings.Trim(strings.TrimSpace(f), `'"`)
		if f = strings.TrimSpace(f); f != "" {
			families = append(families, f)
		}
	}
	return families
}

// genericFamily returns the platform family serving a generic keyword, or
// "" for custom families. Keywords are matched case-insensitively.
func genericFamily(name string) string {
	switch cases.Fold().String(name) {
	case GenericSerif:
		return "serif"
	case GenericSansSerif, GenericSystem:
		return "sans-serif"
	case GenericMonospace:
		return "monospace"
	}
	return ""
}

// Resolve returns a typeface for desc.
//
// Resolve walks the family list of desc and uses the first family yielding
// a typeface. Generic families always yield one. Custom families are loaded
// by the resolver's Locator and styled with the descriptor's style flags.
// If no family yields a typeface, the platform's sans-serif family is used.
//
// The weight of desc is mapped to a family suffix only for generic families
// and the final fallback. An *fontresolve.InvalidWeightError is returned
// when such a family is reached with a weight outside the known vocabulary;
// a custom family found earlier in the list is returned regardless.
// Otherwise the typeface is non-nil.
func (r *Resolver) Resolve(desc fontresolve.Descriptor) (*fontresolve.Typeface, error) {
	flags := desc.Flags()
	factory := r.host.Factory
	for _, family := range ParseFamilies(desc.Family) {
		if generic := genericFamily(family); generic != "" {
			suffix, err := fontresolve.WeightSuffix(desc.Weight, r.host.Version)
			if err != nil {
				return nil, err
			}
			tf := factory.Create(generic+suffix, flags)
			tracer().Debugf("font %s resolved to %s", desc, tf)
			return tf, nil
		}
		if tf := r.customTypeface(family, desc, flags); tf != nil {
			tracer().Debugf("font %s resolved to %s", desc, tf)
			return tf, nil
		}
	}
	suffix, err := fontresolve.WeightSuffix(desc.Weight, r.host.Version)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("font %s falls back to sans-serif%s", desc, suffix)
	return factory.Create("sans-serif"+suffix, flags), nil
}

// customTypeface loads family with the resolver's Locator, deriving a
// styled variant if flags are set. It returns nil if family is unavailable.
func (r *Resolver) customTypeface(family string, desc fontresolve.Descriptor, flags fontresolve.StyleFlags) *fontresolve.Typeface {
	if r.custom == nil {
		return nil
	}
	res := r.custom(family, desc)
	if res.Err != nil {
		tracer().Debugf("custom family %s unavailable: %v", family, res.Err)
	}
	tf := res.Typeface
	if tf != nil && flags != 0 {
		tf = r.host.Factory.Derive(tf, flags)
	}
	return tf
}

// Font binds a descriptor to a resolver and memoizes its typeface.
type Font struct {
	desc     fontresolve.Descriptor
	resolver *Resolver

	once     sync.Once
	typeface *fontresolve.Typeface
	err      error
}

// Font creates a font for desc. The typeface is resolved on first use.
func (r *Resolver) Font(desc fontresolve.Descriptor) *Font {
	return &Font{desc: desc, resolver: r}
}

func (f *Font) Descriptor() fontresolve.Descriptor {
	return f.desc
}

// Typeface resolves the font's typeface once and returns the result on
// every call.
func (f *Font) Typeface() (*fontresolve.Typeface, error) {
	f.once.Do(func() {
		f.typeface, f.err = f.resolver.Resolve(f.desc)
	})
	return f.typeface, f.err
}

// With returns a font for a modified descriptor, e.g.
//
//	bold := f.With(f.Descriptor().WithWeight(fontresolve.WeightBold))
func (f *Font) With(desc fontresolve.Descriptor) *Font {
	return f.resolver.Font(desc)
}

// WithScale returns a font with the size scaled by scale.
func (f *Font) WithScale(scale float64) *Font {
	return f.resolver.Font(f.desc.WithScale(scale))
}
