package fontregistry

import (
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontresolve'
func tracer() tracing.Trace {
	return tracing.Select("fontresolve")
}

// Entry is the outcome of a resolution attempt. A nil Typeface marks a
// known failure; Err then holds the reason.
type Entry struct {
	Typeface *fontresolve.Typeface
	Err      error
}

// Failed is true if the entry records a failed attempt.
func (e Entry) Failed() bool {
	return e.Typeface == nil
}

// Registry is a type for holding the typefaces loaded for custom families,
// keyed by cache key (see CacheKey).
//
// Entries are never evicted or overwritten: the first attempt to resolve a
// key is authoritative for the lifetime of the registry, failures included.
type Registry struct {
	sync.Mutex
	typefaces map[string]Entry
}

func NewRegistry() *Registry {
	fr := &Registry{
		typefaces: make(map[string]Entry),
	}
	return fr
}

// Lookup returns the entry stored for key. The boolean result tells whether
// key has been attempted before; a failed attempt is a valid entry.
func (fr *Registry) Lookup(key string) (Entry, bool) {
	fr.Lock()
	defer fr.Unlock()
	e, ok := fr.typefaces[key]
	return e, ok
}

// Store pushes an entry into the registry if the key isn't contained yet.
//
// If the key is already associated with an entry, that entry will not be
// overridden. Store returns the entry in effect for key and whether e has
// been stored.
func (fr *Registry) Store(key string, e Entry) (Entry, bool) {
	fr.Lock()
	defer fr.Unlock()
	if existing, ok := fr.typefaces[key]; ok {
		tracer().Debugf("registry keeps first entry for %s", key)
		return existing, false
	}
	if e.Failed() {
		tracer().Debugf("registry marks %s as failed", key)
	} else {
		tracer().Debugf("registry stores typeface %s as %s", e.Typeface.Name, key)
	}
	fr.typefaces[key] = e
	return e, true
}

// Len returns the number of keys attempted so far.
func (fr *Registry) Len() int {
	fr.Lock()
	defer fr.Unlock()
	return len(fr.typefaces)
}

// LogTypefaces is a helper function to dump the list of typefaces known to a
// registry to the tracer (log-level Info).
func (fr *Registry) LogTypefaces(tracer tracing.Trace) {
	level := tracer.GetTraceLevel()
	tracer.SetTraceLevel(tracing.LevelInfo)
	fr.Lock()
	keys := make([]string, 0, len(fr.typefaces))
	for k := range fr.typefaces {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tracer.Infof("--- registered typefaces ---")
	for _, k := range keys {
		if e := fr.typefaces[k]; e.Failed() {
			tracer.Infof("typeface [%s] failed: %v", k, e.Err)
		} else {
			tracer.Infof("typeface [%s] = %s", k, e.Typeface)
		}
	}
	fr.Unlock()
	tracer.Infof("----------------------------")
	tracer.SetTraceLevel(level)
}

// KeySeparator separates the family name from the variation settings in a
// cache key.
const KeySeparator = ":"

// CacheKey computes the registry key for a custom family.
//
// Platforms supporting variation settings (version >= VersionVariations)
// load a distinct typeface per settings, so the key is family plus the
// normalized settings. Older platforms cannot apply them, and the key is
// the family name alone.
func CacheKey(family string, vs []fontresolve.Variation, version int) string {
	if version < fontresolve.VersionVariations {
		return family
	}
	return family + KeySeparator + NormalizeVariationSettings(fontresolve.VariationString(vs))
}

// NormalizeVariationSettings turns a variation settings string into a key
// fragment: quotes are removed and every white space or comma character is
// replaced by an underscore.
//
//	'wght' 400, 'wdth' 100   =>   wght_400__wdth_100
func NormalizeVariationSettings(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\'', '"':
			continue
		case ',', ' ', '\t', '\n', '\r', '\v', '\f':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
