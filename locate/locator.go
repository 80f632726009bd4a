/*
Package locate resolves font descriptors to typefaces.

A Resolver walks the family list of a descriptor. Generic families are
created by the platform's factory, custom families are handed to a
Locator, usually a Loader, which looks for font files packaged with the
application and caches the outcome in a registry.

Resolution happens synchronously on the calling goroutine. Disk access
occurs only on the first attempt to load a custom family; later attempts
are served from the registry, including failed ones.
*/
package locate

import (
	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontresolve'
func tracer() tracing.Trace {
	return tracing.Select("fontresolve")
}

// Result is the outcome of loading a custom family. Either Typeface is set,
// or Err holds the reason for the failure.
type Result struct {
	Typeface *fontresolve.Typeface
	Err      error
}

// OK is true if a typeface has been loaded.
func (r Result) OK() bool {
	return r.Typeface != nil
}

// Locator loads a typeface for a single custom family name, using the
// remaining properties of desc (variation settings) as needed.
type Locator func(family string, desc fontresolve.Descriptor) Result
