// Command fontresolve resolves a font description against an application
// folder and prints the typeface it resolves to.
//
//	fontresolve -root ./app -family "Inter, sans-serif" -weight 600 -style italic
//
// Defaults are taken from FONTRESOLVE_* environment variables.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/fontresolve/fontconf"
	"github.com/npillmayer/fontresolve/fontregistry"
	"github.com/npillmayer/fontresolve/locate"
	"github.com/npillmayer/schuko/tracing"
)

func main() {
	settings, err := fontconf.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	var family, weight, style, variations string
	var size float64
	var verbose bool
	flag.StringVar(&family, "family", "sans-serif",
		"a comma-separated list of font families")
	flag.StringVar(&weight, "weight", "normal",
		"a font weight (`normal`, `bold`, 100 ... 900)")
	flag.StringVar(&style, "style", "normal",
		"a font style (`normal`, `italic`, or `oblique`)")
	flag.Float64Var(&size, "size", 0,
		"a font size; 0 leaves the size undefined")
	flag.StringVar(&variations, "variations", "",
		"font variation settings, e.g. \"'wght' 450, 'wdth' 90\"")
	flag.StringVar(&settings.AppRoot, "root", settings.AppRoot,
		"the application folder containing fonts/")
	flag.IntVar(&settings.PlatformVersion, "version", settings.PlatformVersion,
		"the platform version to emulate")
	flag.BoolVar(&settings.SystemFonts, "system", settings.SystemFonts,
		"whether to serve generic families from installed fonts")
	flag.BoolVar(&verbose, "v", false,
		"whether to enable verbose output")
	flag.Parse()

	if verbose {
		tracing.Select("fontresolve").SetTraceLevel(tracing.LevelDebug)
	}

	desc, err := descriptor(family, weight, style, variations, size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	registry := fontregistry.NewRegistry()
	resolver := locate.NewResolver(fontconf.NewHost(settings), registry)
	tf, err := resolver.Resolve(desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", desc)
	fmt.Printf("  => %s\n", tf)
	if name := tf.FamilyName(); name != tf.Name {
		fmt.Printf("     font family: %s\n", name)
	}
	if verbose {
		registry.LogTypefaces(tracing.Select("fontresolve"))
	}
}

func descriptor(family, weight, style, variations string, size float64) (fontresolve.Descriptor, error) {
	desc := fontresolve.Default().WithFamily(family).WithSize(size)
	w, err := fontresolve.ParseWeight(weight)
	if err != nil {
		return desc, err
	}
	desc = desc.WithWeight(w)
	switch strings.ToLower(style) {
	case "", "normal":
	case "italic":
		desc = desc.WithStyle(fontresolve.StyleItalic)
	case "oblique":
		desc = desc.WithStyle(fontresolve.StyleOblique)
	default:
		return desc, fmt.Errorf("unsupported font style: %q", style)
	}
	if variations != "" {
		vs, err := fontresolve.ParseVariationSettings(variations)
		if err != nil {
			return desc, err
		}
		desc = desc.WithVariationSettings(vs)
	}
	return desc, nil
}
