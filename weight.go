package fontresolve

import (
	"strconv"
	"strings"

	"golang.org/x/image/font"
)

// Weight is a font weight as given by styling, either a keyword or a
// numeric value in string form.
type Weight string

const (
	WeightThin       Weight = "100"
	WeightExtraLight Weight = "200"
	WeightLight      Weight = "300"
	WeightNormal     Weight = "normal"
	WeightMedium     Weight = "500"
	WeightSemiBold   Weight = "600"
	WeightBold       Weight = "bold"
	WeightExtraBold  Weight = "800"
	WeightBlack      Weight = "900"
)

// Platform version floors.
const (
	VersionThinLight   = 16 // "-thin" and "-light" family variants
	VersionMediumBlack = 21 // "-medium" and "-black" family variants
	VersionVariations  = 26 // typeface builder and variation settings
)

var weightAliases = map[Weight]Weight{
	"":            WeightNormal,
	"400":         WeightNormal,
	"700":         WeightBold,
	"thin":        WeightThin,
	"extra-light": WeightExtraLight,
	"light":       WeightLight,
	"medium":      WeightMedium,
	"semi-bold":   WeightSemiBold,
	"extra-bold":  WeightExtraBold,
	"black":       WeightBlack,
}

// canonicalWeight maps w onto one of the Weight constants.
func canonicalWeight(w Weight) (Weight, bool) {
	switch w {
	case WeightThin, WeightExtraLight, WeightLight, WeightNormal, WeightMedium,
		WeightSemiBold, WeightBold, WeightExtraBold, WeightBlack:
		return w, true
	}
	if c, ok := weightAliases[w]; ok {
		return c, true
	}
	return w, false
}

// NumericWeight stringifies a numeric weight. The result is matched like
// any other weight string, i.e. only multiples of 100 known to the
// vocabulary will be accepted by WeightSuffix.
func NumericWeight(n int) Weight {
	return Weight(strconv.Itoa(n))
}

// ParseWeight validates a weight given by a user. Surrounding white space
// is ignored and keywords are matched case-insensitively.
func ParseWeight(s string) (Weight, error) {
	w := Weight(strings.ToLower(strings.TrimSpace(s)))
	if c, ok := canonicalWeight(w); ok {
		return c, nil
	}
	return w, &InvalidWeightError{Weight: w}
}

// WeightSuffix returns the suffix to append to a generic family name to
// select a weight-specific family variant, for a given platform version.
//
// Below the version floor of a variant the suffix is empty, and the weight
// degrades to the base family plus style flags. Bold weights never get a
// suffix, as bold is expressed with style flags.
//
// An unknown weight results in an *InvalidWeightError.
func WeightSuffix(w Weight, version int) (string, error) {
	c, ok := canonicalWeight(w)
	if !ok {
		tracer().Errorf("invalid font weight %q", string(w))
		return "", &InvalidWeightError{Weight: w}
	}
	switch c {
	case WeightThin:
		return gated("-thin", version, VersionThinLight), nil
	case WeightExtraLight, WeightLight:
		return gated("-light", version, VersionThinLight), nil
	case WeightNormal:
		return "", nil
	case WeightMedium, WeightSemiBold:
		return gated("-medium", version, VersionMediumBlack), nil
	case WeightBold, WeightExtraBold:
		return "", nil
	case WeightBlack:
		return gated("-black", version, VersionMediumBlack), nil
	}
	return "", &InvalidWeightError{Weight: w}
}

func gated(suffix string, version, floor int) string {
	if version >= floor {
		return suffix
	}
	return ""
}

// XWeight converts w to the weight type of golang.org/x/image/font.
// Unknown weights map to font.WeightNormal.
func XWeight(w Weight) font.Weight {
	c, _ := canonicalWeight(w)
	switch c {
	case WeightThin:
		return font.WeightThin
	case WeightExtraLight:
		return font.WeightExtraLight
	case WeightLight:
		return font.WeightLight
	case WeightMedium:
		return font.WeightMedium
	case WeightSemiBold:
		return font.WeightSemiBold
	case WeightBold:
		return font.WeightBold
	case WeightExtraBold:
		return font.WeightExtraBold
	case WeightBlack:
		return font.WeightBlack
	}
	return font.WeightNormal
}
