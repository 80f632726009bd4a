package fontresolve

import (
	"fmt"
	"strconv"
	"strings"
)

// Variation is a single axis setting for a variable font, e.g. 'wght' 450.
type Variation struct {
	Axis  string
	Value float64
}

func (v Variation) String() string {
	return "'" + v.Axis + "' " + formatFloat(v.Value)
}

// VariationString renders variation settings in the form used by CSS
// font-variation-settings and by typeface builders:
//
//	'wght' 400, 'wdth' 100
//
// Nil or empty settings render as "".
func VariationString(vs []Variation) string {
	if len(vs) == 0 {
		return ""
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// ParseVariationSettings parses a CSS font-variation-settings value.
// "normal" and the empty string yield an empty, non-nil list. Axis tags have
// to be quoted and consist of exactly four characters.
func ParseVariationSettings(s string) ([]Variation, error) {
	s = strings.TrimSpace(s)
	vs := []Variation{}
	if s == "" || strings.EqualFold(s, "normal") {
		return vs, nil
	}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if len(item) < 6 || (item[0] != '\'' && item[0] != '"') || item[5] != item[0] {
			return nil, fmt.Errorf("malformed font variation setting %q", item)
		}
		axis := item[1:5]
		value, err := strconv.ParseFloat(strings.TrimSpace(item[6:]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed value in font variation setting %q: %w", item, err)
		}
		vs = append(vs, Variation{Axis: axis, Value: value})
	}
	return vs, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
