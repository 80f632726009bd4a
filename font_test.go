package fontresolve

import (
	"testing"
)

func TestDefaultDescriptor(t *testing.T) {
	d := Default()
	if d.Family != "" || d.Size != 0 || d.Style != StyleNormal || d.Weight != WeightNormal {
		t.Errorf("unexpected default descriptor %+v", d)
	}
	if d.VariationSettings != nil {
		t.Errorf("expected no variation settings for default")
	}
	if d.Flags() != 0 {
		t.Errorf("expected no style flags for default, got %s", d.Flags())
	}
}

func TestDescriptorFlags(t *testing.T) {
	for _, c := range []struct {
		d     Descriptor
		flags StyleFlags
	}{
		{Default().WithWeight(WeightSemiBold), Bold},
		{Default().WithWeight("700"), Bold},
		{Default().WithWeight(WeightBlack).WithStyle(StyleItalic), BoldItalic},
		{Default().WithWeight(WeightMedium).WithStyle(StyleOblique), Italic},
		{Default().WithWeight(WeightLight), 0},
	} {
		if c.d.Flags() != c.flags {
			t.Errorf("expected flags %s for %s, got %s", c.flags, c.d, c.d.Flags())
		}
	}
}

func TestDescriptorCopies(t *testing.T) {
	vs := []Variation{{Axis: "wght", Value: 300}}
	d := Default().WithFamily("Antic").WithSize(10).WithVariationSettings(vs)
	vs[0].Value = 900
	if d.VariationSettings[0].Value != 300 {
		t.Errorf("expected descriptor to own its variation settings")
	}
	if s := d.WithScale(2).Size; s != 20 {
		t.Errorf("expected scaled size 20, got %v", s)
	}
	if d.Size != 10 {
		t.Errorf("expected original descriptor to be unchanged")
	}
	if s := Default().WithScale(2).Size; s != 0 {
		t.Errorf("expected undefined size to stay undefined, got %v", s)
	}
	if d.WithVariationSettings(nil).VariationSettings != nil {
		t.Errorf("expected nil to reset variation settings")
	}
	if s := d.WithStyle(StyleItalic).WithWeight(WeightBold).String(); s != "italic bold 10 Antic" {
		t.Errorf("unexpected string form %q", s)
	}
}

func TestVariationSettings(t *testing.T) {
	vs, err := ParseVariationSettings(`'wght' 400, "wdth" 87.5`)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 || vs[0] != (Variation{"wght", 400}) || vs[1] != (Variation{"wdth", 87.5}) {
		t.Fatalf("unexpected variation settings %v", vs)
	}
	if s := VariationString(vs); s != "'wght' 400, 'wdth' 87.5" {
		t.Errorf("unexpected string form %q", s)
	}
	vs, err = ParseVariationSettings("normal")
	if err != nil || vs == nil || len(vs) != 0 {
		t.Errorf("expected empty settings for 'normal', got %v (%v)", vs, err)
	}
	for _, bad := range []string{"wght 400", "'wg' 1", "'wght' x"} {
		if _, err = ParseVariationSettings(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
