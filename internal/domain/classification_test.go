package domain

import "testing"

func TestParseLabel_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want Label
	}{
		{"real", LabelReal},
		{"fake", LabelFake},
		{"not-policy", LabelNotPolicy},
	}

	for _, tc := range cases {
		got, err := ParseLabel(tc.in)
		if err != nil {
			t.Errorf("ParseLabel(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseLabel_Invalid(t *testing.T) {
	for _, in := range []string{"", "REAL", "notpolicy", "unknown"} {
		if _, err := ParseLabel(in); err == nil {
			t.Errorf("ParseLabel(%q) succeeded, want error", in)
		}
	}
}

func TestLabels_TieBreakOrder(t *testing.T) {
	// Dataset voting resolves ties by traversal order: real, fake, not-policy.
	want := []Label{LabelReal, LabelFake, LabelNotPolicy}
	if len(Labels) != len(want) {
		t.Fatalf("Labels has %d entries, want %d", len(Labels), len(want))
	}
	for i, l := range want {
		if Labels[i] != l {
			t.Errorf("Labels[%d] = %q, want %q", i, Labels[i], l)
		}
	}
}
