package models

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"214.7M", 225129267},
		{"17.5M", 18350080},
		{"0.5M", 524288},
		{"0M", 0},
		{"1024M", 1073741824},
	}
	for _, tc := range cases {
		got, err := ParseSize(tc.in)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSize(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseSize_BadSuffix(t *testing.T) {
	for _, in := range []string{"214.7G", "214.7", "214.7K", ""} {
		_, err := ParseSize(in)
		if err == nil {
			t.Fatalf("ParseSize(%q) succeeded, want error", in)
		}
		var unitErr *UnitError
		if !errors.As(err, &unitErr) {
			t.Fatalf("ParseSize(%q) error = %T, want *UnitError", in, err)
		}
		if unitErr.Input != in {
			t.Fatalf("UnitError.Input = %q, want %q", unitErr.Input, in)
		}
		if in != "" && !strings.Contains(err.Error(), in[len(in)-1:]) {
			t.Fatalf("error %q does not name the bad suffix %q", err, in[len(in)-1:])
		}
	}
}

func TestParseSize_BadValue(t *testing.T) {
	if _, err := ParseSize("abcM"); err == nil {
		t.Fatal("ParseSize(\"abcM\") succeeded, want error")
	}
}

func TestParsePercent(t *testing.T) {
	got, err := ParsePercent("8%")
	if err != nil {
		t.Fatalf("ParsePercent returned error: %v", err)
	}
	if got != 8 {
		t.Fatalf("ParsePercent(\"8%%\") = %d, want 8", got)
	}

	if got, err = ParsePercent("100%"); err != nil || got != 100 {
		t.Fatalf("ParsePercent(\"100%%\") = %d, %v, want 100, nil", got, err)
	}
}

func TestParsePercent_BadSuffix(t *testing.T) {
	for _, in := range []string{"8", "", "8M"} {
		_, err := ParsePercent(in)
		if err == nil {
			t.Fatalf("ParsePercent(%q) succeeded, want error", in)
		}
		var unitErr *UnitError
		if !errors.As(err, &unitErr) {
			t.Fatalf("ParsePercent(%q) error = %T, want *UnitError", in, err)
		}
	}
}
