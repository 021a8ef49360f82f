package theme

import "testing"

func TestForNameFallsBackToDark(t *testing.T) {
	cases := map[string]string{
		"light":   Light,
		"dark":    Dark,
		"":        Dark,
		"solaris": Dark,
	}
	for input, want := range cases {
		if got := ForName(input).Name; got != want {
			t.Fatalf("ForName(%q) = %q, want %q", input, got, want)
		}
	}
	if Default() != ForName(Dark) {
		t.Fatal("expected default to be the dark set")
	}
}
