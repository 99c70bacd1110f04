package main

import "testing"

func TestSplitCommand(t *testing.T) {
	cases := []struct {
		name string
		line string
		verb string
		arg  string
	}{
		{"bare verb", "back", "back", ""},
		{"verb case folded", "SHOW", "show", ""},
		{"arg keeps case", "stop Pier21A", "stop", "Pier21A"},
		{"verb folded arg kept", "STOP Pier21A", "stop", "Pier21A"},
		{"arg trimmed", "route  10 ", "route", "10"},
		{"empty line", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verb, arg := splitCommand(tc.line)
			if verb != tc.verb || arg != tc.arg {
				t.Errorf("splitCommand(%q) = (%q, %q), want (%q, %q)",
					tc.line, verb, arg, tc.verb, tc.arg)
			}
		})
	}
}
