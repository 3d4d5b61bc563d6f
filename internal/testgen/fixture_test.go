package testgen

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

func TestArgsStr(t *testing.T) {
	t.Run("it parses args strings", func(t *testing.T) {
		got := ArgsStr(`arg1 'arg2a "arg2b"' "arg3a 'arg3b'"`)
		want := []string{"arg1", "arg2a \"arg2b\"", "arg3a 'arg3b'"}

		if !slices.Equal(got, want) {
			t.Errorf("got %+q, but wanted %+q", got, want)
		}
	})

	t.Run("it returns nothing for a blank string", func(t *testing.T) {
		if got := ArgsStr("  "); len(got) != 0 {
			t.Errorf("got %+q, but wanted no args", got)
		}
	})
}

func TestProcessCases(t *testing.T) {
	in := strings.NewReader("simple,--one=val -ab pos\n")
	out := &bytes.Buffer{}

	if err := ProcessCases(in, out); err != nil {
		t.Fatalf("error processing cases: %v", err)
	}

	var fixtures []FixtureRecord
	if err := json.Unmarshal(out.Bytes(), &fixtures); err != nil {
		t.Fatalf("error decoding generated fixtures: %v", err)
	}
	if len(fixtures) != 1 {
		t.Fatalf("got %d fixtures, but wanted 1", len(fixtures))
	}

	f := fixtures[0]
	if f.Label != "simple" {
		t.Errorf("got label %q, but wanted %q", f.Label, "simple")
	}
	if want := []string{"--one=val", "-ab"}; !slices.Equal(f.WantOptions, want) {
		t.Errorf("got options %+q, but wanted %+q", f.WantOptions, want)
	}
	if want := []string{"pos"}; !slices.Equal(f.WantArgs, want) {
		t.Errorf("got args %+q, but wanted %+q", f.WantArgs, want)
	}

	wantValues := map[string]string{"one": "val", "a": "true", "b": "true"}
	if len(f.WantValues) != len(wantValues) {
		t.Errorf("got values %+v, but wanted %+v", f.WantValues, wantValues)
	}
	for name, want := range wantValues {
		if got := f.WantValues[name]; got != want {
			t.Errorf("value for %q is %q, but wanted %q", name, got, want)
		}
	}
}

func TestProcessCases_BadRecord(t *testing.T) {
	in := strings.NewReader("only one field\n")

	if err := ProcessCases(in, &bytes.Buffer{}); err == nil {
		t.Errorf("wanted an error for a malformed case record, but got none")
	}
}
