// Package testgen regenerates the golden fixtures replayed by the
// fixtures test. It reads labeled case records, runs the classifier and
// option decoder over them, and writes the observed results as JSON for
// review and committing.
package testgen

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davrell/cliargs"
)

type caseRecord struct {
	Label   string
	ArgsStr string
}

func (c caseRecord) Args() []string {
	return ArgsStr(c.ArgsStr)
}

// FixtureRecord is one golden entry in testdata/fixtures.json.
type FixtureRecord struct {
	Label       string            `json:"label"`
	ArgsStr     string            `json:"args"`
	WantOptions []string          `json:"want_options"`
	WantArgs    []string          `json:"want_args"`
	WantValues  map[string]string `json:"want_values"`
}

// ProcessCases reads label,args case records from r and writes the
// fixture records for them to w.
func ProcessCases(r io.Reader, w io.Writer) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	var fixtures []FixtureRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading case record: %w", err)
		}
		fixtures = append(fixtures, generate(caseRecord{Label: record[0], ArgsStr: record[1]}))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fixtures); err != nil {
		return fmt.Errorf("error writing fixtures: %w", err)
	}
	return nil
}

func generate(c caseRecord) FixtureRecord {
	args := c.Args()
	f := FixtureRecord{
		Label:       c.Label,
		ArgsStr:     c.ArgsStr,
		WantOptions: cliargs.Options(args),
		WantArgs:    cliargs.Args(args),
		WantValues:  map[string]string{},
	}

	for _, name := range queryNames(f.WantOptions) {
		f.WantValues[name] = cliargs.Option(name, args)
	}
	return f
}

// queryNames derives the option names worth querying for a token
// stream: the sanitized name of every long option, and each character
// of every short group.
func queryNames(opts []string) []string {
	var names []string
	seen := map[string]bool{}
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, opt := range opts {
		if strings.HasPrefix(opt, "--") {
			key, _, _ := strings.Cut(strings.TrimLeft(opt, "-"), "=")
			add(cliargs.SafeName(key))
			continue
		}
		for _, r := range opt[1:] {
			add(string(r))
		}
	}
	return names
}
