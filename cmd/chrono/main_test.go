package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aparo/temporal/temporal/zone"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCommands(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	r.NoError(run(t, "zones"))
	r.NoError(run(t, "offset", "UTC", "--at", "0"))
	r.NoError(run(t, "offset", "+05:30", "--at", "0"))
	r.NoError(run(t, "transitions", "+05:30"))

	r.NoError(run(t, "convert", "UTC", "0"))
	r.NoError(run(t, "convert", "+05:30", "0", "--from-local"))
	r.NoError(run(t, "keep-local", "UTC", "+05:30", "0"))

	a.Error(run(t, "offset", "No/Such Zone"))
	a.Error(run(t, "convert", "UTC", "not-a-number"))
}

func TestRulesFlag(t *testing.T) {
	r := require.New(t)
	prev := zone.ActiveProvider()
	defer func() { _ = zone.SetProvider(prev) }()

	doc := `zones:
  - id: Test/Eastern
    name: EST
    offset: "-05:00"
    standard: "-05:00"
    transitions:
      - at: 1710054000000
        offset: "-04:00"
        standard: "-05:00"
        name: EDT
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	r.NoError(os.WriteFile(path, []byte(doc), 0o600))

	r.NoError(run(t, "--rules", path, "zones"))
	r.NoError(run(t, "--rules", path, "transitions", "Test/Eastern", "--at", "0"))
	r.NoError(run(t, "--rules", path, "offset", "Test/Eastern", "--at", "1710054000000"))
	r.Error(run(t, "--rules", filepath.Join(t.TempDir(), "missing.yaml"), "zones"))
}
