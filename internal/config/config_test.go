package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gqlmock.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
schema: api/schema.graphql
fragments: src
out_dir: src/__mocks__
workers: 8
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Schema = "api/schema.graphql"
	want.Fragments = "src"
	want.OutDir = "src/__mocks__"
	want.Workers = 8
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gqlmock.yml")
	require.NoError(t, os.WriteFile(path, []byte("schema: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")
}
