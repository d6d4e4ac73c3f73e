package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func writeStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample-ids.ts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTSStoreLoad(t *testing.T) {
	path := writeStore(t, `// household ids, do not touch
export const sampleIds = {
  User: ["1", "2", "3"],
  LineItem: [1, 2, 3],
};
`)
	store := NewTSStore(path)
	got, err := store.Load()
	require.NoError(t, err)

	want := []Entry{
		{Type: "User", Tokens: []string{`"1"`, `"2"`, `"3"`}},
		{Type: "LineItem", Tokens: []string{"1", "2", "3"}},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Entry{})); diff != "" {
		t.Errorf("loaded entries mismatch (-want +got):\n%s", diff)
	}
}

func TestTSStoreLoadMissingFile(t *testing.T) {
	store := NewTSStore(filepath.Join(t.TempDir(), "absent.ts"))
	got, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTSStoreLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no export", "const other = 1;\n"},
		{"no closing brace", "export const sampleIds = {\n  User: [1],\n"},
		{"entry without key", "export const sampleIds = {\n  garbage\n};\n"},
		{"entry without sequence", "export const sampleIds = {\n  User: 1,\n};\n"},
		{"entry without tokens", "export const sampleIds = {\n  User: [],\n};\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := NewTSStore(writeStore(t, tc.content))
			_, err := store.Load()
			var storeErr *StoreError
			require.ErrorAs(t, err, &storeErr)
		})
	}
}

func TestTSStorePersistPreservesSurroundings(t *testing.T) {
	path := writeStore(t, `/* registry header */
import type { SampleIds } from "./types";

export const sampleIds = {
  User:["1","2","3"],
};

export default sampleIds;
`)
	store := NewTSStore(path)
	entries, err := store.Load()
	require.NoError(t, err)

	entries = append(entries, Entry{Type: "Pet", Tokens: []string{`"1"`, `"2"`, `"3"`}})
	require.NoError(t, store.Persist(entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `/* registry header */
import type { SampleIds } from "./types";

export const sampleIds = {
  User:["1","2","3"],
  Pet: ["1", "2", "3"],
};

export default sampleIds;
`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("persisted file mismatch (-want +got):\n%s", diff)
	}
}

func TestTSStorePersistRestoresSeparatorComma(t *testing.T) {
	path := writeStore(t, "export const sampleIds = {\n  User: [\"1\", \"2\", \"3\"]\n};\n")
	store := NewTSStore(path)
	entries, err := store.Load()
	require.NoError(t, err)

	entries = append(entries, Entry{Type: "Pet", Tokens: []string{"1", "2", "3"}})
	require.NoError(t, store.Persist(entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "  User: [\"1\", \"2\", \"3\"],\n  Pet: [1, 2, 3],\n")
}

func TestTSStorePersistFreshFileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated", "sample-ids.ts")
	store := NewTSStore(path)

	in := []Entry{
		{Type: "User", Tokens: []string{`"1"`, `"2"`, `"3"`}},
		{Type: "LineItem", Tokens: []string{"1", "2", "3"}},
	}
	require.NoError(t, store.Persist(in))

	got, err := NewTSStore(path).Load()
	require.NoError(t, err)
	if diff := cmp.Diff(in, got, cmpopts.IgnoreUnexported(Entry{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTSStoreLoadErrorType(t *testing.T) {
	store := NewTSStore(writeStore(t, "nothing here"))
	_, err := store.Load()
	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	require.Contains(t, storeErr.Error(), "sample-ids.ts")
}
