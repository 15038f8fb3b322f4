package dedupe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	header := []string{"Record_ID_highway", "Record_ID_unified", "normalized_repo"}
	rows := [][]string{
		header,
		{"1", "A", "x/a"},
		{"2", "B", "x/b"},
		{"3", "A", "x/a"},
		{"4", "C", "x/c"},
	}

	got, err := Rows(rows, DefaultKeyColumn)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		header,
		{"1", "A", "x/a"},
		{"2", "B", "x/b"},
		{"4", "C", "x/c"},
	}, got)
}

func TestRows_EmptyKeysAreKeys(t *testing.T) {
	got, err := Rows([][]string{{"a", "b"}, {"1", ""}, {"2", ""}}, 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRows_Errors(t *testing.T) {
	t.Run("NoHeader", func(t *testing.T) {
		_, err := Rows(nil, 1)
		assert.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		got, err := Rows([][]string{{"a", "b"}}, 1)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}}, got)
	})

	t.Run("ShortRow", func(t *testing.T) {
		_, err := Rows([][]string{{"a", "b"}, {"1", "x"}, {"2"}}, 1)
		var short *ShortRowError
		require.ErrorAs(t, err, &short)
		assert.Equal(t, 2, short.Row)
		assert.Equal(t, 1, short.Width)
	})

	t.Run("NegativeColumn", func(t *testing.T) {
		_, err := Rows([][]string{{"a"}}, -1)
		assert.Error(t, err)
	})
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "matched_pairs.csv")
	out := filepath.Join(dir, "matched_pairs_clean.csv")

	content := "Record_ID_highway,Record_ID_unified,normalized_repo\n" +
		"1,A,x/a\n2,B,x/b\n3,A,x/a\n4,C,x/c\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	stats, err := File(in, out, DefaultKeyColumn)
	require.NoError(t, err)
	assert.Equal(t, Stats{Input: 4, Kept: 3, Dropped: 1}, stats)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Record_ID_highway,Record_ID_unified,normalized_repo\n"+
		"1,A,x/a\n2,B,x/b\n4,C,x/c\n", string(data))
}

func TestFile_EmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(in, nil, 0o644))

	_, err := File(in, filepath.Join(dir, "out.csv"), DefaultKeyColumn)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestFile_KeepsByteOrderMark(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "matched_pairs.csv")
	out := filepath.Join(dir, "matched_pairs_clean.csv")

	content := "\ufeffRecord_ID_highway,Record_ID_unified,normalized_repo\n1,A,x/a\n2,A,x/a\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	stats, err := File(in, out, DefaultKeyColumn)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Dropped)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "\ufeffRecord_ID_highway,Record_ID_unified,normalized_repo\n1,A,x/a\n", string(data))
}
