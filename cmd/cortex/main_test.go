package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/record"
)

// fixtures writes two k=3 graphs spelling AAATC between them: a.ctx holds
// AAA->AAT, b.ctx holds AAT->ATC.
func fixtures(t *testing.T) (dir, a, b string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir = t.TempDir()

	write := func(name string, rows ...[3]string) string {
		path := filepath.Join(dir, name+".ctx")
		w, err := graphfile.CreateWithHeader(path, graphfile.NewHeader(3, graphfile.ColorMetadata{SampleName: name}))
		require.NoError(t, err)
		for _, row := range rows {
			r, err := record.FromString(row[0], []uint32{1}, []byte{record.EdgeCode([]byte(row[1]), []byte(row[2]))})
			require.NoError(t, err)
			require.NoError(t, w.Append(r))
		}
		require.NoError(t, w.Close())
		return path
	}
	a = write("a", [3]string{"AAA", "T", ""}, [3]string{"AAT", "", "A"})
	b = write("b", [3]string{"AAT", "C", "A"}, [3]string{"ATC", "", "A"})

	return dir, a, b
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return buf.String(), err
}

const merged = `AAA 1 0 .......T ........
AAT 1 1 a....... a....C..
ATC 0 1 ........ a.......
`

func TestView(t *testing.T) {
	dir, a, b := fixtures(t)

	out, err := run(t, "view", a, b)
	require.NoError(t, err)
	assert.Equal(t, merged, out)

	out, err = run(t, "view", "--limit", "1", filepath.Join(dir, "*.ctx"))
	require.NoError(t, err)
	assert.Equal(t, "AAA 1 0 .......T ........\n", out)

	_, err = run(t, "view", filepath.Join(dir, "nothing*.ctx"))
	require.ErrorContains(t, err, "no graph matches")
}

func TestFind(t *testing.T) {
	_, a, b := fixtures(t)

	out, err := run(t, "find", "-k", "AAT", "-k", "GAT", "-k", "CCC", a, b)
	require.NoError(t, err)
	assert.Equal(t, "AAT 1 1 a....... a....C..\nATC 0 1 ........ a.......\nCCC not found\n", out)

	out, err = run(t, "find", "--preload", "-k", "aaa", a)
	require.NoError(t, err)
	assert.Equal(t, "AAA 1 .......T\n", out)

	_, err = run(t, "find", "--preload", "-k", "AAA", a, b)
	require.Error(t, err)
	_, err = run(t, "find", a)
	require.Error(t, err)
	_, err = run(t, "find", "-k", "AAAA", a)
	require.ErrorIs(t, err, graphfile.ErrKmerSize)
}

func TestMerge(t *testing.T) {
	dir, a, b := fixtures(t)
	path := filepath.Join(dir, "out", "merged.ctx")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	out, err := run(t, "merge", "-o", path, a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 3 records, 2 colors")

	g, err := graphfile.Open(path, graphfile.WithOrderCheck())
	require.NoError(t, err)
	defer g.Close()
	assert.EqualValues(t, 3, g.NumRecords())
	assert.Equal(t, "b", g.Color(1).SampleName)

	out, err = run(t, "view", path)
	require.NoError(t, err)
	assert.Equal(t, merged, out)
}

func TestInfo(t *testing.T) {
	_, a, _ := fixtures(t)

	out, err := run(t, "info", "--digest", a)
	require.NoError(t, err)
	assert.Contains(t, out, "path: "+a)
	assert.Contains(t, out, "records: \"2\"")
	assert.Contains(t, out, "kmer_size: 3")
	assert.Contains(t, out, "sample: a")
	assert.Regexp(t, `digest: [0-9a-f]{64}`, out)
}

func TestWalk(t *testing.T) {
	_, a, b := fixtures(t)

	out, err := run(t, "walk", "--seed", "AAT", "--colors", "0,1", "--direction", "both", "--edges", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "outcome\taccepted\n")
	assert.Contains(t, out, "contig\tAAATC\n")
	assert.Contains(t, out, "vertices\t3\n")
	assert.Contains(t, out, "edge\tAAA\tAAT\tT\n")

	// Color 0 alone stops at AAT.
	out, err = run(t, "walk", "--seed", "AAA", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "contig\tAAAT\n")

	out, err = run(t, "walk", "--seed", "AAA", "--dfs", "--colors", "1,0", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "vertex\tATC\n")

	_, err = run(t, "walk", "--seed", "AAA", "--policy", "meander", a)
	require.Error(t, err)
	_, err = run(t, "walk", "--seed", "AAA", "--colors", "3", a)
	require.Error(t, err)
	_, err = run(t, "walk", a)
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	dir, a, b := fixtures(t)
	want := "kmer\tcov_a\tcov_b\tedges_a\tedges_b\n" + strings.ReplaceAll(merged, " ", "\t")

	out, err := run(t, "dump", a, b)
	require.NoError(t, err)
	assert.Equal(t, want, out)

	path := filepath.Join(dir, "dump.tsv.zst")
	_, err = run(t, "dump", "-o", path, a, b)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	dec, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer dec.Close()
	got, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestDocs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := filepath.Join(t.TempDir(), "docs")

	_, err := run(t, "docs", "-o", dir)
	require.NoError(t, err)
	for _, name := range []string{"cortex.md", "cortex_walk.md", "cortex_merge.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestConfigFile(t *testing.T) {
	dir, a, _ := fixtures(t)
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  cache-size: 0\n"), 0o644))

	_, err := run(t, "--config", path, "view", a)
	require.ErrorIs(t, err, graphfile.ErrOptionViolation)

	_, err = run(t, "--config", path, "--cache-size", "8", "view", a)
	require.NoError(t, err)
}
