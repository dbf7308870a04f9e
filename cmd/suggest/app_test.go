package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/suggest"
	"github.com/hupe1980/suggest/blobstore"
	"github.com/hupe1980/suggest/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func runTestApp(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	outBuf := new(strings.Builder)
	errBuf := new(strings.Builder)
	code := run(context.Background(), append([]string{"suggest"}, args...), strings.NewReader(stdin), outBuf, errBuf)
	return runResult{outBuf.String(), errBuf.String(), code}
}

const words = "casa\ncasale\n  casino  \n\ncasotto\ncasinino\npippo\npluto\ncasa\n"

func buildIndex(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.idx")
	res := runTestApp(t, words, "-i", path, "build")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	return path
}

func TestBuild_Stdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.idx")

	res := runTestApp(t, words, "--index", path, "build")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Regexp(t, `^Built index of size 7 \(\d+ B\)\n$`, res.Stdout)
	assert.Empty(t, res.Stderr)
	assert.FileExists(t, path)
}

func TestBuild_Files(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(first, []byte("foo\nbar\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("foobar\nfoo\n"), 0o644))

	path := filepath.Join(dir, "idx")
	res := runTestApp(t, "", "-i", path, "build", "-w", first, "--words", second, "-c", "zstd")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.True(t, strings.HasPrefix(res.Stdout, "Built index of size 3 ("))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	ct, ok := compress.Detect(data)
	assert.True(t, ok)
	assert.Equal(t, compress.Zstd, ct)

	res = runTestApp(t, "", "-i", path, "suggest", "foo")
	assert.Equal(t, runResult{Stdout: "foo\nfoobar\n"}, res)
}

func TestBuild_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx")

	res := runTestApp(t, "", "-i", path, "build", "-w", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitFailure, res.ExitCode)
	assert.Contains(t, res.Stderr, "missing.txt")

	res = runTestApp(t, words, "-i", path, "build", "-c", "brotli")
	assert.Equal(t, exitFailure, res.ExitCode)
	assert.Contains(t, res.Stderr, "unknown compression")
	assert.NoFileExists(t, path)
}

func TestSuggest(t *testing.T) {
	path := buildIndex(t)

	tests := []struct {
		prefix string
		want   string
	}{
		{"cas", "casa\ncasale\ncasinino\ncasino\ncasotto\n"},
		{"casi", "casinino\ncasino\n"},
		{"p", "pippo\npluto\n"},
		{"x", ""},
		{"", "casa\ncasale\ncasinino\ncasino\ncasotto\npippo\npluto\n"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			res := runTestApp(t, "", "-i", path, "suggest", tt.prefix)
			assert.Equal(t, runResult{Stdout: tt.want}, res)
		})
	}
}

func TestSuggest_MissingIndexIsSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nothing-here")

	res := runTestApp(t, "", "-i", path, "suggest", "foo")
	assert.Equal(t, runResult{ExitCode: exitNotFound}, res)
}

func TestSuggest_CorruptIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx")
	require.NoError(t, os.WriteFile(path, []byte("not an index"), 0o644))

	res := runTestApp(t, "", "-i", path, "suggest", "foo")
	assert.Equal(t, exitCorrupt, res.ExitCode)
	assert.Empty(t, res.Stdout)
	assert.Contains(t, res.Stderr, "corrupt")
}

func TestSuggest_MissingPrefix(t *testing.T) {
	path := buildIndex(t)

	res := runTestApp(t, "", "-i", path, "suggest")
	assert.Equal(t, exitFailure, res.ExitCode)
	assert.Empty(t, res.Stdout)
	assert.Contains(t, res.Stderr, "PREFIX")
}

func TestSuggest_IndexFromEnv(t *testing.T) {
	path := buildIndex(t)
	t.Setenv("SUGGEST_INDEX", path)

	res := runTestApp(t, "", "suggest", "pl")
	assert.Equal(t, runResult{Stdout: "pluto\n"}, res)
}

func TestContains(t *testing.T) {
	path := buildIndex(t)

	assert.Equal(t, runResult{}, runTestApp(t, "", "-i", path, "contains", "casino"))
	assert.Equal(t, runResult{ExitCode: exitAbsent}, runTestApp(t, "", "-i", path, "contains", "cas"))
	assert.Equal(t, exitNotFound, runTestApp(t, "", "-i", path+".missing", "contains", "cas").ExitCode)
}

func TestContains_FailureIsNotAbsence(t *testing.T) {
	path := buildIndex(t)

	res := runTestApp(t, "", "-i", "ftp://host/idx", "contains", "cas")
	assert.Equal(t, exitFailure, res.ExitCode)
	assert.Contains(t, res.Stderr, "unsupported scheme")

	res = runTestApp(t, "", "-i", path, "contains")
	assert.Equal(t, exitFailure, res.ExitCode)
	assert.Contains(t, res.Stderr, "WORD")

	corrupt := filepath.Join(t.TempDir(), "idx")
	require.NoError(t, os.WriteFile(corrupt, []byte("{"), 0o644))
	assert.Equal(t, exitCorrupt, runTestApp(t, "", "-i", corrupt, "contains", "cas").ExitCode)
}

func TestTree(t *testing.T) {
	path := buildIndex(t)

	res := runTestApp(t, "", "-i", path, "tree")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Equal(t, strings.Join([]string{
		"┌─cas",
		"│ ├─a *",
		"│ │ └─le *",
		"│ ├─in",
		"│ │ ├─ino *",
		"│ │ └─o *",
		"│ └─otto *",
		"└─p",
		"  ├─ippo *",
		"  └─luto *",
	}, "\n")+"\n", res.Stdout)
}

func TestStats(t *testing.T) {
	path := buildIndex(t)

	res := runTestApp(t, "", "-i", path, "stats")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Contains(t, res.Stdout, "Location:    "+path+"\n")
	assert.Contains(t, res.Stdout, "Words:       7\n")
	assert.Contains(t, res.Stdout, "Nodes:       11\n")
	assert.Contains(t, res.Stdout, "Compression: bzip2\n")
}

func TestLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx")

	res := runTestApp(t, words, "--log-level", "info", "--log-format", "json", "-i", path, "build")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Contains(t, res.Stderr, `"msg":"index built"`)
	assert.Contains(t, res.Stderr, `"msg":"index saved"`)

	res = runTestApp(t, "", "--log-level", "loud", "-i", path, "suggest", "x")
	assert.Equal(t, exitFailure, res.ExitCode)
	assert.Contains(t, res.Stderr, "invalid log level")

	res = runTestApp(t, "", "--log-format", "xml", "-i", path, "suggest", "x")
	assert.Equal(t, exitFailure, res.ExitCode)
	assert.Contains(t, res.Stderr, "invalid log format")
}

func TestReadWords_Order(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i, content := range []string{"b\na\n", "d\n c \n", "e"} {
		p := filepath.Join(dir, string(rune('0'+i)))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		files = append(files, p)
	}

	got, err := readWords(context.Background(), nil, files)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "d", "c", "e"}, got)
}

func TestBuild_ThenOpenFromLibrary(t *testing.T) {
	path := buildIndex(t)

	idx, err := suggest.Open(context.Background(), blobstore.NewLocalStore(filepath.Dir(path)), filepath.Base(path))
	require.NoError(t, err)
	assert.Equal(t, 7, idx.Size())
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tests.idx", "tests-old.idx", "docs.idx"} {
		res := runTestApp(t, words, "-i", filepath.Join(dir, name), "build")
		require.Equal(t, 0, res.ExitCode, res.Stderr)
	}

	res := runTestApp(t, "", "-i", filepath.Join(dir, "tests.idx"), "list")
	assert.Equal(t, runResult{Stdout: "docs.idx\ntests-old.idx\ntests.idx\n"}, res)

	res = runTestApp(t, "", "-i", filepath.Join(dir, "tests.idx"), "list", "tests")
	assert.Equal(t, runResult{Stdout: "tests-old.idx\ntests.idx\n"}, res)

	res = runTestApp(t, "", "-i", filepath.Join(dir, "tests.idx"), "list", "a", "b")
	assert.Equal(t, exitFailure, res.ExitCode)
}

func TestDelete(t *testing.T) {
	path := buildIndex(t)

	res := runTestApp(t, "", "--log-level", "info", "-i", path, "delete")
	require.Equal(t, 0, res.ExitCode, res.Stderr)
	assert.Contains(t, res.Stderr, "index deleted")
	assert.NoFileExists(t, path)

	assert.Equal(t, exitNotFound, runTestApp(t, "", "-i", path, "suggest", "cas").ExitCode)
	assert.Equal(t, 0, runTestApp(t, "", "-i", path, "delete").ExitCode)
}

func TestCodecFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx")

	res := runTestApp(t, words, "--codec", "jsoniter", "-i", path, "build", "-c", "none")
	require.Equal(t, 0, res.ExitCode, res.Stderr)

	res = runTestApp(t, "", "--codec", "json", "-i", path, "suggest", "pl")
	assert.Equal(t, runResult{Stdout: "pluto\n"}, res)

	t.Setenv("SUGGEST_CODEC", "go-json")
	res = runTestApp(t, "", "-i", path, "contains", "pippo")
	assert.Equal(t, runResult{}, res)

	res = runTestApp(t, "", "--codec", "msgpack", "-i", path, "suggest", "pl")
	assert.Equal(t, exitFailure, res.ExitCode)
	assert.Contains(t, res.Stderr, "invalid codec")
}
