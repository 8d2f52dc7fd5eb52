package opt

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sablelang/sable/internal/ir"
)

const foldableSource = `
module sample

fn @pick(%x: $Int, %y: $Int) -> $Int {
entry:
  %t = make_tuple $Pair %x, %y
  %r = tuple_extract $Int %t, 0
  ret %r
}
`

func TestProcessSource(t *testing.T) {
	engine, err := New("")
	require.NoError(t, err)

	res, err := ProcessSource(engine, []byte(foldableSource))
	require.NoError(t, err)

	require.Len(t, res.Rewrites, 1)
	assert.Equal(t, "tuple-extract", res.Rewrites[0].Rule)
	assert.Equal(t, "pick", res.Rewrites[0].Function)

	// the optimized module returns the parameter directly
	fn := res.Module.Func("pick")
	require.NotNil(t, fn)
	ret := fn.Blocks[0].Term.(*ir.Ret)
	assert.Equal(t, fn.Params[0].ID, ret.Value)
}

func TestProcessSourceRejectsBadInput(t *testing.T) {
	engine, err := New("")
	require.NoError(t, err)

	_, err = ProcessSource(engine, []byte("fn @f() {\nentry:\n  bogus\n}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing module")

	_, err = ProcessSource(engine, []byte("fn @f() {\nentry:\n  %v = int_lit i1 0\n}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed module")
}

func TestProcessFiles(t *testing.T) {
	engine, err := New("")
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.sir")
	require.NoError(t, os.WriteFile(path, []byte(foldableSource), 0o644))
	// a stray non-IR file is skipped by the directory scan
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	logger := zap.NewNop()

	results, err := ProcessFiles(context.Background(), logger, engine, []string{dir})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].Path)
	assert.Len(t, results[0].Rewrites, 1)

	// a direct file path works too
	results, err = ProcessFiles(context.Background(), logger, engine, []string{path})
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestProcessFilesMissingPath(t *testing.T) {
	engine, err := New("")
	require.NoError(t, err)

	_, err = ProcessFiles(context.Background(), zap.NewNop(), engine, []string{"no/such/path"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing")
}

func TestNewWithConfiguration(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := `
name: sample
rules:
  tuple-extract:
    off: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	engine, err := New(cfgPath)
	require.NoError(t, err)

	// the disabled rule no longer fires
	res, err := ProcessSource(engine, []byte(foldableSource))
	require.NoError(t, err)
	assert.Empty(t, res.Rewrites)
}

func TestNewWithBadConfiguration(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rules: [not a map]"), 0o644))

	_, err := New(cfgPath)
	assert.Error(t, err)

	_, err = New(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
