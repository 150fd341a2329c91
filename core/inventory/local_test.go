package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestBuildLocal_Directory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "hello")
	writeFile(t, root, "docs/b.txt", "hello")
	writeFile(t, root, "docs/sub/c.txt", "world")
	writeFile(t, root, ".env", "secret")
	writeFile(t, root, ".git/config", "x")
	writeFile(t, root, "docs/.hidden", "x")
	writeFile(t, root, "lib/mod.pyc", "x")

	inv, err := BuildLocal(context.Background(), LocalOptions{
		Root:    root,
		Ignore:  NewIgnoreList(),
		Workers: 4,
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, inv.Len())
	assert.ElementsMatch(t, []string{"a.txt", "docs/b.txt", "docs/sub/c.txt"}, keysOf(inv))

	sum, ok := inv.Digest("a.txt")
	require.True(t, ok)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)

	other, _ := inv.Digest("docs/b.txt")
	assert.Equal(t, sum, other)

	obj := inv.Objects["docs/sub/c.txt"]
	assert.Equal(t, int64(5), obj.Size)
	assert.Equal(t, filepath.Join(root, "docs", "sub", "c.txt"), obj.Path)
}

func TestBuildLocal_TargetSubdirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "docs/b.txt", "b")

	inv, err := BuildLocal(context.Background(), LocalOptions{
		Root:   root,
		Target: "docs",
		Ignore: NewIgnoreList(),
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"docs/b.txt"}, keysOf(inv))
}

func TestBuildLocal_SingleFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/b.txt", "b")

	inv, err := BuildLocal(context.Background(), LocalOptions{
		Root:   root,
		Target: "./docs/b.txt",
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"docs/b.txt"}, keysOf(inv))
}

func TestBuildLocal_MissingPath(t *testing.T) {
	root := t.TempDir()

	inv, err := BuildLocal(context.Background(), LocalOptions{
		Root:   root,
		Target: "not-yet",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Len())
}

func TestBuildLocal_ExtraIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.txt", "k")
	writeFile(t, root, "debug.log", "l")
	writeFile(t, root, "build/out.bin", "b")

	inv, err := BuildLocal(context.Background(), LocalOptions{
		Root:   root,
		Ignore: NewIgnoreList("*.log", "build/"),
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.txt"}, keysOf(inv))
}

func TestBuildLocal_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildLocal(ctx, LocalOptions{Root: root}, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func keysOf(inv *Local) []string {
	keys := make([]string, 0, inv.Len())
	for k := range inv.Objects {
		keys = append(keys, k)
	}
	return keys
}

func TestBuildLocal_UnreadableFileFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	root := t.TempDir()
	writeFile(t, root, "a.txt", "readable")
	writeFile(t, root, "docs/locked.txt", "secret")
	locked := filepath.Join(root, "docs", "locked.txt")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o644) })

	inv, err := BuildLocal(context.Background(), LocalOptions{
		Root:    root,
		Ignore:  NewIgnoreList(),
		Workers: 2,
	}, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Nil(t, inv)
}
