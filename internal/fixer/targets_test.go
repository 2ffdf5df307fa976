package fixer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halo-fixer/internal/config"
	"halo-fixer/internal/region"
)

var region130 = region.LightGray{MinValue: 130, MaxDelta: 100, MinAlpha: 20}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestResolveFirstTargetWins(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "res", "mipmap-hdpi", "ic_launcher.webp"))
	touch(t, filepath.Join(root, "res", "mipmap-mdpi", "ic_launcher.webp"))
	touch(t, filepath.Join(root, "res", "drawable-hdpi", "splashscreen_logo.png"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "res", "mipmap-xhdpi", "dir.webp"), 0o755))

	step := []config.Step{{Op: config.OpClearEdgeWhite, Threshold: ptrInt(10)}}
	job := &config.Job{
		Root: root,
		Targets: []config.Target{
			{Name: "hdpi", Patterns: []string{"res/mipmap-hdpi/*.webp"}, Steps: step},
			{Name: "all", Patterns: []string{"res/mipmap-*/*.webp", "res/mipmap-*/*.webp"}, Steps: step},
			{Name: "logos", Patterns: []string{"res/drawable-*/splashscreen_logo.png"}, Steps: step},
		},
	}

	files, err := Resolve(job)
	require.NoError(t, err)

	var got []string
	for _, f := range files {
		got = append(got, f.Target.Name+":"+filepath.ToSlash(f.Rel))
	}
	assert.Equal(t, []string{
		"hdpi:res/mipmap-hdpi/ic_launcher.webp",
		"all:res/mipmap-mdpi/ic_launcher.webp",
		"logos:res/drawable-hdpi/splashscreen_logo.png",
	}, got)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "/r/icon.png", OutputPath("/r/icon.png", &config.Target{}))
	assert.Equal(t, "/r/ic_launcher.png", OutputPath("/r/ic_launcher.webp", &config.Target{OutputExt: ".png"}))
}

func TestOpaque(t *testing.T) {
	assert.False(t, Opaque(&config.Target{Steps: []config.Step{{Op: config.OpPeelLightGray}}}))
	assert.True(t, Opaque(&config.Target{Opaque: true}))
	assert.True(t, Opaque(&config.Target{Steps: []config.Step{{Op: config.OpRecolorEdgeWhite}}}))
	assert.True(t, Opaque(&config.Target{Steps: []config.Step{{Op: config.OpClearEdgeWhite}, {Op: config.OpSolidify}}}))
}

func TestResolveSkipsNonImages(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "res", "drawable-hdpi", "splashscreen_logo.png"))
	touch(t, filepath.Join(root, "res", "drawable-hdpi", "splashscreen_logo.xml"))
	touch(t, filepath.Join(root, "res", "drawable-hdpi", "README"))

	job := &config.Job{
		Root: root,
		Targets: []config.Target{
			{Name: "all", Patterns: []string{"res/drawable-*/*"}, Steps: []config.Step{{Op: config.OpFillTransparent}}},
		},
	}

	files, err := Resolve(job)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "splashscreen_logo.png", filepath.Base(files[0].Path))

	job.Targets[0].Patterns = []string{"res/drawable-*/*.xml"}
	_, err = Resolve(job)
	assert.ErrorIs(t, err, ErrNoTargets)
}
