package fixer

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halo-fixer/internal/config"
	himage "halo-fixer/internal/image"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 200, A: 255}
	gray  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	slate = color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 255}
)

func ptrInt(v int) *int { return &v }

var fixedNow = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }

// whiteFramed is a 4x4 white square with a 2x2 red center.
func whiteFramed() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := white
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				c = red
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, himage.Save(path, img, himage.SaveOptions{}))
}

func edgeJob(root string) *config.Job {
	return &config.Job{
		Root:       root,
		Background: "#1f2937",
		Targets: []config.Target{{
			Name:     "icons",
			Patterns: []string{"icons/*.png"},
			Steps:    []config.Step{{Op: config.OpClearEdgeWhite, Threshold: ptrInt(10)}},
		}},
	}
}

func countTransparent(t *testing.T, path string) int {
	t.Helper()
	asset, err := himage.Load(path)
	require.NoError(t, err)
	n := 0
	b := asset.Image.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := asset.Image.At(x, y).RGBA(); a == 0 {
				n++
			}
		}
	}
	return n
}

func TestRunClearsEdgeWhiteAndBacksUp(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "icons", "a.png")
	writePNG(t, src, whiteFramed())
	original, err := os.ReadFile(src)
	require.NoError(t, err)

	job := edgeJob(root)
	require.NoError(t, job.Validate())

	var logs bytes.Buffer
	runner := NewRunner(job, zerolog.New(&logs), Options{Now: fixedNow})
	results, err := runner.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, Result{
		Path:    filepath.Join("icons", "a.png"),
		Format:  "png",
		Width:   4,
		Height:  4,
		Step:    config.OpClearEdgeWhite,
		Cleared: 12,
	}, results[0])
	assert.Equal(t, 12, countTransparent(t, src))

	backup := filepath.Join(root, config.DefaultBackupDir, "20260314-092653", "icons", "a.png")
	saved, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, saved)

	assert.Contains(t, logs.String(), `"component":"fixer"`)
	assert.Contains(t, logs.String(), "backup complete")
}

func TestRunDryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "icons", "a.png")
	writePNG(t, src, whiteFramed())
	original, err := os.ReadFile(src)
	require.NoError(t, err)

	results, err := NewRunner(edgeJob(root), zerolog.Nop(), Options{DryRun: true}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, 12, results[0].Cleared)

	after, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, original, after)
	assert.NoDirExists(t, filepath.Join(root, config.DefaultBackupDir))
}

func TestRunNoTargets(t *testing.T) {
	_, err := NewRunner(edgeJob(t.TempDir()), zerolog.Nop(), Options{}).Run(context.Background())
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestRunCanceledBeforeFirstFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "icons", "a.png")
	writePNG(t, src, whiteFramed())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewRunner(edgeJob(root), zerolog.Nop(), Options{NoBackup: true}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Equal(t, 0, countTransparent(t, src))
}

func TestRunBleedFixFirstForAlphaSources(t *testing.T) {
	root := t.TempDir()
	img := whiteFramed()
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	writePNG(t, filepath.Join(root, "icons", "a.png"), img)
	writePNG(t, filepath.Join(root, "icons", "b.png"), whiteFramed())

	job := edgeJob(root)
	job.BleedFix = true
	require.NoError(t, job.Validate())

	results, err := NewRunner(job, zerolog.Nop(), Options{NoBackup: true}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 3, "bleed fix only for the source with alpha")
	assert.Equal(t, config.OpAlphaBleed, results[0].Step)
	assert.Equal(t, 1, results[0].Cleared)
	assert.Equal(t, config.OpClearEdgeWhite, results[1].Step)
	assert.Equal(t, 11, results[1].Cleared)
	assert.Equal(t, filepath.Join("icons", "b.png"), results[2].Path)
}

func TestRunRobustRecolorSavesOpaque(t *testing.T) {
	root := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 7, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			c := slate
			if x >= 2 && x <= 4 && y >= 2 && y <= 4 {
				c = gray
			}
			img.SetNRGBA(x, y, c)
		}
	}
	img.SetNRGBA(3, 3, red)
	path := filepath.Join(root, "icon.png")
	writePNG(t, path, img)

	job := &config.Job{
		Root:       root,
		Background: "#1f2937",
		Targets: []config.Target{{
			Patterns: []string{"icon.png"},
			Steps: []config.Step{{
				Op:            config.OpRobustRecolor,
				Tolerance:     ptrInt(14),
				Gray:          &region130,
				NeighborAlpha: ptrInt(8),
				Iterations:    ptrInt(15),
			}},
		}},
	}
	require.NoError(t, job.Validate())

	results, err := NewRunner(job, zerolog.Nop(), Options{NoBackup: true}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 8, results[0].Cleared)
	assert.Equal(t, 1, results[0].Iterations)

	asset, err := himage.Load(path)
	require.NoError(t, err)
	assert.False(t, asset.HasAlpha)
	r, g, b, _ := asset.Image.At(2, 2).RGBA()
	assert.Equal(t, [3]uint32{0x1f, 0x29, 0x37}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestResultString(t *testing.T) {
	r := Result{Path: "assets/images/icon.png", Format: "png", Width: 1024, Height: 1024,
		Step: config.OpPeelLightGray, Cleared: 3120, Iterations: 3}
	assert.Equal(t, "- assets/images/icon.png: PNG (1024, 1024) cleared=3120 (peel-light-gray) iterations=3", r.String())
}

func TestRunWebPInPlace(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "res", "mipmap-hdpi")
	src := filepath.Join(dir, "ic_launcher.webp")
	writePNG(t, src, whiteFramed())

	job := &config.Job{
		Root: root,
		Targets: []config.Target{{
			Name:     "launcher-mipmaps",
			Patterns: []string{"res/mipmap-*/ic_launcher*.webp"},
			Steps:    []config.Step{{Op: config.OpClearEdgeWhite, Threshold: ptrInt(10)}},
		}},
	}
	require.NoError(t, job.Validate())

	results, err := NewRunner(job, zerolog.Nop(), Options{NoBackup: true}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "webp", results[0].Format)
	assert.Equal(t, 12, results[0].Cleared)

	assert.Equal(t, 12, countTransparent(t, src))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no sibling written beside the launcher icon")
	assert.Equal(t, "ic_launcher.webp", entries[0].Name())
}

func TestRunRecolorEdgeWhiteSavesOpaque(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "icons", "a.png")
	writePNG(t, src, whiteFramed())

	job := edgeJob(root)
	job.Targets[0].Steps = []config.Step{{Op: config.OpRecolorEdgeWhite, Threshold: ptrInt(10)}}
	require.NoError(t, job.Validate())

	var logs bytes.Buffer
	results, err := NewRunner(job, zerolog.New(&logs), Options{NoBackup: true}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 12, results[0].Cleared)

	asset, err := himage.Load(src)
	require.NoError(t, err)
	assert.False(t, asset.HasAlpha)
	r, g, b, _ := asset.Image.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0x1f, 0x29, 0x37}, [3]uint32{r >> 8, g >> 8, b >> 8})
	assert.Contains(t, logs.String(), `"background":"#1f2937"`)
}
