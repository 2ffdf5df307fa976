// Package preview shows one job target before and after its steps run.
package preview

import (
	"image/color"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"halo-fixer/internal/app"
	himage "halo-fixer/internal/image"
	"halo-fixer/internal/logging"
	"halo-fixer/ui/prefs"
)

const (
	defaultWidth  = 1100
	defaultHeight = 700
	baseImageSize = 256
)

// Window is the before/after preview window.
type Window struct {
	win   fyne.Window
	state *app.State
	prefs *prefs.Prefs
	log   zerolog.Logger

	before  *canvas.Image
	after   *canvas.Image
	files   *widget.Select
	summary *widget.Label
	title   *widget.Label
	zoom    *widget.Slider

	watcher  *app.JobWatcher
	updating bool
}

// New builds the window. Nothing is shown until ShowAndRun.
func New(a fyne.App, state *app.State, p *prefs.Prefs, log zerolog.Logger) *Window {
	w := &Window{
		win:   a.NewWindow("Halo Preview"),
		state: state,
		prefs: p,
		log:   logging.Component(log, "preview"),
	}

	w.before = newImageWell()
	w.after = newImageWell()
	w.summary = widget.NewLabel("")
	w.title = widget.NewLabelWithStyle("No job loaded", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	w.files = widget.NewSelect(nil, func(string) {
		if w.updating {
			return
		}
		if err := w.state.Select(w.files.SelectedIndex()); err != nil {
			w.showError(err)
		}
	})

	w.zoom = widget.NewSlider(1, 4)
	w.zoom.Step = 0.5
	w.zoom.SetValue(p.Float(prefs.KeyZoom, 1))
	w.zoom.OnChanged = func(v float64) {
		w.prefs.SetFloat(prefs.KeyZoom, v)
		w.applyZoom()
	}
	w.applyZoom()

	openBtn := widget.NewButtonWithIcon("Open job", theme.FolderOpenIcon(), w.chooseJob)
	imageBtn := widget.NewButtonWithIcon("Open image", theme.FileImageIcon(), w.chooseImage)
	reloadBtn := widget.NewButtonWithIcon("Reload", theme.ViewRefreshIcon(), func() {
		if err := w.state.Reload(); err != nil {
			w.showError(err)
		}
	})

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(openBtn, imageBtn, reloadBtn, w.files),
		container.NewHBox(widget.NewLabel("Zoom"), container.NewGridWrap(fyne.NewSize(160, 36), w.zoom)),
	)
	well := a.Settings().Theme().Color(app.ColorNameWell, a.Settings().ThemeVariant())
	panes := container.NewGridWithColumns(2,
		labeled("Original", w.before, well),
		labeled("Fixed", w.after, well),
	)
	w.win.SetContent(container.NewBorder(
		container.NewVBox(toolbar, w.title),
		w.summary,
		nil, nil,
		container.NewScroll(panes),
	))

	w.win.Resize(fyne.NewSize(
		float32(p.Int(prefs.KeyWindowWidth, defaultWidth)),
		float32(p.Int(prefs.KeyWindowHeight, defaultHeight)),
	))
	w.win.SetOnClosed(w.close)

	state.OnChange(w.refresh)
	return w
}

// Open loads the job at path and starts watching it for edits.
func (w *Window) Open(path string) error {
	if err := w.state.LoadJob(path); err != nil {
		return err
	}
	w.prefs.SetString(prefs.KeyLastJob, path)

	if w.watcher != nil {
		w.watcher.Stop()
	}
	w.watcher = app.NewJobWatcher(path, time.Second)
	if w.watcher != nil {
		w.watcher.OnChange(func() {
			w.log.Info().Str("job", path).Msg("job file changed, reloading")
			if err := w.state.Reload(); err != nil {
				w.showError(err)
			}
		})
		w.watcher.Start()
	}
	return nil
}

// ShowAndRun shows the window and runs the event loop.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

func (w *Window) refresh() {
	names := w.state.Names()
	sel := w.state.Selection()

	w.updating = true
	w.files.Options = names
	if sel.Index >= 0 && sel.Index < len(names) {
		w.files.SetSelectedIndex(sel.Index)
	}
	w.files.Refresh()
	w.updating = false

	w.title.SetText(filepath.Base(sel.JobPath))
	if sel.Original != nil {
		w.before.Image = sel.Original.Image()
		w.after.Image = sel.Fixed.Image()
		w.before.Refresh()
		w.after.Refresh()
	}

	text := ""
	for _, line := range w.state.Summary() {
		text += line + "\n"
	}
	w.summary.SetText(text)
}

func (w *Window) applyZoom() {
	side := float32(baseImageSize * w.zoom.Value)
	w.before.SetMinSize(fyne.NewSize(side, side))
	w.after.SetMinSize(fyne.NewSize(side, side))
}

func (w *Window) chooseJob() {
	w.choose([]string{".json"}, w.Open)
}

func (w *Window) chooseImage() {
	w.choose(himage.SupportedFormats(), w.state.SelectPath)
}

func (w *Window) choose(exts []string, open func(string) error) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			w.showError(err)
			return
		}
		if rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		if err := open(path); err != nil {
			w.showError(err)
		}
	}, w.win)
	fd.SetFilter(storage.NewExtensionFileFilter(exts))
	if job := w.state.Selection().JobPath; job != "" {
		if loc, err := storage.ListerForURI(storage.NewFileURI(filepath.Dir(job))); err == nil {
			fd.SetLocation(loc)
		}
	}
	fd.Show()
}

func (w *Window) showError(err error) {
	w.log.Error().Err(err).Msg("preview failed")
	dialog.ShowError(err, w.win)
}

func (w *Window) close() {
	if w.watcher != nil {
		w.watcher.Stop()
	}
	size := w.win.Canvas().Size()
	w.prefs.SetInt(prefs.KeyWindowWidth, int(size.Width))
	w.prefs.SetInt(prefs.KeyWindowHeight, int(size.Height))
	if err := w.prefs.SaveIfChanged(); err != nil {
		w.log.Warn().Err(err).Msg("failed to save preferences")
	}
}

func newImageWell() *canvas.Image {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	return img
}

// labeled stacks an image over a checkerboard so transparency and halos
// stay visible, with a caption above it.
func labeled(caption string, img *canvas.Image, dark color.Color) fyne.CanvasObject {
	light := color.NRGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF}
	checker := canvas.NewRasterWithPixels(func(x, y, _, _ int) color.Color {
		if (x/12+y/12)%2 == 0 {
			return light
		}
		return dark
	})
	return container.NewBorder(
		widget.NewLabelWithStyle(caption, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewStack(checker, img),
	)
}
