package app

import (
	"os"
	"time"
)

// JobWatcher polls a job file and calls back whenever its modification time
// moves forward, so the preview can rerun after an edit.
type JobWatcher struct {
	path          string
	baseline      time.Time
	checkInterval time.Duration
	stopCh        chan struct{}
	onChange      func() // Called from the watcher goroutine
}

// NewJobWatcher creates a watcher for path. Returns nil if the file cannot
// be stat'ed.
func NewJobWatcher(path string, checkInterval time.Duration) *JobWatcher {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return &JobWatcher{
		path:          path,
		baseline:      info.ModTime(),
		checkInterval: checkInterval,
		stopCh:        make(chan struct{}),
	}
}

// OnChange sets the callback to invoke when the file changes. The callback
// runs on a background goroutine.
func (w *JobWatcher) OnChange(callback func()) {
	w.onChange = callback
}

// Start begins polling in a background goroutine.
func (w *JobWatcher) Start() {
	w.stopCh = make(chan struct{})
	go w.watchLoop()
}

// Stop stops the watcher goroutine.
func (w *JobWatcher) Stop() {
	close(w.stopCh)
}

func (w *JobWatcher) watchLoop() {
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if w.checkForUpdate() {
				w.ResetBaseline()
				if w.onChange != nil {
					w.onChange()
				}
			}
		}
	}
}

// checkForUpdate returns true if the file has been modified since the baseline.
func (w *JobWatcher) checkForUpdate() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	return info.ModTime().After(w.baseline)
}

// Path returns the watched file.
func (w *JobWatcher) Path() string {
	return w.path
}

// ResetBaseline takes the file's current modification time as the new baseline.
func (w *JobWatcher) ResetBaseline() {
	if info, err := os.Stat(w.path); err == nil {
		w.baseline = info.ModTime()
	}
}
