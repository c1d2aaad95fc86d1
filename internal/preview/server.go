package preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// defaultDebounce is the window used to coalesce bursts of change events
// into a single rebuild
const defaultDebounce = 300 * time.Millisecond

// Server serves the generated page directory over local HTTP and rebuilds
// the page when watched files change.
type Server struct {
	Addr     string
	Dir      string
	Watch    []string // files whose changes trigger a rebuild
	Rebuild  func() error
	Debounce time.Duration // coalescing window; zero means defaultDebounce
}

// Run starts the file watcher and the HTTP server, blocking until ctx is
// cancelled or the server fails.
func (s *Server) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch parent directories instead of the files themselves; editors
	// commonly replace a file via rename, which drops a direct file watch.
	watched := watchSet(s.Watch)
	dirs := make(map[string]bool)
	for path := range watched {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("cannot watch directory")
			continue
		}
		dirs[dir] = true
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.Dir)))

	srv := &http.Server{
		Addr:         s.Addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go s.watchLoop(ctx, watcher, watched)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("addr", s.Addr).Str("dir", s.Dir).Msg("preview server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("preview server failed: %w", err)
	}
	return nil
}

// watchSet normalizes the watch list into a set of cleaned paths, dropping
// empty entries.
func watchSet(paths []string) map[string]bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		set[filepath.Clean(p)] = true
	}
	return set
}

// shouldRebuild reports whether a filesystem event concerns a watched file
// in a way that warrants regenerating the page. Events for unrelated
// siblings in the watched directories are filtered out here.
func shouldRebuild(event fsnotify.Event, watched map[string]bool) bool {
	if !watched[filepath.Clean(event.Name)] {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename)
}

// watchLoop coalesces change events and runs rebuilds. A failed rebuild is
// logged and leaves the previously generated page in place.
func (s *Server) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, watched map[string]bool) {
	debounce := s.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !shouldRebuild(event, watched) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("watcher error")

		case <-timer.C:
			log.Info().Msg("regenerating page")
			if err := s.Rebuild(); err != nil {
				log.Error().Err(err).Msg("rebuild failed")
			}
		}
	}
}
