package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"folio/internal/core/services"
	"folio/pkg/ui"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site locally with live rebuild",
	Long:  "Build the site, serve it over HTTP, and rebuild whenever posts, assets, or YAML records change.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to serve on (0 = use config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	port := servePort
	if port <= 0 {
		port = appConfig.Port
	}

	if err := rebuild(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	go watchLoop(watcher)

	if err := addWatchPaths(watcher); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", port)
	fmt.Println(ui.FormatRocket(fmt.Sprintf("Serving at http://localhost%s", addr)))
	fmt.Println(ui.FormatInfo("Watching for changes, Ctrl+C to stop"))

	return http.ListenAndServe(addr, previewHandler(appWorkspace.OutputPath))
}

func rebuild() error {
	resp, err := buildService.Execute(getContext(), services.BuildRequest{MaxWorkers: appConfig.MaxWorkers})
	if err != nil {
		fmt.Println(ui.FormatError("Build failed: " + err.Error()))
		return err
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Built %d pages in %s", resp.Pages, resp.Duration.Round(time.Millisecond))))
	return nil
}

// addWatchPaths watches the content sources: posts, assets, and the
// workspace YAML records. The output directory is deliberately not
// watched, rebuilds write there.
func addWatchPaths(watcher *fsnotify.Watcher) error {
	if err := watcher.Add(appWorkspace.RootPath); err != nil {
		return fmt.Errorf("failed to watch workspace: %w", err)
	}

	for _, dir := range []string{appWorkspace.PostsPath, appWorkspace.AssetsPath} {
		// A content directory may not exist yet; there is nothing to
		// watch until it does
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return nil
}

// watchLoop debounces filesystem events into a single rebuild. Editors
// fire several events per save, so the timer resets on each one.
func watchLoop(watcher *fsnotify.Watcher) {
	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	var timer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevantChange(event) {
				continue
			}

			// New directories under posts/ or assets/ need watching too
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					watcher.Add(event.Name)
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				fmt.Println(ui.FormatInfo("Change detected: " + filepath.Base(event.Name)))
				rebuild()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Println(ui.FormatWarning("Watch error: " + err.Error()))
		}
	}
}

// relevantChange filters out events for the output directory and
// editor temp files.
func relevantChange(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if strings.HasPrefix(event.Name, appWorkspace.OutputPath) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}
	return true
}

// previewHandler serves the output directory without caching and
// without directory listings.
func previewHandler(root string) http.Handler {
	fileServer := http.FileServer(http.Dir(root))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Preview should always reflect the latest rebuild
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		path := filepath.Join(root, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			index := filepath.Join(path, "index.html")
			if _, err := os.Stat(index); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		}

		fileServer.ServeHTTP(w, r)
	})
}
