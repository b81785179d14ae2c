package pagewire

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchLogger is the subset of the echo logger the watcher reports through.
type watchLogger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// watchSite invalidates shells whenever anything under dir changes. New
// subdirectories are added to the watch set as they appear.
func watchSite(dir string, shells *ShellCache, log watchLogger) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				shells.Invalidate()
				if event.Has(fsnotify.Create) && isDir(event.Name) {
					if err := watcher.Add(event.Name); err != nil {
						log.Warnf("watch %s: %v", event.Name, err)
					}
				}
				log.Infof("site changed: %s", event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("site watcher: %v", err)
			}
		}
	}()
	return watcher, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
