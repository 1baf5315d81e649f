package assets

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/lantern/engine/assets/loaders"
	"github.com/spaghettifunk/lantern/engine/core"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// AssetManager resolves asset paths against a base directory and
// decodes them through the registered loaders. It also watches the
// asset tree so edits made while the scene is running are at least
// visible in the log.
type AssetManager struct {
	baseDir     string
	imageLoader *loaders.ImageLoader

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		// vertical flip on load is a required configuration of the
		// decode capability; texture coordinates assume it
		imageLoader: &loaders.ImageLoader{FlipY: true},
		fsnotify:    fsWatch,
		done:        make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize(baseDir string) error {
	am.baseDir = baseDir

	go am.start()

	if err := am.watchRecursive(baseDir); err != nil {
		// a missing asset directory is not fatal; every load will
		// report its own failure
		core.LogWarn("could not watch asset directory %s: %v", baseDir, err)
	}

	return nil
}

// LoadImage decodes the image at the given path, relative to the
// asset base directory, into packed RGB/RGBA pixels.
func (am *AssetManager) LoadImage(relPath string) (*metadata.ImageData, error) {
	if am.isClosed {
		return nil, errors.New("asset manager already shut down")
	}
	return am.imageLoader.Load(filepath.Join(am.baseDir, relPath))
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return am.fsnotify.Close()
}

func (am *AssetManager) start() {
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				core.LogInfo("asset %s changed on disk; restart to pick up the change", e.Name)
			}
			if e.Op&fsnotify.Remove != 0 {
				core.LogWarn("asset %s removed from disk", e.Name)
			}
		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %v", err)
		case <-am.done:
			return
		}
	}
}

// watchRecursive starts watching the named directory and all
// sub-directories.
func (am *AssetManager) watchRecursive(dir string) error {
	return filepath.Walk(dir, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if err := am.fsnotify.Add(walkPath); err != nil {
				return err
			}
		}
		return nil
	})
}
