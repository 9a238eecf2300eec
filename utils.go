package main

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hajimehoshi/ebiten/v2"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func LoadImage(fsys FS, name string) *ebiten.Image {
	file, err := fsys.Open(name)
	Check(err)
	if err != nil {
		return nil
	}
	defer CloseFile(file)

	img, _, err := image.Decode(file)
	Check(err)
	if err != nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// LoadImages loads every file in dir whose name matches pattern, in directory
// order (which ReadDir guarantees to be sorted by filename). An empty result
// is an error: every image set this toy uses must have at least one image,
// there is no placeholder to fall back on.
func LoadImages(fsys FS, dir string, pattern string) []*ebiten.Image {
	files := GetFiles(fsys, dir, pattern)
	if len(files) == 0 {
		Check(fmt.Errorf("no files matching %s in %s", pattern, dir))
		return nil
	}
	var imgs []*ebiten.Image
	for _, file := range files {
		imgs = append(imgs, LoadImage(fsys, file))
	}
	return imgs
}

func LoadYAML(fsys FS, name string, v any) {
	data, err := fsys.ReadFile(name)
	Check(err)
	if err != nil {
		return
	}
	Check(yaml.Unmarshal(data, v))
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

func GetFiles(fsys FS, dir string, pattern string) []string {
	var files []string
	entries, err := fsys.ReadDir(dir)
	Check(err)
	for _, entry := range entries {
		matched, err := filepath.Match(pattern, entry.Name())
		Check(err)
		if matched {
			files = append(files, dir+"/"+entry.Name())
		}
	}
	return files
}

// FolderWatcher polls the modification times of the files in a folder. It
// exists so that a development run can reload images and config edited while
// the toy is running. Polling once per frame is crude but it has no
// dependencies and it cannot miss a change, only report it a frame late.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
