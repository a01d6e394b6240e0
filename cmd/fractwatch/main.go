// This package monitors a folder of L-system definition files (*.yaml)
// and re-renders a PNG next to each one whenever the definition changes.
package main

import (
	"flag"
	"fmt"
	"hash/crc64"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/scottkirkwood/fract"
	"github.com/scottkirkwood/fract/lsystem"
)

var (
	folderFlag = flag.String("folder", ".", "Folder of definition files to watch")

	crcTable = crc64.MakeTable(crc64.ECMA)
	fileCrc  = map[string]uint64{}
)

func main() {
	flag.Parse()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Printf("Failed to create watcher: %v\n", err)
		return
	}
	defer watcher.Close()

	matches, err := filepath.Glob(filepath.Join(*folderFlag, "*.yaml"))
	if err != nil {
		fmt.Printf("Bad folder %q: %v\n", *folderFlag, err)
		return
	}
	for _, fname := range matches {
		renderOne(fname)
	}

	if err := watcher.Add(*folderFlag); err != nil {
		fmt.Printf("Problem adding folder watcher: %v\n", err)
		return
	}
	fmt.Printf("Monitoring folder %q\n", *folderFlag)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) == ".yaml" {
				renderOne(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}

// renderOne draws the definition in fname to a PNG alongside it, skipping
// files whose content hasn't changed since the last render.
func renderOne(fname string) {
	data, err := os.ReadFile(fname)
	if err != nil {
		fmt.Printf("Unable to read %q: %v\n", fname, err)
		return
	}
	crc := crc64.Checksum(data, crcTable)
	if fileCrc[fname] == crc {
		return
	}

	def, err := lsystem.Parse(data)
	if err != nil {
		fmt.Printf("Skipping %q: %v\n", fname, err)
		return
	}
	pts, err := def.Points(def.Level)
	if err != nil {
		fmt.Printf("Skipping %q: %v\n", fname, err)
		return
	}

	target := strings.TrimSuffix(fname, filepath.Ext(fname)) + ".png"
	ctx := fract.Polyline(pts, fract.Options{Title: def.Name})
	if err := ctx.WritePNG(target); err != nil {
		fmt.Printf("Unable to write %q: %v\n", target, err)
		return
	}
	fileCrc[fname] = crc
	fmt.Printf("Rendered %s (%d points)\n", target, pts.Len())
}
