package fract

import (
	"fmt"
	"os"
	"path"

	"github.com/fogleman/gg"
)

const tmpFolder = "./"

// SafeWrite noisily saves the context to a temp file then renames it into
// place. The extension picks the format (.png, .svg or .pdf).
func (s Seed) SafeWrite(ctx *Context, prefix, ext string) error {
	fname := s.GetFilename(prefix, ext)
	writers := map[string]func(string) error{
		".png": ctx.WritePNG,
		".svg": ctx.WriteSVG,
		".pdf": ctx.WritePDF,
	}
	write, ok := writers[ext]
	if !ok {
		return fmt.Errorf("unsupported file format %s", ext)
	}
	if err := safeWrite(write, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// SafeWritePNG is SafeWrite for a raster context (always PNG).
func (s Seed) SafeWritePNG(ctx *gg.Context, prefix string) error {
	fname := s.GetFilename(prefix, ".png")
	if err := safeWrite(ctx.SavePNG, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(write func(string) error, fname string) error {
	if err := os.MkdirAll(path.Dir(fname), 0775); err != nil {
		return err
	}

	ext := path.Ext(fname)
	tmpfile, err := os.CreateTemp(tmpFolder, "fract.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close()
	if err := write(tmpfile.Name()); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	// Note: the folders here need to be on the same drive
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		return err
	}

	return os.Chmod(fname, 0664)
}
