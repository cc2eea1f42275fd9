package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vdobler/barchart/surface"
)

type encoder struct {
	name   string
	suffix string // inserted before the extension of the snapshot file
	encode func(io.Writer, *surface.Canvas) error
}

var (
	vgSnapshot = encoder{"vg", "", surface.WritePNG}
	ggSnapshot = encoder{"gg", "-gg", surface.EncodePNG}
	svgExport  = encoder{"svg", "", surface.WriteSVG}
)

// snapshotPath derives the output file of enc from the configured one.
func snapshotPath(file string, enc encoder) string {
	ext := filepath.Ext(file)
	base := strings.TrimSuffix(file, ext)
	if enc.name == "svg" {
		ext = ".svg"
	}
	return base + enc.suffix + ext
}

func writeSnapshot(path string, c *surface.Canvas, enc encoder) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := enc.encode(f, c); err != nil {
		return fmt.Errorf("%s snapshot %s: %w", enc.name, path, err)
	}
	return nil
}

// snapshot writes the canvas as it is in this frame and reports the
// outcome for the status line.
func (m Model) snapshot(enc encoder) string {
	path := snapshotPath(m.cfg.Snapshot, enc)
	if err := writeSnapshot(path, m.canvas, enc); err != nil {
		m.log.Error().Err(err).Msg("Snapshot failed")
		return "snapshot failed: " + err.Error()
	}
	m.log.Info().Str("file", path).Str("painter", enc.name).Msg("Snapshot written")
	return "wrote " + path
}
