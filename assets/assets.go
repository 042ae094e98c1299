// Package assets embeds the static files tripbook hands out: the itinerary
// template, the formatting guide and a sample trip.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File names used when writing assets to disk.
const (
	TemplateName = "itinerary_template.csv"
	GuideName    = "README.txt"
	SampleName   = "sample_thailand_trip.csv"
)

//go:embed itinerary_template.csv
var Template []byte

//go:embed README.txt
var Guide []byte

//go:embed sample_thailand_trip.csv
var Sample []byte

// ErrExists is returned by Write when the destination exists and overwrite
// was not requested.
var ErrExists = errors.New("assets: file already exists")

// Write copies data to path with mode 0644. An existing file is only replaced
// when overwrite is set.
func Write(path string, data []byte, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
