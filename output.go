package gpxsplit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/gpx-track-splitter/config"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/formatter"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/gpx"
)

// Basename returns the input file name without its final extension. Names
// that are only an extension (".gpx") are returned unchanged.
func Basename(inputPath string) string {
	name := filepath.Base(inputPath)
	if stem := strings.TrimSuffix(name, filepath.Ext(name)); stem != "" {
		return stem
	}
	return name
}

// OutputPath returns <dir of input>/<basename>_Track_<index>.gpx.
func OutputPath(inputPath string, index int) string {
	return filepath.Join(filepath.Dir(inputPath), indexFileName(Basename(inputPath), index))
}

func indexFileName(base string, index int) string {
	return fmt.Sprintf("%s_Track_%d.gpx", base, index)
}

// WriteOutput writes doc to OutputPath(inputPath, index) with the default
// indentation, replacing any existing file, and returns the path written.
func WriteOutput(doc *gpx.Document, inputPath string, index int) (string, error) {
	path := OutputPath(inputPath, index)
	if err := writeFile(path, doc, formatter.NewXMLWriter(config.DefaultIndent), true); err != nil {
		return path, &WriteError{Path: path, Index: index, Err: err}
	}
	return path, nil
}

// writeFile serializes before opening so a formatting failure never leaves a
// truncated target behind.
func writeFile(path string, doc *gpx.Document, xw *formatter.XMLWriter, overwrite bool) error {
	var buf bytes.Buffer
	if err := xw.Write(&buf, doc); err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
