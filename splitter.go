package gpxsplit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/gpx-track-splitter/config"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/formatter"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/gpx"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/utils"
)

// Splitter writes every track of a GPX file to its own GPX file.
type Splitter struct {
	Cfg config.AppConfig

	out    io.Writer
	logger *slog.Logger
	xml    *formatter.XMLWriter
}

// Result lists what one Run produced. Files[i] holds Tracks[i].
type Result struct {
	Input  string
	Tracks []gpx.Summary
	Files  []string
}

// NewSplitter creates a Splitter printing user notices to out. A nil logger
// uses slog.Default().
func NewSplitter(cfg config.AppConfig, out io.Writer, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = io.Discard
	}
	return &Splitter{
		Cfg:    cfg,
		out:    out,
		logger: logger,
		xml:    formatter.NewXMLWriter(cfg.Output.Indent),
	}
}

// Run parses inputPath and writes one file per track. A document without
// tracks is not an error. ctx is checked between tracks.
func (s *Splitter) Run(ctx context.Context, inputPath string) (*Result, error) {
	if !strings.EqualFold(filepath.Ext(inputPath), ".gpx") {
		s.logger.Warn("input file does not have .gpx extension, proceeding anyway", "path", inputPath)
	}

	doc, err := gpx.ParseFile(inputPath)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("parsed input", "path", inputPath, "version", doc.Version(), "creator", doc.Creator(), "namespace", doc.Namespace())
	if !doc.KnownNamespace() {
		s.logger.Warn("root element is not in a GPX 1.0 or 1.1 namespace", "path", inputPath, "namespace", doc.Namespace())
	}

	res := &Result{Input: inputPath}
	tracks := doc.Tracks()
	if len(tracks) == 0 {
		fmt.Fprintf(s.out, "0 tracks found in %s\n", inputPath)
		return res, nil
	}
	fmt.Fprintf(s.out, "Found %d tracks in %s\n", len(tracks), inputPath)

	dir, err := s.outputDir(inputPath)
	if err != nil {
		return res, err
	}

	opts := gpx.BuildOptions{Waypoints: s.Cfg.Include.Waypoints}
	names := newNamer(s.Cfg.Output.Naming, inputPath)
	for _, t := range tracks {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		sum, err := t.Summary()
		if err != nil {
			s.logger.Warn("could not decode track points", "track", t.Index, "error", err)
		}

		path := filepath.Join(dir, names.next(sum))
		single := doc.SingleTrack(t, opts)
		if err := writeFile(path, single, s.xml, s.Cfg.Output.Overwrite); err != nil {
			return res, &WriteError{Path: path, Index: t.Index, Err: err}
		}

		res.Tracks = append(res.Tracks, sum)
		res.Files = append(res.Files, path)
		s.logger.Info("track written",
			"track", t.Index,
			"name", sum.Name,
			"segments", sum.Segments,
			"points", sum.Points,
			"length", utils.PresentableDistance(sum.LengthKM),
			"path", path)
		fmt.Fprintf(s.out, "Created: %s\n", path)
	}

	fmt.Fprintf(s.out, "\nSuccessfully split %s into %d separate GPX files.\n", inputPath, len(res.Files))
	return res, nil
}

func (s *Splitter) outputDir(inputPath string) (string, error) {
	if s.Cfg.Output.Dir == "" {
		return filepath.Dir(inputPath), nil
	}
	if err := os.MkdirAll(s.Cfg.Output.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", s.Cfg.Output.Dir, err)
	}
	return s.Cfg.Output.Dir, nil
}
