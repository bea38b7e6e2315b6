// Package testutil holds GPX fixtures and file helpers shared by tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Pt is a fixture track point. Empty Time omits <time>.
type Pt struct {
	Lat, Lon float64
	Ele      float64
	Time     string
}

// GetTestDataPath returns absolute path to testdata/
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// CopyFixture copies testdata/<name> into dir and returns the copy's path,
// so tests never write split output into testdata.
func CopyFixture(t *testing.T, name, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(GetTestDataPath(), name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return WriteFile(t, dir, name, string(data))
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Track renders a <trk> with one <trkseg> per segment. Empty name omits
// <name>.
func Track(name string, segments ...[]Pt) string {
	var b strings.Builder
	b.WriteString("  <trk>\n")
	if name != "" {
		fmt.Fprintf(&b, "    <name>%s</name>\n", name)
	}
	for _, seg := range segments {
		b.WriteString("    <trkseg>\n")
		for _, p := range seg {
			fmt.Fprintf(&b, "      <trkpt lat=\"%g\" lon=\"%g\"><ele>%g</ele>", p.Lat, p.Lon, p.Ele)
			if p.Time != "" {
				fmt.Fprintf(&b, "<time>%s</time>", p.Time)
			}
			b.WriteString("</trkpt>\n")
		}
		b.WriteString("    </trkseg>\n")
	}
	b.WriteString("  </trk>\n")
	return b.String()
}

// GPX wraps body in a GPX 1.1 root with a metadata block.
func GPX(body ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="testutil">` + "\n")
	b.WriteString("  <metadata><name>fixture</name></metadata>\n")
	for _, s := range body {
		b.WriteString(s)
	}
	b.WriteString("</gpx>\n")
	return b.String()
}

// Waypoint renders a top-level <wpt>.
func Waypoint(name string, lat, lon float64) string {
	return fmt.Sprintf("  <wpt lat=\"%g\" lon=\"%g\"><name>%s</name></wpt>\n", lat, lon, name)
}
