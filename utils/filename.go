package utils

import (
	"regexp"
	"strings"
)

// UnnamedTrack is used when a name cleans down to nothing.
const UnnamedTrack = "unnamed_track"

var (
	invalidFileChars = regexp.MustCompile(`[\\/*?:"<>|]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	underscoreRun    = regexp.MustCompile(`_+`)
)

// CleanFilename turns an arbitrary track name into something safe to use as
// part of a file name.
func CleanFilename(name string) string {
	cleaned := invalidFileChars.ReplaceAllString(name, "_")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, "_")
	cleaned = underscoreRun.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return UnnamedTrack
	}
	return cleaned
}
