package gpxsplit

import (
	"fmt"
	"path/filepath"

	"github.com/theoremus-urban-solutions/gpx-track-splitter/config"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/gpx"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/utils"
)

// namer hands out output file names for one run.
type namer struct {
	mode string
	base string
	used map[string]bool
}

func newNamer(mode, inputPath string) *namer {
	return &namer{mode: mode, base: Basename(inputPath), used: map[string]bool{}}
}

func (n *namer) next(sum gpx.Summary) string {
	if n.mode != config.NamingName {
		return indexFileName(n.base, sum.Index)
	}

	name := fmt.Sprintf("%s_%s.gpx", n.base, utils.CleanFilename(TrackLabel(sum)))
	for n.used[name] {
		stem := name[:len(name)-len(filepath.Ext(name))]
		name = fmt.Sprintf("%s_%d.gpx", stem, sum.Index)
	}
	n.used[name] = true
	return name
}

// TrackLabel is the human name of a track: its <name>, else Track_<start
// time>, else Track_<index>.
func TrackLabel(sum gpx.Summary) string {
	if sum.Name != "" {
		return sum.Name
	}
	if ts, ok := utils.CompactTimestamp(sum.StartTime); ok {
		return "Track_" + ts
	}
	return fmt.Sprintf("Track_%d", sum.Index)
}
