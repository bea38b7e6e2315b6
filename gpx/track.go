package gpx

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/theoremus-urban-solutions/gpx-track-splitter/utils"
)

// Track is one <trk> element of a parsed Document.
type Track struct {
	// Index is the 1-based position of the track in its document.
	Index int

	el *etree.Element
}

// Point is a single <trkpt>.
type Point struct {
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Ele  *float64 `xml:"ele"`
	Time string   `xml:"time"`
}

type trackXML struct {
	Segments []segmentXML `xml:"trkseg"`
}

type segmentXML struct {
	Points []Point `xml:"trkpt"`
}

// Summary describes a track for logs and run results.
type Summary struct {
	Index    int
	Name     string
	Segments int
	Points   int
	LengthKM float64
	// StartTime is the raw <time> of the first point, if any.
	StartTime string
}

// Name returns the trimmed text of the track's <name>, or "".
func (t *Track) Name() string {
	if n := t.el.SelectElement("name"); n != nil {
		return strings.TrimSpace(n.Text())
	}
	return ""
}

// Segments decodes the track's points grouped by <trkseg>.
func (t *Track) Segments() ([][]Point, error) {
	tree := etree.NewDocument()
	tree.SetRoot(t.el.Copy())
	raw, err := tree.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("encode track %d: %w", t.Index, err)
	}

	var tx trackXML
	if err := xml.Unmarshal(raw, &tx); err != nil {
		return nil, fmt.Errorf("decode track %d: %w", t.Index, err)
	}

	segs := make([][]Point, 0, len(tx.Segments))
	for _, s := range tx.Segments {
		segs = append(segs, s.Points)
	}
	return segs, nil
}

// Points returns every point of the track in document order.
func (t *Track) Points() ([]Point, error) {
	segs, err := t.Segments()
	if err != nil {
		return nil, err
	}
	var pts []Point
	for _, s := range segs {
		pts = append(pts, s...)
	}
	return pts, nil
}

// Summary computes point counts and length. On a decode error the returned
// Summary still carries Index and Name.
func (t *Track) Summary() (Summary, error) {
	sum := Summary{Index: t.Index, Name: t.Name()}
	segs, err := t.Segments()
	if err != nil {
		return sum, err
	}

	sum.Segments = len(segs)
	for _, seg := range segs {
		sum.Points += len(seg)
		for i := 1; i < len(seg); i++ {
			sum.LengthKM += utils.HaversineKM(seg[i-1].Lat, seg[i-1].Lon, seg[i].Lat, seg[i].Lon)
		}
		if sum.StartTime == "" && len(seg) > 0 {
			sum.StartTime = strings.TrimSpace(seg[0].Time)
		}
	}
	return sum, nil
}
