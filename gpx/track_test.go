package gpx_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gpx-track-splitter/gpx"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/internal/testutil"
)

func ptr(f float64) *float64 { return &f }

func TestTrack_Segments(t *testing.T) {
	doc, err := gpx.ParseFile(filepath.Join(testutil.GetTestDataPath(), "Current.gpx"))
	require.NoError(t, err)

	segs, err := doc.Tracks()[1].Segments()
	require.NoError(t, err)

	want := [][]gpx.Point{
		{
			{Lat: 51.5033, Lon: -0.1195, Ele: ptr(8.0), Time: "2024-05-04T12:30:00Z"},
			{Lat: 51.5036, Lon: -0.1190, Ele: ptr(8.2), Time: "2024-05-04T12:31:00Z"},
		},
		{
			{Lat: 51.5040, Lon: -0.1185, Ele: ptr(8.5), Time: "2024-05-04T12:40:00Z"},
		},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestTrack_PointsWithoutElevation(t *testing.T) {
	input := testutil.GPX(`  <trk><trkseg><trkpt lat="10.5" lon="-3.25"/></trkseg></trk>` + "\n")
	doc, err := gpx.Parse(strings.NewReader(input))
	require.NoError(t, err)

	pts, err := doc.Tracks()[0].Points()
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.Nil(t, pts[0].Ele)
	assert.Equal(t, "", pts[0].Time)
	assert.Equal(t, 10.5, pts[0].Lat)
	assert.Equal(t, -3.25, pts[0].Lon)
}

func TestTrack_Summary(t *testing.T) {
	doc, err := gpx.ParseFile(filepath.Join(testutil.GetTestDataPath(), "Current.gpx"))
	require.NoError(t, err)
	tracks := doc.Tracks()

	sum, err := tracks[0].Summary()
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Index)
	assert.Equal(t, "Morning Ride", sum.Name)
	assert.Equal(t, 1, sum.Segments)
	assert.Equal(t, 3, sum.Points)
	assert.Equal(t, "2024-05-04T08:00:00Z", sum.StartTime)
	assert.Greater(t, sum.LengthKM, 0.05)
	assert.Less(t, sum.LengthKM, 0.2)

	sum, err = tracks[1].Summary()
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Segments)
	assert.Equal(t, 3, sum.Points)

	sum, err = tracks[2].Summary()
	require.NoError(t, err)
	assert.Equal(t, "", sum.Name)
	assert.Equal(t, "2024-05-04T18:15:30Z", sum.StartTime)
}

func TestTrack_SummaryBadCoordinate(t *testing.T) {
	input := testutil.GPX(`  <trk><name>bad</name><trkseg><trkpt lat="north" lon="1"/></trkseg></trk>` + "\n")
	doc, err := gpx.Parse(strings.NewReader(input))
	require.NoError(t, err)

	sum, err := doc.Tracks()[0].Summary()
	require.Error(t, err)
	assert.Equal(t, 1, sum.Index)
	assert.Equal(t, "bad", sum.Name)
}

func TestTrack_EmptyTrack(t *testing.T) {
	input := testutil.GPX("  <trk><name>empty</name></trk>\n")
	doc, err := gpx.Parse(strings.NewReader(input))
	require.NoError(t, err)

	sum, err := doc.Tracks()[0].Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Segments)
	assert.Equal(t, 0, sum.Points)
	assert.Zero(t, sum.LengthKM)
}
