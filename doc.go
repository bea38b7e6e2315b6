// Package gpxsplit splits a multi-track GPX file into one GPX file per
// track.
//
// Each output keeps the root attributes and namespace declarations of the
// input, its <metadata> block and, unless disabled, its waypoints, followed
// by exactly one track. Outputs are named <basename>_Track_<N>.gpx and are
// written next to the input unless an output directory is configured.
//
//	s := gpxsplit.NewSplitter(config.Default(), os.Stdout, nil)
//	res, err := s.Run(ctx, "Current.gpx")
package gpxsplit
