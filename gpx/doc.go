// Package gpx reads GPX (GPS Exchange Format) documents and builds new
// single-track documents from them.
//
// This package is organized into:
// - document.go: parsing, top-level element lookup, single-track cloning
// - track.go: track access and point decoding
// - errors.go: InputError and ParseError
//
// The XML tree is held by github.com/beevik/etree so namespace prefixes,
// attributes and extension elements survive a parse/write cycle untouched.
package gpx
