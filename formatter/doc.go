// Package formatter serializes GPX documents to XML.
//
// Output always starts with an XML declaration and is re-indented unless
// indentation is disabled, in which case the whitespace copied from the
// source document is kept as-is.
package formatter
