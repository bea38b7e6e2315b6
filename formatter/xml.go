package formatter

import (
	"bytes"
	"io"

	"github.com/theoremus-urban-solutions/gpx-track-splitter/gpx"
)

// XMLWriter serializes gpx.Documents.
type XMLWriter struct {
	indent int
}

// NewXMLWriter creates a writer that indents nested elements by indent
// spaces. indent <= 0 leaves whitespace untouched.
func NewXMLWriter(indent int) *XMLWriter {
	return &XMLWriter{indent: indent}
}

// BuildXML serializes doc. The document itself is not modified.
func (w *XMLWriter) BuildXML(doc *gpx.Document) ([]byte, error) {
	tree := doc.Tree().Copy()
	if w.indent > 0 {
		tree.Indent(w.indent)
	}
	var buf bytes.Buffer
	if _, err := tree.WriteTo(&buf); err != nil {
		return nil, err
	}
	if w.indent <= 0 {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Write serializes doc to out.
func (w *XMLWriter) Write(out io.Writer, doc *gpx.Document) error {
	b, err := w.BuildXML(doc)
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}
