package gpx

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// GPX namespace URIs.
const (
	Namespace10 = "http://www.topografix.com/GPX/1/0"
	Namespace11 = "http://www.topografix.com/GPX/1/1"
)

// Document is a parsed GPX document.
type Document struct {
	tree *etree.Document
	root *etree.Element
}

// BuildOptions controls what SingleTrack copies besides the track itself.
type BuildOptions struct {
	// Waypoints copies every top-level <wpt> into the new document.
	Waypoints bool
}

// ParseFile reads and parses the GPX file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &InputError{Path: path, Err: errors.New("is a directory")}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return parseBytes(data, path)
}

// Parse reads a GPX document from r.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &InputError{Err: err}
	}
	return parseBytes(data, "")
}

func parseBytes(data []byte, path string) (*Document, error) {
	if err := checkWellFormed(data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	tree := etree.NewDocument()
	// Some exporters still declare ISO-8859-1 or windows-1252.
	tree.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	root := tree.Root()
	if root == nil {
		return nil, &ParseError{Path: path, Err: ErrNoRoot}
	}
	if root.Tag != "gpx" {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: root element is <%s>", ErrNotGPX, root.FullTag())}
	}
	return &Document{tree: tree, root: root}, nil
}

// Namespace returns the namespace URI of the root element, or "" if none.
func (d *Document) Namespace() string { return d.root.NamespaceURI() }

// KnownNamespace reports whether the root is in the GPX 1.0 or 1.1 namespace.
func (d *Document) KnownNamespace() bool {
	switch d.Namespace() {
	case Namespace10, Namespace11:
		return true
	}
	return false
}

// Version returns the root version attribute.
func (d *Document) Version() string { return d.root.SelectAttrValue("version", "") }

// Creator returns the root creator attribute.
func (d *Document) Creator() string { return d.root.SelectAttrValue("creator", "") }

// Metadata returns the top-level <metadata> element, or nil.
func (d *Document) Metadata() *etree.Element {
	if els := d.children("metadata"); len(els) > 0 {
		return els[0]
	}
	return nil
}

// Waypoints returns the top-level <wpt> elements in document order.
func (d *Document) Waypoints() []*etree.Element { return d.children("wpt") }

// Tracks returns the top-level <trk> elements in document order. Index is
// 1-based.
func (d *Document) Tracks() []*Track {
	els := d.children("trk")
	tracks := make([]*Track, 0, len(els))
	for i, el := range els {
		tracks = append(tracks, &Track{Index: i + 1, el: el})
	}
	return tracks
}

// SingleTrack returns a new standalone document with the root attributes
// and metadata of d and exactly one copy of t. d and t are not modified.
func (d *Document) SingleTrack(t *Track, opts BuildOptions) *Document {
	root := etree.NewElement(d.root.Tag)
	root.Space = d.root.Space
	for _, a := range d.root.Attr {
		root.CreateAttr(a.FullKey(), a.Value)
	}

	if md := d.Metadata(); md != nil {
		root.AddChild(md.Copy())
	}
	if opts.Waypoints {
		for _, wpt := range d.Waypoints() {
			root.AddChild(wpt.Copy())
		}
	}
	root.AddChild(t.el.Copy())

	tree := etree.NewDocument()
	tree.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	tree.SetRoot(root)
	return &Document{tree: tree, root: root}
}

// Tree exposes the underlying element tree for serialization.
func (d *Document) Tree() *etree.Document { return d.tree }

// children matches by local name within the root's namespace so that
// prefixed documents (<gpx:trk>) resolve the same as default-namespace ones.
func (d *Document) children(tag string) []*etree.Element {
	ns := d.root.NamespaceURI()
	var out []*etree.Element
	for _, el := range d.root.ChildElements() {
		if el.Tag == tag && el.NamespaceURI() == ns {
			out = append(out, el)
		}
	}
	return out
}
