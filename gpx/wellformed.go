package gpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// checkWellFormed runs a strict token pass over data and rejects the
// constructs etree accepts silently: content after the root element,
// repeated attributes and undeclared namespace prefixes.
func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	type scope struct {
		name     xml.Name
		prefixes map[string]bool
	}
	var open []scope
	rootClosed := false

	bound := func(prefix string) bool {
		switch prefix {
		case "", "xml", "xmlns":
			return true
		}
		for i := len(open) - 1; i >= 0; i-- {
			if open[i].prefixes[prefix] {
				return true
			}
		}
		return false
	}

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			if len(open) > 0 {
				return fmt.Errorf("unexpected end of input inside <%s>", qualified(open[len(open)-1].name))
			}
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return fmt.Errorf("%w: element <%s> after the root element", ErrTrailingContent, qualified(t.Name))
			}
			s := scope{name: t.Name, prefixes: map[string]bool{}}
			seen := make(map[xml.Name]bool, len(t.Attr))
			for _, a := range t.Attr {
				if seen[a.Name] {
					return fmt.Errorf("%w: %s on <%s>", ErrDuplicateAttr, qualified(a.Name), qualified(t.Name))
				}
				seen[a.Name] = true
				if a.Name.Space == "xmlns" {
					s.prefixes[a.Name.Local] = true
				}
			}
			open = append(open, s)
			if !bound(t.Name.Space) {
				return fmt.Errorf("%w: %q on <%s>", ErrUnboundPrefix, t.Name.Space, qualified(t.Name))
			}
			for _, a := range t.Attr {
				if !bound(a.Name.Space) {
					return fmt.Errorf("%w: %q on attribute %s", ErrUnboundPrefix, a.Name.Space, qualified(a.Name))
				}
			}

		case xml.EndElement:
			if len(open) == 0 {
				return fmt.Errorf("unexpected end tag </%s>", qualified(t.Name))
			}
			top := open[len(open)-1]
			if top.name != t.Name {
				return fmt.Errorf("element <%s> closed by </%s>", qualified(top.name), qualified(t.Name))
			}
			open = open[:len(open)-1]
			if len(open) == 0 {
				rootClosed = true
			}

		case xml.CharData:
			if rootClosed && len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("%w: text after the root element", ErrTrailingContent)
			}
		}
	}
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
