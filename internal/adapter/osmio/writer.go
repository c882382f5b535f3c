package osmio

import (
	"encoding/xml"
	"io"
)

// Generator identifies this tool in the output document's osm element.
const Generator = "fixpeaks"

var (
	osmStart = xml.StartElement{
		Name: xml.Name{Local: "osm"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: "0.6"},
			{Name: xml.Name{Local: "generator"}, Value: Generator},
		},
	}
	osmEnd = osmStart.End()
)

// Write serializes the document as OSM XML to w, including every untouched
// element.
func Write(w io.Writer, doc *Document, indent bool) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}

	if err := enc.EncodeToken(osmStart); err != nil {
		return err
	}
	for _, n := range doc.Nodes {
		if err := enc.Encode(n); err != nil {
			return err
		}
	}
	for _, way := range doc.Ways {
		if err := enc.Encode(way); err != nil {
			return err
		}
	}
	for _, rel := range doc.Relations {
		if err := enc.Encode(rel); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(osmEnd); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}
