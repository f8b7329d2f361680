package model

import "strings"

// Document represents a complete decoded metafile
type Document struct {
	FileName    string
	Description string
	Version     MetafileVersion

	Precision         Precision
	ColourModel       ColourModel
	ColourValueExtent ColourExtent

	// Font is the first entry of the metafile font list, empty if the
	// metafile declares none.
	Font          string
	CharacterSets []CharacterSet
	ElementList   []DrawingSet

	Pictures []*Picture
}

// Precision holds the metafile descriptor precision declarations.
// Declared widths are recorded as-is; coordinate and integer payloads are
// always read as 16-bit values.
type Precision struct {
	Integer        int
	Real           RealFormat
	VDCType        VDCType
	VDCInteger     int
	VDCReal        RealFormat
	Index          int
	ColourIndex    int
	Colour         int
	MaxColourIndex uint16
}

// DefaultPrecision returns the precision state a metafile starts with.
func DefaultPrecision() Precision {
	return Precision{
		Integer:        16,
		Real:           Fixed32,
		VDCType:        VDCInteger,
		VDCInteger:     16,
		VDCReal:        Fixed32,
		Index:          16,
		ColourIndex:    8,
		Colour:         8,
		MaxColourIndex: 63,
	}
}

// CharacterSet is one entry of the metafile character set list
type CharacterSet struct {
	Type        CharacterSetType
	Designation string
}

// NewDocument creates a new empty document with descriptor defaults
func NewDocument() *Document {
	return &Document{
		Version:           1,
		Precision:         DefaultPrecision(),
		ColourModel:       ColourModelRGB,
		ColourValueExtent: DefaultColourExtent(),
		CharacterSets:     make([]CharacterSet, 0),
		Pictures:          make([]*Picture, 0),
	}
}

// AddPicture appends a picture to the document
func (d *Document) AddPicture(p *Picture) {
	d.Pictures = append(d.Pictures, p)
}

// Picture returns a picture by number (1-indexed)
func (d *Document) Picture(number int) *Picture {
	if number < 1 || number > len(d.Pictures) {
		return nil
	}
	return d.Pictures[number-1]
}

// PictureCount returns the total number of pictures
func (d *Document) PictureCount() int {
	return len(d.Pictures)
}

// Text returns the strings of every picture, one per line, with pictures
// separated by a blank line.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, p := range d.Pictures {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, s := range p.Strings() {
			sb.WriteString(s)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
