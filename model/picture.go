package model

import "strings"

// Picture represents one renderable frame of a metafile
type Picture struct {
	Name       string
	Background Colour

	ColourSelectionMode ColourSelectionMode
	LineWidthMode       SpecMode
	MarkerSizeMode      SpecMode
	EdgeWidthMode       SpecMode

	VDCExtent           Extent
	ScalingMode         ScalingMode
	MetricScalingFactor float32
	VDCIntegerPrecision uint16
	VDCRealPrecision    RealFormat

	// Attribute values current at the end of the picture
	LineWidth  uint16
	LineColour Colour
	LineJoin   JoinStyle
	MitreLimit float32

	TextColour                 Colour
	CharacterOrientation       Orientation
	CharacterExpansionFactor   float32
	CharacterHeight            uint16
	CharacterSetIndex          uint16
	AlternateCharacterSetIndex uint16

	FillColour      Colour
	FillBundleIndex uint16
	InteriorStyle   InteriorStyle

	EdgeType       EdgeType
	EdgeWidth      uint16
	EdgeColour     Colour
	EdgeVisibility EdgeVisibility
	EdgeJoin       JoinStyle

	Polylines []Polyline
	Text      []TextRun
}

// NewPicture creates an empty picture with the default VDC window
func NewPicture(name string) *Picture {
	return &Picture{
		Name:      name,
		VDCExtent: DefaultExtent(),
		Polylines: make([]Polyline, 0),
		Text:      make([]TextRun, 0),
	}
}

// VDCWidth returns the absolute width of the VDC window
func (p *Picture) VDCWidth() int {
	return p.VDCExtent.Width()
}

// VDCHeight returns the absolute height of the VDC window
func (p *Picture) VDCHeight() int {
	return p.VDCExtent.Height()
}

// Scale returns the factors that map VDC units onto a drawing area of the
// given pixel size. A degenerate window axis yields a zero factor.
func (p *Picture) Scale(width, height float64) (sx, sy float64) {
	if w := p.VDCWidth(); w > 0 {
		sx = width / float64(w)
	}
	if h := p.VDCHeight(); h > 0 {
		sy = height / float64(h)
	}
	return sx, sy
}

// Strings joins text runs into complete strings. A run that is not final
// continues into the next one; a trailing unfinished run is returned as is.
func (p *Picture) Strings() []string {
	var out []string
	var sb strings.Builder
	pending := false
	for _, t := range p.Text {
		sb.WriteString(t.Content)
		pending = true
		if t.Finality != NotFinal {
			out = append(out, sb.String())
			sb.Reset()
			pending = false
		}
	}
	if pending {
		out = append(out, sb.String())
	}
	return out
}

// Polyline is a connected sequence of line segments
type Polyline struct {
	Points []Point

	// Line attributes current when the polyline was read
	Colour Colour
	Width  uint16
}

// Length returns the total length of the polyline in VDC units
func (l Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(l.Points); i++ {
		total += l.Points[i-1].Distance(l.Points[i])
	}
	return total
}

// TextRun is one text element anchored at a VDC position
type TextRun struct {
	Position Point
	Finality Finality
	Content  string

	// Text attributes current when the run was read
	Colour Colour
	Height uint16
}
