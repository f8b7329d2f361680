package model

import "fmt"

// MetafileVersion is the declared CGM version number (1 to 4)
type MetafileVersion int16

// String returns the version as "CGM:N"
func (v MetafileVersion) String() string {
	return fmt.Sprintf("CGM:%d", int16(v))
}

// VDCType selects integer or real virtual device coordinates
type VDCType int16

const (
	VDCInteger VDCType = 0
	VDCReal    VDCType = 1
)

// String returns the string representation of the VDC type
func (t VDCType) String() string {
	switch t {
	case VDCInteger:
		return "Integer"
	case VDCReal:
		return "Real"
	default:
		return fmt.Sprintf("VDCType(%d)", int16(t))
	}
}

// RealFormat classifies a real precision declaration.
type RealFormat int

const (
	Fixed32 RealFormat = iota
	Fixed64
	Float32
	Float64
)

// String returns the string representation of the real format
func (f RealFormat) String() string {
	switch f {
	case Fixed32:
		return "Fixed32"
	case Fixed64:
		return "Fixed64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// ColourModel is the colour model declared by the metafile.
type ColourModel uint16

const (
	ColourModelRGB        ColourModel = 1
	ColourModelCIELAB     ColourModel = 2
	ColourModelCIELUV     ColourModel = 3
	ColourModelCMYK       ColourModel = 4
	ColourModelRGBRelated ColourModel = 5
)

// Supported reports whether the decoder can interpret colour payloads
// declared under this model.
func (m ColourModel) Supported() bool {
	return m == ColourModelRGB || m == ColourModelCMYK
}

// String returns the string representation of the colour model
func (m ColourModel) String() string {
	switch m {
	case ColourModelRGB:
		return "RGB"
	case ColourModelCIELAB:
		return "CIELAB"
	case ColourModelCIELUV:
		return "CIELUV"
	case ColourModelCMYK:
		return "CMYK"
	case ColourModelRGBRelated:
		return "RGB-related"
	default:
		return fmt.Sprintf("ColourModel(%d)", uint16(m))
	}
}

// CharacterSetType is the kind of a declared character set
type CharacterSetType uint16

const (
	CharSet94           CharacterSetType = 0
	CharSet96           CharacterSetType = 1
	CharSet94Multibyte  CharacterSetType = 2
	CharSet96Multibyte  CharacterSetType = 3
	CharSetCompleteCode CharacterSetType = 4
)

// String returns the string representation of the character set type
func (t CharacterSetType) String() string {
	switch t {
	case CharSet94:
		return "94-character"
	case CharSet96:
		return "96-character"
	case CharSet94Multibyte:
		return "94-character multibyte"
	case CharSet96Multibyte:
		return "96-character multibyte"
	case CharSetCompleteCode:
		return "complete code"
	default:
		return fmt.Sprintf("CharacterSetType(%d)", uint16(t))
	}
}

// DrawingSet names an element set from a metafile element list.
type DrawingSet uint16

const (
	DrawingSetDrawing DrawingSet = iota
	DrawingSetDrawingPlusControl
	DrawingSetVersion2
	DrawingSetExtendedPrimitives
	DrawingSetVersion2GKSM
	DrawingSetVersion3
	DrawingSetVersion4
)

// String returns the string representation of the element set
func (s DrawingSet) String() string {
	switch s {
	case DrawingSetDrawing:
		return "drawing"
	case DrawingSetDrawingPlusControl:
		return "drawing-plus-control"
	case DrawingSetVersion2:
		return "version-2"
	case DrawingSetExtendedPrimitives:
		return "extended-primitives"
	case DrawingSetVersion2GKSM:
		return "version-2-gksm"
	case DrawingSetVersion3:
		return "version-3"
	case DrawingSetVersion4:
		return "version-4"
	default:
		return fmt.Sprintf("DrawingSet(%d)", uint16(s))
	}
}

// ColourSelectionMode selects indexed or direct colour specification
type ColourSelectionMode uint16

const (
	ColourIndexed ColourSelectionMode = 0
	ColourDirect  ColourSelectionMode = 1
)

func (m ColourSelectionMode) String() string {
	switch m {
	case ColourIndexed:
		return "indexed"
	case ColourDirect:
		return "direct"
	default:
		return fmt.Sprintf("ColourSelectionMode(%d)", uint16(m))
	}
}

// SpecMode is the specification mode of a line width, marker size or edge
// width.
type SpecMode uint16

const (
	SpecAbsolute   SpecMode = 0
	SpecScaled     SpecMode = 1
	SpecFractional SpecMode = 2
	SpecMM         SpecMode = 3
)

func (m SpecMode) String() string {
	switch m {
	case SpecAbsolute:
		return "absolute"
	case SpecScaled:
		return "scaled"
	case SpecFractional:
		return "fractional"
	case SpecMM:
		return "mm"
	default:
		return fmt.Sprintf("SpecMode(%d)", uint16(m))
	}
}

// ScalingMode is abstract or metric picture scaling
type ScalingMode uint16

const (
	ScalingAbstract ScalingMode = 0
	ScalingMetric   ScalingMode = 1
)

func (m ScalingMode) String() string {
	switch m {
	case ScalingAbstract:
		return "abstract"
	case ScalingMetric:
		return "metric"
	default:
		return fmt.Sprintf("ScalingMode(%d)", uint16(m))
	}
}

// InteriorStyle controls how filled areas are drawn
type InteriorStyle uint16

const (
	InteriorHollow InteriorStyle = iota
	InteriorSolid
	InteriorPattern
	InteriorHatch
	InteriorEmpty
	InteriorGeometricPattern
	InteriorInterpolated
)

func (s InteriorStyle) String() string {
	switch s {
	case InteriorHollow:
		return "hollow"
	case InteriorSolid:
		return "solid"
	case InteriorPattern:
		return "pattern"
	case InteriorHatch:
		return "hatch"
	case InteriorEmpty:
		return "empty"
	case InteriorGeometricPattern:
		return "geometric-pattern"
	case InteriorInterpolated:
		return "interpolated"
	default:
		return fmt.Sprintf("InteriorStyle(%d)", uint16(s))
	}
}

// JoinStyle is used for both line joins and edge joins.
type JoinStyle uint16

const (
	JoinUnspecified JoinStyle = 1
	JoinMitre       JoinStyle = 2
	JoinRound       JoinStyle = 3
	JoinBevel       JoinStyle = 4
)

func (j JoinStyle) String() string {
	switch j {
	case JoinUnspecified:
		return "unspecified"
	case JoinMitre:
		return "mitre"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("JoinStyle(%d)", uint16(j))
	}
}

// EdgeType is the dash pattern used for edges
type EdgeType uint16

const (
	EdgeSolid      EdgeType = 1
	EdgeDash       EdgeType = 2
	EdgeDot        EdgeType = 3
	EdgeDashDot    EdgeType = 4
	EdgeDashDotDot EdgeType = 5
)

func (t EdgeType) String() string {
	switch t {
	case EdgeSolid:
		return "solid"
	case EdgeDash:
		return "dash"
	case EdgeDot:
		return "dot"
	case EdgeDashDot:
		return "dash-dot"
	case EdgeDashDotDot:
		return "dash-dot-dot"
	default:
		return fmt.Sprintf("EdgeType(%d)", uint16(t))
	}
}

// EdgeVisibility turns edge drawing off or on
type EdgeVisibility uint16

const (
	EdgeOff EdgeVisibility = 0
	EdgeOn  EdgeVisibility = 1
)

func (v EdgeVisibility) String() string {
	if v == EdgeOn {
		return "on"
	}
	if v == EdgeOff {
		return "off"
	}
	return fmt.Sprintf("EdgeVisibility(%d)", uint16(v))
}

// Finality marks whether a text fragment completes its string.
type Finality uint16

const (
	NotFinal Finality = 0
	Final    Finality = 1
)

func (f Finality) String() string {
	if f == Final {
		return "final"
	}
	if f == NotFinal {
		return "not-final"
	}
	return fmt.Sprintf("Finality(%d)", uint16(f))
}
