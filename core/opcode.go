package core

import "fmt"

// Class is the 4-bit element class of a command header
type Class uint8

const (
	ClassDelimiter            Class = 0
	ClassMetafileDescriptor   Class = 1
	ClassPictureDescriptor    Class = 2
	ClassControl              Class = 3
	ClassPrimitive            Class = 4
	ClassAttribute            Class = 5
	ClassEscape               Class = 6
	ClassExternal             Class = 7
	ClassSegment              Class = 8
	ClassApplicationStructure Class = 9
)

// String returns the string representation of the class
func (c Class) String() string {
	switch c {
	case ClassDelimiter:
		return "Delimiter"
	case ClassMetafileDescriptor:
		return "MetafileDescriptor"
	case ClassPictureDescriptor:
		return "PictureDescriptor"
	case ClassControl:
		return "Control"
	case ClassPrimitive:
		return "Primitive"
	case ClassAttribute:
		return "Attribute"
	case ClassEscape:
		return "Escape"
	case ClassExternal:
		return "External"
	case ClassSegment:
		return "Segment"
	case ClassApplicationStructure:
		return "ApplicationStructure"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Opcode identifies an element: the header word with the length bits
// cleared, i.e. class<<12 | id<<5.
type Opcode uint16

// MakeOpcode builds the opcode for a class and element id.
func MakeOpcode(class Class, id uint8) Opcode {
	return Opcode(uint16(class&0x0F)<<12 | uint16(id&0x7F)<<5)
}

// Class returns the element class of the opcode
func (o Opcode) Class() Class { return Class(o >> 12 & 0x0F) }

// ElementID returns the element id of the opcode
func (o Opcode) ElementID() uint8 { return uint8(o >> 5 & 0x7F) }

// Element codes recognised by the decoder
const (
	// Delimiter elements
	OpNoOp             = Opcode(0x0000)
	OpBeginMetafile    = Opcode(0x0020)
	OpEndMetafile      = Opcode(0x0040)
	OpBeginPicture     = Opcode(0x0060)
	OpBeginPictureBody = Opcode(0x0080)
	OpEndPicture       = Opcode(0x00A0)
	OpBeginFigure      = Opcode(0x0100)
	OpEndFigure        = Opcode(0x0120)

	// Metafile descriptor elements
	OpMetafileVersion      = Opcode(0x1020)
	OpMetafileDescription  = Opcode(0x1040)
	OpVDCType              = Opcode(0x1060)
	OpIntegerPrecision     = Opcode(0x1080)
	OpRealPrecision        = Opcode(0x10A0)
	OpIndexPrecision       = Opcode(0x10C0)
	OpColourPrecision      = Opcode(0x10E0)
	OpColourIndexPrecision = Opcode(0x1100)
	OpMaxColourIndex       = Opcode(0x1120)
	OpColourValueExtent    = Opcode(0x1140)
	OpMetafileElementList  = Opcode(0x1160)
	OpFontList             = Opcode(0x11A0)
	OpCharacterSetList     = Opcode(0x11C0)
	OpColourModel          = Opcode(0x1260)

	// Picture descriptor elements
	OpScalingMode         = Opcode(0x2020)
	OpColourSelectionMode = Opcode(0x2040)
	OpLineWidthSpecMode   = Opcode(0x2060)
	OpMarkerSizeSpecMode  = Opcode(0x2080)
	OpEdgeWidthSpecMode   = Opcode(0x20A0)
	OpVDCExtent           = Opcode(0x20C0)
	OpBackgroundColour    = Opcode(0x20E0)

	// Control elements
	OpVDCIntegerPrecision = Opcode(0x3020)
	OpVDCRealPrecision    = Opcode(0x3040)
	OpMitreLimit          = Opcode(0x3260)

	// Graphical primitives
	OpPolyline = Opcode(0x4020)
	OpText     = Opcode(0x4080)

	// Attribute elements
	OpLineWidth                  = Opcode(0x5060)
	OpLineColour                 = Opcode(0x5080)
	OpCharacterExpansionFactor   = Opcode(0x5180)
	OpTextColour                 = Opcode(0x51C0)
	OpCharacterHeight            = Opcode(0x51E0)
	OpCharacterOrientation       = Opcode(0x5200)
	OpCharacterSetIndex          = Opcode(0x5260)
	OpAlternateCharacterSetIndex = Opcode(0x5280)
	OpFillBundleIndex            = Opcode(0x52A0)
	OpInteriorStyle              = Opcode(0x52C0)
	OpFillColour                 = Opcode(0x52E0)
	OpEdgeType                   = Opcode(0x5360)
	OpEdgeWidth                  = Opcode(0x5380)
	OpEdgeColour                 = Opcode(0x53A0)
	OpEdgeVisibility             = Opcode(0x53C0)
	OpLineJoin                   = Opcode(0x54C0)
	OpEdgeJoin                   = Opcode(0x55A0)
)

var opcodeNames = map[Opcode]string{
	OpNoOp:                       "NoOp",
	OpBeginMetafile:              "BeginMetafile",
	OpEndMetafile:                "EndMetafile",
	OpBeginPicture:               "BeginPicture",
	OpBeginPictureBody:           "BeginPictureBody",
	OpEndPicture:                 "EndPicture",
	OpBeginFigure:                "BeginFigure",
	OpEndFigure:                  "EndFigure",
	OpMetafileVersion:            "MetafileVersion",
	OpMetafileDescription:        "MetafileDescription",
	OpVDCType:                    "VDCType",
	OpIntegerPrecision:           "IntegerPrecision",
	OpRealPrecision:              "RealPrecision",
	OpIndexPrecision:             "IndexPrecision",
	OpColourPrecision:            "ColourPrecision",
	OpColourIndexPrecision:       "ColourIndexPrecision",
	OpMaxColourIndex:             "MaxColourIndex",
	OpColourValueExtent:          "ColourValueExtent",
	OpMetafileElementList:        "MetafileElementList",
	OpFontList:                   "FontList",
	OpCharacterSetList:           "CharacterSetList",
	OpColourModel:                "ColourModel",
	OpScalingMode:                "ScalingMode",
	OpColourSelectionMode:        "ColourSelectionMode",
	OpLineWidthSpecMode:          "LineWidthSpecMode",
	OpMarkerSizeSpecMode:         "MarkerSizeSpecMode",
	OpEdgeWidthSpecMode:          "EdgeWidthSpecMode",
	OpVDCExtent:                  "VDCExtent",
	OpBackgroundColour:           "BackgroundColour",
	OpVDCIntegerPrecision:        "VDCIntegerPrecision",
	OpVDCRealPrecision:           "VDCRealPrecision",
	OpMitreLimit:                 "MitreLimit",
	OpPolyline:                   "Polyline",
	OpText:                       "Text",
	OpLineWidth:                  "LineWidth",
	OpLineColour:                 "LineColour",
	OpCharacterExpansionFactor:   "CharacterExpansionFactor",
	OpTextColour:                 "TextColour",
	OpCharacterHeight:            "CharacterHeight",
	OpCharacterOrientation:       "CharacterOrientation",
	OpCharacterSetIndex:          "CharacterSetIndex",
	OpAlternateCharacterSetIndex: "AlternateCharacterSetIndex",
	OpFillBundleIndex:            "FillBundleIndex",
	OpInteriorStyle:              "InteriorStyle",
	OpFillColour:                 "FillColour",
	OpEdgeType:                   "EdgeType",
	OpEdgeWidth:                  "EdgeWidth",
	OpEdgeColour:                 "EdgeColour",
	OpEdgeVisibility:             "EdgeVisibility",
	OpLineJoin:                   "LineJoin",
	OpEdgeJoin:                   "EdgeJoin",
}

// String returns the element name, or class/id for elements the decoder
// does not name.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Element(%d,%d)", o.Class(), o.ElementID())
}

// Command is a decoded command header
type Command struct {
	Opcode    Opcode
	Class     Class
	ElementID uint8
	Length    int // payload length in bytes, excluding padding
	Offset    int // offset of the header word in the input
}

// String returns a short description of the command
func (c Command) String() string {
	return fmt.Sprintf("%s[%d]@%d", c.Opcode, c.Length, c.Offset)
}
