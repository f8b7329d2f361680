// Package model provides the in-memory representation of a decoded
// Computer Graphics Metafile.
//
// All decoding ultimately produces these types. A [Document] is built once
// by the decoder and is read-only afterwards: consumers iterate its
// pictures, read each picture's VDC window to compute a pixel scale, and
// draw the polylines and text runs using the picture's attributes.
//
// # Document Structure
//
// The [Document] type holds the metafile descriptor state and the pictures:
//
//	doc := model.NewDocument()
//	doc.AddPicture(model.NewPicture("P1"))
//
// [Precision] carries the declared integer, real, index and colour widths
// together with the VDC type. Declared character sets are kept in
// declaration order in [CharacterSet] values because other elements refer
// to them by index.
//
// # Pictures
//
// Each [Picture] owns the attribute state that was current when its
// primitives were read (colours, widths, joins, character attributes) and
// two ordered primitive lists:
//
//   - [Polyline] - connected line segments in VDC space
//   - [TextRun] - an anchored text fragment
//
// # Geometry
//
// [Point] coordinates are virtual device coordinates, not pixels. The
// [Extent] of a picture is kept exactly as declared, so BottomLeft is not
// guaranteed to be left of or below TopRight. [Colour] is a direct RGB
// value and satisfies image/color.Color.
package model
