package decoder

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/cgm/core"
	"github.com/tsawler/cgm/model"
)

// abstractScalingLength is the SCALING MODE payload size: a mode word plus
// a 32-bit metric scale factor that is present even in abstract mode.
const abstractScalingLength = 6

// decodePicture runs the picture loop up to and including END PICTURE.
// prec is the metafile precision state and is never modified here.
func (d *Decoder) decodePicture(r *core.Reader, name string, prec model.Precision) (*model.Picture, error) {
	pic := model.NewPicture(name)
	d.logger.Debug("begin picture", slog.String("name", name), slog.Int("offset", r.Offset()))

	for {
		cmd, err := r.ReadCommandHeader()
		if err != nil {
			return nil, &core.DecodeError{Offset: r.Offset(), Err: err}
		}
		if err := d.pictureCommand(r, cmd, pic, prec); err != nil {
			return nil, core.NewDecodeError(cmd, err)
		}
		if cmd.Opcode == core.OpEndPicture {
			break
		}
	}

	d.logger.Debug("end picture",
		slog.String("name", name),
		slog.Int("polylines", len(pic.Polylines)),
		slog.Int("text", len(pic.Text)))
	return pic, nil
}

// pictureCommand applies one picture-level command to pic.
func (d *Decoder) pictureCommand(r *core.Reader, cmd core.Command, pic *model.Picture, prec model.Precision) error {
	p, err := r.Payload(cmd.Length)
	if err != nil {
		return err
	}

	switch cmd.Opcode {
	// Figures are not modelled; delimiters carry no payload.
	case core.OpBeginPictureBody, core.OpBeginFigure, core.OpEndFigure, core.OpEndPicture:

	// Picture descriptor elements
	case core.OpBackgroundColour:
		pic.Background, err = p.ReadColour(cmd.Length)
	case core.OpColourSelectionMode:
		err = readEnum(p, &pic.ColourSelectionMode)
	case core.OpLineWidthSpecMode:
		err = readEnum(p, &pic.LineWidthMode)
	case core.OpMarkerSizeSpecMode:
		err = readEnum(p, &pic.MarkerSizeMode)
	case core.OpEdgeWidthSpecMode:
		err = readEnum(p, &pic.EdgeWidthMode)
	case core.OpVDCExtent:
		// Kept in file order; corners are not normalized.
		if pic.VDCExtent.BottomLeft, err = p.ReadPoint(); err != nil {
			return err
		}
		pic.VDCExtent.TopRight, err = p.ReadPoint()
	case core.OpScalingMode:
		err = d.scalingMode(p, cmd, pic)

	// Control elements
	case core.OpVDCIntegerPrecision:
		pic.VDCIntegerPrecision, err = p.ReadUint16()
	case core.OpVDCRealPrecision:
		pic.VDCRealPrecision, err = p.ReadPrecision()
	case core.OpMitreLimit:
		pic.MitreLimit, err = p.ReadFloat32()

	// Line attributes
	case core.OpLineWidth:
		if err = checkWidth("line", pic.LineWidthMode, prec); err != nil {
			return err
		}
		pic.LineWidth, err = p.ReadUint16()
	case core.OpLineColour:
		pic.LineColour, err = p.ReadColour(cmd.Length)
	case core.OpLineJoin:
		err = readEnum(p, &pic.LineJoin)

	// Text attributes
	case core.OpTextColour:
		pic.TextColour, err = p.ReadColour(cmd.Length)
	case core.OpCharacterExpansionFactor:
		pic.CharacterExpansionFactor, err = p.ReadFloat32()
	case core.OpCharacterHeight:
		pic.CharacterHeight, err = p.ReadUint16()
	case core.OpCharacterOrientation:
		pic.CharacterOrientation, err = readOrientation(p)
	case core.OpCharacterSetIndex:
		pic.CharacterSetIndex, err = p.ReadUint16()
	case core.OpAlternateCharacterSetIndex:
		pic.AlternateCharacterSetIndex, err = p.ReadUint16()

	// Fill attributes
	case core.OpFillColour:
		pic.FillColour, err = p.ReadColour(cmd.Length)
	case core.OpFillBundleIndex:
		pic.FillBundleIndex, err = p.ReadUint16()
	case core.OpInteriorStyle:
		err = readEnum(p, &pic.InteriorStyle)

	// Edge attributes
	case core.OpEdgeType:
		err = readEnum(p, &pic.EdgeType)
	case core.OpEdgeWidth:
		if err = checkWidth("edge", pic.EdgeWidthMode, prec); err != nil {
			return err
		}
		pic.EdgeWidth, err = p.ReadUint16()
	case core.OpEdgeColour:
		pic.EdgeColour, err = p.ReadColour(cmd.Length)
	case core.OpEdgeVisibility:
		err = readEnum(p, &pic.EdgeVisibility)
	case core.OpEdgeJoin:
		err = readEnum(p, &pic.EdgeJoin)

	// Primitives
	case core.OpPolyline:
		err = readPolyline(p, cmd, pic)
	case core.OpText:
		err = readText(p, pic)

	default:
		d.skipped(cmd)
	}

	return err
}

// scalingMode reads the mode and, in metric mode, the scale factor.
func (d *Decoder) scalingMode(p *core.Reader, cmd core.Command, pic *model.Picture) error {
	if err := readEnum(p, &pic.ScalingMode); err != nil {
		return err
	}
	if pic.ScalingMode == model.ScalingMetric {
		f, err := p.ReadFloat32()
		if err != nil {
			return err
		}
		pic.MetricScalingFactor = f
		return nil
	}
	if cmd.Length != abstractScalingLength {
		d.logger.Warn("unexpected scaling mode length",
			slog.Int("length", cmd.Length),
			slog.Int("want", abstractScalingLength),
			slog.Int("offset", cmd.Offset))
	}
	return nil
}

// checkWidth rejects width specifications the decoder cannot represent.
func checkWidth(kind string, mode model.SpecMode, prec model.Precision) error {
	if mode == model.SpecAbsolute && prec.VDCType == model.VDCReal {
		return fmt.Errorf("%s width in real VDC: %w", kind, core.ErrUnsupportedFeature)
	}
	if mode != model.SpecAbsolute {
		return fmt.Errorf("%s width mode %v: %w", kind, mode, core.ErrUnsupportedFeature)
	}
	return nil
}

// readPolyline reads Length/4 points and snapshots the line attributes.
func readPolyline(p *core.Reader, cmd core.Command, pic *model.Picture) error {
	count := cmd.Length / 4
	if count == 0 {
		return fmt.Errorf("polyline with %d bytes has no points: %w", cmd.Length, core.ErrMalformedCommand)
	}
	points, err := p.ReadPoints(count)
	if err != nil {
		return err
	}
	pic.Polylines = append(pic.Polylines, model.Polyline{
		Points: points,
		Colour: pic.LineColour,
		Width:  pic.LineWidth,
	})
	return nil
}

// readText reads an anchor point, a finality flag and the string.
func readText(p *core.Reader, pic *model.Picture) error {
	pos, err := p.ReadPoint()
	if err != nil {
		return err
	}
	var fin model.Finality
	if err := readEnum(p, &fin); err != nil {
		return err
	}
	s, err := p.ReadString()
	if err != nil {
		return err
	}
	pic.Text = append(pic.Text, model.TextRun{
		Position: pos,
		Finality: fin,
		Content:  s,
		Colour:   pic.TextColour,
		Height:   pic.CharacterHeight,
	})
	return nil
}

func readOrientation(p *core.Reader) (model.Orientation, error) {
	var v [4]uint16
	for i := range v {
		x, err := p.ReadUint16()
		if err != nil {
			return model.Orientation{}, err
		}
		v[i] = x
	}
	return model.Orientation{XUp: v[0], YUp: v[1], XBase: v[2], YBase: v[3]}, nil
}
