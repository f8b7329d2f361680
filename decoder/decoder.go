package decoder

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/cgm/core"
	"github.com/tsawler/cgm/internal/logging"
	"github.com/tsawler/cgm/model"
)

// Options configures a Decoder
type Options struct {
	// Logger receives warnings for soft-degraded elements and debug
	// records for skipped elements. Nil discards them.
	Logger *slog.Logger
}

// Decoder decodes binary CGM metafiles. A Decoder holds no per-call state
// and may be used from several goroutines at once.
type Decoder struct {
	logger *slog.Logger
}

// New creates a decoder
func New(opts Options) *Decoder {
	return &Decoder{logger: logging.OrNop(opts.Logger)}
}

// Decode decodes data with a silent decoder.
func Decode(data []byte) (*model.Document, error) {
	return New(Options{}).Decode(data)
}

// metafileState is the running state of the metafile loop.
type metafileState struct {
	doc       *model.Document
	described bool // a METAFILE DESCRIPTION has been seen
}

// Decode decodes a complete metafile held in data.
func (d *Decoder) Decode(data []byte) (*model.Document, error) {
	r := core.NewReader(data, d.logger)
	st := &metafileState{doc: model.NewDocument()}

	for r.Remaining() > 0 {
		cmd, err := r.ReadCommandHeader()
		if err != nil {
			return nil, &core.DecodeError{Offset: r.Offset(), Err: err}
		}
		if err := d.metafileCommand(r, cmd, st); err != nil {
			return nil, core.NewDecodeError(cmd, err)
		}
	}

	d.logger.Debug("decoded metafile",
		slog.String("name", st.doc.FileName),
		slog.Int("pictures", st.doc.PictureCount()))
	return st.doc, nil
}

// metafileCommand applies one metafile-level command. The payload is split
// off before dispatch, so elements that fall through the switch are
// discarded by their declared length.
func (d *Decoder) metafileCommand(r *core.Reader, cmd core.Command, st *metafileState) error {
	p, err := r.Payload(cmd.Length)
	if err != nil {
		return err
	}
	doc := st.doc
	prec := &doc.Precision

	switch cmd.Opcode {
	case core.OpNoOp, core.OpEndMetafile:

	case core.OpBeginMetafile:
		doc.FileName, err = p.ReadString()

	case core.OpBeginPicture:
		var name string
		if name, err = p.ReadString(); err != nil {
			return err
		}
		pic, err := d.decodePicture(r, name, doc.Precision)
		if err != nil {
			return err
		}
		doc.AddPicture(pic)

	case core.OpVDCType:
		err = readInt16Enum(p, &prec.VDCType)
	case core.OpIntegerPrecision:
		err = readWidth(p, &prec.Integer)
	case core.OpRealPrecision:
		prec.Real, err = p.ReadPrecision()
	case core.OpIndexPrecision:
		err = readWidth(p, &prec.Index)
	case core.OpColourIndexPrecision:
		err = readWidth(p, &prec.ColourIndex)
	case core.OpColourPrecision:
		err = readWidth(p, &prec.Colour)
	case core.OpVDCRealPrecision:
		prec.VDCReal, err = p.ReadPrecision()
	case core.OpMaxColourIndex:
		prec.MaxColourIndex, err = p.ReadUint16()

	case core.OpMetafileVersion:
		err = readInt16Enum(p, &doc.Version)

	case core.OpMetafileDescription:
		var s string
		if s, err = p.ReadString(); err != nil {
			return err
		}
		if st.described {
			doc.Description += s
		} else {
			doc.Description = s
			st.described = true
		}

	case core.OpColourModel:
		var m model.ColourModel
		if err = readEnum(p, &m); err != nil {
			return err
		}
		if !m.Supported() {
			return fmt.Errorf("colour model %v: %w", m, core.ErrUnsupportedColorModel)
		}
		doc.ColourModel = m

	case core.OpColourValueExtent:
		if !doc.ColourModel.Supported() {
			return fmt.Errorf("colour value extent under %v: %w", doc.ColourModel, core.ErrUnsupportedColorModel)
		}
		var ext model.ColourExtent
		if ext.Min, err = readRGB(p); err != nil {
			return err
		}
		if ext.Max, err = readRGB(p); err != nil {
			return err
		}
		doc.ColourValueExtent = ext

	case core.OpFontList:
		// Only the first font is kept; the rest of the list is skipped.
		doc.Font, err = p.ReadString()

	case core.OpCharacterSetList:
		for p.Remaining() > 0 {
			var cs model.CharacterSet
			if err = readEnum(p, &cs.Type); err != nil {
				return err
			}
			if cs.Designation, err = p.ReadString(); err != nil {
				return err
			}
			doc.CharacterSets = append(doc.CharacterSets, cs)
		}

	case core.OpMetafileElementList:
		err = readElementList(p, doc)

	default:
		d.skipped(cmd)
	}

	return err
}

// readElementList reads a count followed by (marker, code) pairs.
func readElementList(p *core.Reader, doc *model.Document) error {
	count, err := p.ReadUint16()
	if err != nil {
		return err
	}
	sets := make([]model.DrawingSet, count)
	for i := range sets {
		if _, err := p.ReadInt16(); err != nil {
			return err
		}
		if err := readEnum(p, &sets[i]); err != nil {
			return err
		}
	}
	doc.ElementList = sets
	return nil
}

func (d *Decoder) skipped(cmd core.Command) {
	d.logger.Debug("skipping element",
		slog.String("element", cmd.Opcode.String()),
		slog.Int("length", cmd.Length),
		slog.Int("offset", cmd.Offset))
}

// readEnum reads an unsigned 16-bit enumerated value into dst
func readEnum[T ~uint16](p *core.Reader, dst *T) error {
	v, err := p.ReadUint16()
	if err != nil {
		return err
	}
	*dst = T(v)
	return nil
}

// readInt16Enum reads a signed 16-bit enumerated value into dst
func readInt16Enum[T ~int16](p *core.Reader, dst *T) error {
	v, err := p.ReadInt16()
	if err != nil {
		return err
	}
	*dst = T(v)
	return nil
}

// readWidth reads a precision bit width
func readWidth(p *core.Reader, dst *int) error {
	v, err := p.ReadInt16()
	if err != nil {
		return err
	}
	*dst = int(v)
	return nil
}

// readRGB reads three colour component bytes
func readRGB(p *core.Reader) (model.Colour, error) {
	var c model.Colour
	var err error
	if c.R, err = p.ReadUint8(); err != nil {
		return c, err
	}
	if c.G, err = p.ReadUint8(); err != nil {
		return c, err
	}
	c.B, err = p.ReadUint8()
	return c, err
}
