package model

import (
	"encoding/json"
	"math"
)

// MarshalJSON encodes the picture with non-finite real attributes written
// as null. The reals are read verbatim from the file and may hold NaN or
// infinity bit patterns, which encoding/json rejects.
func (p Picture) MarshalJSON() ([]byte, error) {
	type plain Picture
	return json.Marshal(struct {
		plain
		MetricScalingFactor      *float32
		MitreLimit               *float32
		CharacterExpansionFactor *float32
	}{
		plain:                    plain(p),
		MetricScalingFactor:      finite(p.MetricScalingFactor),
		MitreLimit:               finite(p.MitreLimit),
		CharacterExpansionFactor: finite(p.CharacterExpansionFactor),
	})
}

// finite returns nil for NaN and infinities
func finite(f float32) *float32 {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &f
}
