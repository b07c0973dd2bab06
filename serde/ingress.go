package serde

import (
	"fmt"

	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/jagill/geoserde/errs"
)

// Ingress and egress bridges between the native record format and the OGC
// encodings. These are conversion helpers only: the wire format itself never
// embeds WKB, and WKB cannot represent the empty point, so values containing
// one can round-trip through the native format but not through these bridges.

// FromWKB parses little-endian or big-endian WKB and re-encodes it as a
// native record. Parse failures map to errs.ErrWKBParse.
func FromWKB(data []byte) ([]byte, error) {
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errs.ErrWKBParse)
	}

	return Serialize(g)
}

// ToWKB decodes a native record and encodes the geometry as little-endian WKB.
func ToWKB(data []byte) ([]byte, error) {
	g, err := Deserialize(data)
	if err != nil {
		return nil, err
	}

	out, err := wkb.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errs.ErrWKBParse)
	}

	return out, nil
}

// FromWKT parses Well-Known Text and encodes it as a native record.
// Parse failures map to errs.ErrWKBParse.
func FromWKT(s string) ([]byte, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errs.ErrWKBParse)
	}

	return Serialize(g)
}

// ToWKT decodes a native record and formats the geometry as Well-Known Text.
func ToWKT(data []byte) (string, error) {
	g, err := Deserialize(data)
	if err != nil {
		return "", err
	}

	return wkt.MarshalString(g), nil
}
