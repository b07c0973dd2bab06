package format

type (
	GeometryType    uint8
	CompressionType uint8
)

const (
	// Geometry type tags. These are the first byte of every serialized record
	// and are part of the wire format: the numbering is stable forever.
	TypePoint              GeometryType = 0 // TypePoint is a 17-byte record with no envelope block.
	TypeMultiPoint         GeometryType = 1
	TypeLineString         GeometryType = 2
	TypeMultiLineString    GeometryType = 3
	TypePolygon            GeometryType = 4
	TypeMultiPolygon       GeometryType = 5
	TypeGeometryCollection GeometryType = 6
	TypeEnvelope           GeometryType = 7 // TypeEnvelope is a bare 33-byte record.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Valid reports whether t is one of the eight geometry type tags.
func (t GeometryType) Valid() bool {
	return t <= TypeEnvelope
}

// HasEnvelopePrefix reports whether records of this type carry the 32-byte
// envelope block immediately after the tag byte. Point records store bare
// coordinates and envelope records are nothing but their bounds, so neither
// carries the prefix.
func (t GeometryType) HasEnvelopePrefix() bool {
	return t != TypePoint && t != TypeEnvelope
}

func (t GeometryType) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeLineString:
		return "LineString"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	case TypeEnvelope:
		return "Envelope"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
