// Package blob packs serialized geometry records into a single buffer for
// columnar storage.
//
// A geometry blob is a 32-byte header, an offset index of count+1 uint32
// entries, the record payload (optionally compressed as a unit), and an
// optional trailing xxHash64 checksum over the index and payload:
//
//	BLOB    := HEADER INDEX PAYLOAD [CHECKSUM]
//	HEADER  := FLAG(4) COUNT(4) INDEX_OFF(4) PAYLOAD_OFF(4) RESERVED(16)
//	INDEX   := OFFSET(4) x (COUNT+1)
//
// Offsets address the decompressed payload; entry i spans
// [offset[i], offset[i+1]). The header and index stay readable without
// decompressing anything, and once decoded every entry access is O(1).
// Blob-level extent queries use the records' envelope fast path, so they
// never materialize vertices.
//
// Typical usage:
//
//	encoder, _ := blob.NewEncoder(blob.WithCompression(format.CompressionS2))
//	for _, g := range geometries {
//	    _ = encoder.Add(g)
//	}
//	packed, _ := encoder.Finish()
//
//	decoded, _ := blob.Decode(packed.Bytes())
//	ext, _ := decoded.Extent()
package blob
