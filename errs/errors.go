// Package errs defines the sentinel error values shared across geoserde packages.
//
// Decode failures carry exactly one of the record-level sentinels below; callers
// discriminate with errors.Is. Call sites wrap these with fmt.Errorf("...: %w", err)
// to add context without changing the error identity.
package errs

import "errors"

// Record codec errors.
var (
	// ErrUnknownTag indicates the first byte of a record is not a valid
	// geometry type code.
	ErrUnknownTag = errors.New("unknown geometry type tag")

	// ErrUnexpectedEOF indicates a record ended before the bytes its grammar
	// requires, including nested entry lengths that overflow the outer record.
	ErrUnexpectedEOF = errors.New("unexpected end of record")

	// ErrWKBParse indicates the external WKB or WKT adapter rejected its input.
	ErrWKBParse = errors.New("wkb parse failed")

	// ErrInternal indicates a codec invariant was violated. Records produced
	// by Serialize never trigger it.
	ErrInternal = errors.New("internal codec invariant violated")
)

// Serialize errors.
var (
	// ErrEmptyEnvelope is returned when an empty envelope is handed to
	// Serialize as a top-level or nested value.
	ErrEmptyEnvelope = errors.New("cannot serialize an empty envelope")

	// ErrUnsupportedGeometry is returned for geometry values outside the
	// eight supported variants.
	ErrUnsupportedGeometry = errors.New("unsupported geometry variant")
)

// Blob container errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid blob header size")
	ErrInvalidMagicNumber  = errors.New("invalid blob magic number")
	ErrInvalidHeaderFlags  = errors.New("invalid blob header flags")
	ErrInvalidIndexSection = errors.New("invalid blob index section")
	ErrChecksumMismatch    = errors.New("blob checksum mismatch")
	ErrEntryOutOfRange     = errors.New("blob entry index out of range")
)
