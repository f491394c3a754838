// Package dicom provides DICOM file parsing and manipulation.
package dicom

import "errors"

// ErrInvalidPreamble indicates the file doesn't have a valid DICOM preamble.
// A valid DICOM file must have 128 bytes followed by "DICM" (ASCII).
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrInvalidPreamble = errors.New("invalid DICOM preamble: missing or invalid DICM prefix")

// ErrInvalidVR indicates an invalid or unknown VR was encountered.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var ErrInvalidVR = errors.New("invalid or unknown VR")

// ErrInvalidTag indicates a malformed tag was encountered.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
var ErrInvalidTag = errors.New("invalid or malformed tag")

// ErrInvalidTransferSyntax indicates an unsupported or invalid transfer syntax.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
var ErrInvalidTransferSyntax = errors.New("invalid or unsupported transfer syntax")

// ErrMissingTransferSyntax indicates the Transfer Syntax UID was not found in File Meta Information.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrMissingTransferSyntax = errors.New("missing Transfer Syntax UID in File Meta Information")

// ErrInvalidLength indicates an invalid value length was encountered.
var ErrInvalidLength = errors.New("invalid value length")

// ErrUndefinedLength indicates an undefined length (0xFFFFFFFF) was encountered.
// This is valid for sequences but requires special handling.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
var ErrUndefinedLength = errors.New("undefined length encountered")

// ErrTruncatedInput indicates the stream ended before a declared length could
// be satisfied.
var ErrTruncatedInput = errors.New("truncated DICOM input")

// ErrMissingMagic indicates the "DICM" magic word was absent after the preamble.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrMissingMagic = errors.New("missing DICM magic word")

// ErrMissingMetaInfo indicates group 0002 File Meta Information was absent or
// incomplete.
var ErrMissingMetaInfo = errors.New("missing or incomplete File Meta Information")

// ErrMalformedSequence indicates a Sequence of Items could not be parsed into
// a well-formed item tree.
var ErrMalformedSequence = errors.New("malformed sequence encoding")

// ErrMalformedEncapsulation indicates encapsulated pixel data did not follow
// the Basic Offset Table plus fragment item structure.
var ErrMalformedEncapsulation = errors.New("malformed encapsulated pixel data")

// ErrOversizeElement indicates a declared value length exceeded the
// configured ceiling, most often a symptom of stream corruption.
var ErrOversizeElement = errors.New("element value length exceeds configured maximum")

// ErrSequenceDepthExceeded indicates nested sequences exceeded the configured
// maximum nesting depth.
var ErrSequenceDepthExceeded = errors.New("sequence nesting depth exceeded")

// ErrItemCountExceeded indicates the total number of sequence items parsed
// across a dataset exceeded the configured maximum.
var ErrItemCountExceeded = errors.New("sequence item count exceeded")

// ErrIncompressiblePixelRedaction indicates a pixel-region redaction was
// requested against encapsulated (compressed) pixel data, which cannot be
// redacted byte-wise without first decompressing it.
var ErrIncompressiblePixelRedaction = errors.New("cannot redact pixel region in encapsulated pixel data")

// ErrStoreIO indicates the identifier remap store failed a read or write
// operation.
var ErrStoreIO = errors.New("identifier remap store I/O error")

// ErrCancelled indicates an operation was stopped in response to a cancelled
// context.Context.
var ErrCancelled = errors.New("operation cancelled")
