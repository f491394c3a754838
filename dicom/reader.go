// Package dicom provides DICOM file parsing and manipulation.
//
// This package implements a DICOM file parser following the DICOM standard Part 10.
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html
package dicom

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultMaxElementLength caps a single primitive element's declared value
// length. Oversize declarations are almost always a sign of a corrupt or
// truncated stream rather than a legitimate element; 0 disables the check.
const DefaultMaxElementLength = 256 * 1024 * 1024

// Reader wraps an io.Reader and provides DICOM-specific binary reading operations.
// It supports both Little Endian and Big Endian byte ordering, which can be changed
// dynamically during parsing.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.3
type Reader struct {
	r               *bufio.Reader
	byteOrder       binary.ByteOrder
	position        int64 // Track bytes read for position tracking
	maxElementLength int64
	limit           int64 // total bytes remaining to read, -1 if unbounded
}

// NewReader creates a new DICOM binary reader with the specified byte order.
//
// Parameters:
//   - r: The underlying io.Reader to read from
//   - byteOrder: The byte order to use (binary.LittleEndian or binary.BigEndian)
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.3
func NewReader(r io.Reader, byteOrder binary.ByteOrder) *Reader {
	return &Reader{
		r:                bufio.NewReader(r),
		byteOrder:        byteOrder,
		maxElementLength: DefaultMaxElementLength,
		limit:            -1,
	}
}

// SetMaxElementLength overrides the declared-value-length ceiling enforced by
// CheckElementLength. A value of 0 disables the check entirely.
func (r *Reader) SetMaxElementLength(n int64) {
	r.maxElementLength = n
}

// CheckElementLength validates a declared element or item length against the
// configured ceiling before the caller allocates a buffer for it.
func (r *Reader) CheckElementLength(n int64) error {
	if r.maxElementLength > 0 && n > r.maxElementLength {
		return fmt.Errorf("%w: declared length %d exceeds limit %d", ErrOversizeElement, n, r.maxElementLength)
	}
	return nil
}

// Peek returns the next n bytes without advancing the reader, using the
// underlying buffered reader. It does not affect Position.
func (r *Reader) Peek(n int) ([]byte, error) {
	buf, err := r.r.Peek(n)
	if err != nil {
		if err == io.EOF && len(buf) == 0 {
			return nil, io.EOF
		}
		return buf, err
	}
	return buf, nil
}

// Skip discards n bytes from the stream, advancing Position accordingly.
func (r *Reader) Skip(n int64) error {
	if n <= 0 {
		return nil
	}
	discarded, err := r.r.Discard(int(n))
	r.position += int64(discarded)
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return fmt.Errorf("failed to skip %d bytes: %w", n, err)
	}
	return nil
}

// Remaining reports the number of bytes left before a previously established
// limit (e.g. an explicit-length sequence or item) is reached. It returns a
// negative value if no limit has been set via SetLimit.
func (r *Reader) Remaining() int64 {
	if r.limit < 0 {
		return -1
	}
	return r.limit - r.position
}

// SetLimit establishes the absolute stream position at which the current
// bounded construct (item, sequence, dataset) ends. Pass -1 to clear it.
func (r *Reader) SetLimit(absolutePosition int64) {
	r.limit = absolutePosition
}

// ReadUint16 reads a 16-bit unsigned integer using the current byte order.
//
// Returns io.EOF if the end of the stream is reached.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (r *Reader) ReadUint16() (uint16, error) {
	buf := make([]byte, 2)
	n, err := io.ReadFull(r.r, buf)
	if err != nil {
		if err == io.EOF && n == 0 {
			return 0, io.EOF
		}
		if err == io.ErrUnexpectedEOF || (err == io.EOF && n > 0) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("failed to read uint16: %w", err)
	}

	r.position += 2
	return r.byteOrder.Uint16(buf), nil
}

// ReadUint32 reads a 32-bit unsigned integer using the current byte order.
//
// Returns io.EOF if the end of the stream is reached.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (r *Reader) ReadUint32() (uint32, error) {
	buf := make([]byte, 4)
	n, err := io.ReadFull(r.r, buf)
	if err != nil {
		if err == io.EOF && n == 0 {
			return 0, io.EOF
		}
		if err == io.ErrUnexpectedEOF || (err == io.EOF && n > 0) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("failed to read uint32: %w", err)
	}

	r.position += 4
	return r.byteOrder.Uint32(buf), nil
}

// ReadBytes reads exactly n bytes from the reader.
//
// Returns an error if fewer than n bytes are available.
// Returns an empty slice if n is 0.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	read, err := io.ReadFull(r.r, buf)
	if err != nil {
		if err == io.EOF && read == 0 {
			return nil, io.EOF
		}
		if err == io.ErrUnexpectedEOF || (err == io.EOF && read > 0) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("failed to read %d bytes: %w", n, err)
	}

	r.position += int64(n)
	return buf, nil
}

// ReadString reads exactly n bytes and returns them as a string.
//
// DICOM strings may contain null terminators or trailing spaces which are preserved.
// The caller is responsible for trimming if needed.
//
// Returns an error if fewer than n bytes are available.
// Returns an empty string if n is 0.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
func (r *Reader) ReadString(n int) (string, error) {
	if n == 0 {
		return "", nil
	}

	buf, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

// SetByteOrder changes the byte order for subsequent read operations.
//
// This is used when switching between File Meta Information (always Little Endian)
// and the main dataset (which may use Big Endian depending on Transfer Syntax).
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
func (r *Reader) SetByteOrder(order binary.ByteOrder) {
	r.byteOrder = order
}

// Position returns the current byte position in the stream.
//
// This tracks the total number of bytes read from the underlying reader,
// which is useful for parsing operations that need to know byte offsets.
func (r *Reader) Position() int64 {
	return r.position
}

// WrapReader replaces the underlying reader with a new one.
//
// This is used for applying transformations to the reader stream,
// such as wrapping it in a decompression reader for deflated transfer syntax.
// The position counter is preserved to maintain accurate position tracking
// relative to the original stream.
//
// Parameters:
//   - newReader: The new io.Reader to use for subsequent read operations
func (r *Reader) WrapReader(newReader io.Reader) {
	r.r = bufio.NewReader(newReader)
}
