package dicom

import (
	"fmt"

	"github.com/medvault/dicomkit/dicom/element"
	"github.com/medvault/dicomkit/dicom/tag"
	"github.com/medvault/dicomkit/dicom/vr"
)

// Item is a single item of a Sequence of Items (SQ). Each item carries its
// own nested DataSet. ExplicitLength is the item's declared length as read
// from the stream; it is 0xFFFFFFFF when the item used undefined length
// (terminated by an Item Delimitation tag) and is re-derived on write.
type Item struct {
	DataSet        *DataSet
	ExplicitLength uint32
}

// NewItem wraps a dataset as a sequence item with undefined length, the
// common case when building a tree programmatically rather than parsing one.
func NewItem(ds *DataSet) *Item {
	return &Item{DataSet: ds, ExplicitLength: 0xFFFFFFFF}
}

// Sequence represents the value of an SQ element: an ordered list of Items.
// ExplicitLength mirrors Item.ExplicitLength for the sequence as a whole.
type Sequence struct {
	tag            tag.Tag
	Items          []*Item
	ExplicitLength uint32
}

// NewSequence creates an empty sequence for the given tag with undefined length.
func NewSequence(t tag.Tag) *Sequence {
	return &Sequence{tag: t, ExplicitLength: 0xFFFFFFFF}
}

func (s *Sequence) VR() vr.VR { return vr.SequenceOfItems }

func (s *Sequence) Bytes() []byte {
	// Sequences are containers; raw byte encoding is produced by the writer
	// which walks Items directly rather than calling Bytes().
	return nil
}

func (s *Sequence) String() string {
	return fmt.Sprintf("Sequence(%s) with %d item(s)", s.tag, len(s.Items))
}

// Tag returns the sequence's own tag.
func (s *Sequence) Tag() tag.Tag { return s.tag }

// Append adds an item to the sequence.
func (s *Sequence) Append(item *Item) {
	s.Items = append(s.Items, item)
}

// Fragment is a single encoded fragment of encapsulated (compressed) pixel
// data, as produced when a frame's compressed payload exceeds what fits in a
// single Item, or when a codec chooses to split a frame across fragments.
type Fragment struct {
	Data []byte
}

// Fragments represents the value of an encapsulated Pixel Data element (OB
// with undefined length under a compressed transfer syntax): an optional
// Basic Offset Table followed by one Item per fragment.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
type Fragments struct {
	// BasicOffsetTable holds the first-fragment-of-each-frame byte offsets
	// from Item 1 (the Basic Offset Table item), or nil if it was empty.
	BasicOffsetTable []uint32
	// ExtendedOffsetTable holds 64-bit per-frame offsets from the (7FE0,0001)
	// element when present, used instead of the Basic Offset Table for large
	// multi-frame objects.
	ExtendedOffsetTable []uint64
	// ExtendedOffsetTableLengths holds the corresponding per-frame byte
	// lengths from (7FE0,0002).
	ExtendedOffsetTableLengths []uint64
	Items                      []Fragment
}

func (f *Fragments) VR() vr.VR { return vr.OtherByte }

func (f *Fragments) Bytes() []byte { return nil }

func (f *Fragments) String() string {
	return fmt.Sprintf("Fragments with %d fragment(s)", len(f.Items))
}

// FrameData concatenates every fragment belonging to a single frame,
// identified by its Basic/Extended Offset Table offset. If no offset table
// is present and there is one fragment per frame, frameIndex is used as a
// direct fragment index instead.
func (f *Fragments) FrameData(frameIndex int) ([]byte, error) {
	offsets := f.frameStartOffsets()
	if offsets == nil {
		if frameIndex < 0 || frameIndex >= len(f.Items) {
			return nil, fmt.Errorf("frame index %d out of range (%d fragments, no offset table)", frameIndex, len(f.Items))
		}
		return f.Items[frameIndex].Data, nil
	}
	if frameIndex < 0 || frameIndex >= len(offsets) {
		return nil, fmt.Errorf("frame index %d out of range (%d frames)", frameIndex, len(offsets))
	}

	start := offsets[frameIndex]
	end := len(f.Items)
	if frameIndex+1 < len(offsets) {
		end = offsets[frameIndex+1]
	}

	var buf []byte
	for i := start; i < end && i < len(f.Items); i++ {
		buf = append(buf, f.Items[i].Data...)
	}
	return buf, nil
}

// frameStartOffsets maps each frame to the index of its first fragment,
// derived from the Basic Offset Table (byte offsets into the concatenated
// fragment stream, converted here to fragment indices).
func (f *Fragments) frameStartOffsets() []int {
	if len(f.BasicOffsetTable) == 0 {
		return nil
	}

	byteOffsetToFragment := make(map[uint32]int, len(f.Items))
	var cursor uint32
	for i, item := range f.Items {
		byteOffsetToFragment[cursor] = i
		// Item header (tag+length, 8 bytes) counts toward the offset table
		// per the standard's definition of fragment byte offsets.
		cursor += uint32(len(item.Data)) + 8
	}

	starts := make([]int, 0, len(f.BasicOffsetTable))
	for _, off := range f.BasicOffsetTable {
		idx, ok := byteOffsetToFragment[off]
		if !ok {
			idx = 0
		}
		starts = append(starts, idx)
	}
	return starts
}

// DatasetElement is a tagged union over the three kinds of value a DICOM
// dataset entry can hold: a primitive element, a sequence of items, or
// encapsulated pixel data fragments. Exactly one of the three fields is
// non-nil.
type DatasetElement struct {
	Primitive *element.Element
	Sequence  *Sequence
	Fragments *Fragments
}

// Tag returns the tag common to whichever variant is populated.
func (de *DatasetElement) Tag() tag.Tag {
	switch {
	case de.Primitive != nil:
		return de.Primitive.Tag()
	case de.Sequence != nil:
		return de.Sequence.tag
	case de.Fragments != nil:
		return tag.PixelData
	default:
		return tag.Tag{}
	}
}

// VR returns the element's Value Representation.
func (de *DatasetElement) VR() vr.VR {
	switch {
	case de.Primitive != nil:
		return de.Primitive.VR()
	case de.Sequence != nil:
		return vr.SequenceOfItems
	case de.Fragments != nil:
		return vr.OtherByte
	default:
		return vr.Unknown
	}
}

func (de *DatasetElement) String() string {
	switch {
	case de.Primitive != nil:
		return de.Primitive.String()
	case de.Sequence != nil:
		return de.Sequence.String()
	case de.Fragments != nil:
		return de.Fragments.String()
	default:
		return "<empty>"
	}
}

// elementFrom wraps a primitive element.Element as a DatasetElement.
func elementFrom(e *element.Element) *DatasetElement {
	return &DatasetElement{Primitive: e}
}
