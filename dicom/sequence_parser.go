package dicom

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/medvault/dicomkit/dicom/element"
	"github.com/medvault/dicomkit/dicom/tag"
	"github.com/medvault/dicomkit/dicom/vr"
)

// Delimiter and structural tags used by sequences and encapsulated pixel
// data, expressed as the packed group<<16|element form readTag's result
// compares against.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
const (
	tagItemUint32                 = uint32(0xFFFEE000)
	tagItemDelimitationUint32     = uint32(0xFFFEE00D)
	tagSequenceDelimitationUint32 = uint32(0xFFFEE0DD)

	// DefaultMaxSequenceDepth bounds how deeply sequences may nest. A
	// corrupt or adversarial stream can otherwise force unbounded recursion.
	DefaultMaxSequenceDepth = 128

	// DefaultMaxTotalItems bounds the number of sequence items parsed across
	// an entire dataset, regardless of nesting shape.
	DefaultMaxTotalItems = 1 << 20
)

// sequenceBudget tracks nesting depth and total item count shared by every
// ElementParser spawned while parsing one top-level dataset.
type sequenceBudget struct {
	maxDepth  int
	maxItems  int
	itemCount int
}

func (b *sequenceBudget) checkDepth(depth int) error {
	if depth > b.maxDepth {
		return fmt.Errorf("%w: depth %d exceeds limit %d", ErrSequenceDepthExceeded, depth, b.maxDepth)
	}
	return nil
}

func (b *sequenceBudget) countItem() error {
	b.itemCount++
	if b.itemCount > b.maxItems {
		return fmt.Errorf("%w: parsed %d items, limit is %d", ErrItemCountExceeded, b.itemCount, b.maxItems)
	}
	return nil
}

// ReadDatasetElement reads the next dataset entry, building a complete
// Item/DataSet tree for sequences and a structured Fragments value for
// encapsulated pixel data instead of discarding their content. parent is the
// DataSet this entry will be inserted into; it is recorded on any nested
// item datasets so CreatorFor can resolve private creators declared in an
// ancestor dataset.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
func (p *ElementParser) ReadDatasetElement(parent *DataSet) (*DatasetElement, error) {
	t, err := p.readTag()
	if err != nil {
		return nil, err
	}
	return p.readDatasetElementForTag(t, parent)
}

func (p *ElementParser) readDatasetElementForTag(t tag.Tag, parent *DataSet) (*DatasetElement, error) {
	var v vr.VR
	var length uint32
	var err error

	if p.ts.ExplicitVR {
		v, err = p.readVRExplicit()
		if err != nil {
			return nil, fmt.Errorf("failed to read VR for tag %s: %w", t, err)
		}
		length, err = p.readLength(v)
		if err != nil {
			return nil, fmt.Errorf("failed to read length for tag %s: %w", t, err)
		}
	} else {
		v, err = p.readVRImplicit(t)
		if err != nil {
			return nil, fmt.Errorf("failed to look up VR for tag %s: %w", t, err)
		}
		length, err = p.reader.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("failed to read length for tag %s: %w", t, err)
		}
	}

	if v == vr.SequenceOfItems {
		seq, err := p.readSequence(t, length, parent)
		if err != nil {
			return nil, err
		}
		return &DatasetElement{Sequence: seq}, nil
	}

	if isEncapsulatedPixelData(t, v, length) {
		frags, err := p.readFragments(t)
		if err != nil {
			return nil, err
		}
		return &DatasetElement{Fragments: frags}, nil
	}

	val, err := p.readValue(t, v, length)
	if err != nil {
		return nil, fmt.Errorf("failed to read value for tag %s: %w", t, err)
	}
	elem, err := element.NewElement(t, v, val)
	if err != nil {
		return nil, fmt.Errorf("failed to create element for tag %s: %w", t, err)
	}
	return elementFrom(elem), nil
}

func isEncapsulatedPixelData(t tag.Tag, v vr.VR, length uint32) bool {
	return (v == vr.OtherByte || v == vr.OtherWord) &&
		t.Group == 0x7FE0 && t.Element == 0x0010 &&
		length == 0xFFFFFFFF
}

// readSequence parses a Sequence of Items value, recursively building each
// item's nested DataSet. length is the sequence's declared value length,
// either a byte count or 0xFFFFFFFF for undefined length terminated by a
// Sequence Delimitation Item.
func (p *ElementParser) readSequence(seqTag tag.Tag, length uint32, parent *DataSet) (*Sequence, error) {
	if err := p.budget.checkDepth(p.depth + 1); err != nil {
		return nil, err
	}
	child := p.child()

	seq := NewSequence(seqTag)
	seq.ExplicitLength = length

	readNext := func() (item *Item, sequenceDone bool, err error) {
		t, err := child.readTag()
		if err != nil {
			return nil, false, fmt.Errorf("%w: reading item in sequence %s: %v", ErrTruncatedInput, seqTag, err)
		}
		switch t.Uint32() {
		case tagSequenceDelimitationUint32:
			if _, err := child.reader.ReadUint32(); err != nil {
				return nil, false, fmt.Errorf("failed to read sequence delimitation length: %w", err)
			}
			return nil, true, nil
		case tagItemUint32:
			itemLen, err := child.reader.ReadUint32()
			if err != nil {
				return nil, false, fmt.Errorf("failed to read item length in sequence %s: %w", seqTag, err)
			}
			item, err = child.readItem(itemLen)
			if err != nil {
				return nil, false, err
			}
			return item, false, nil
		default:
			return nil, false, fmt.Errorf("%w: expected item in sequence %s, found tag %s", ErrMalformedSequence, seqTag, t)
		}
	}

	if length == 0xFFFFFFFF {
		for {
			item, done, err := readNext()
			if err != nil {
				return nil, err
			}
			if done {
				return seq, nil
			}
			if parent != nil {
				item.DataSet.SetParent(parent)
			}
			seq.Append(item)
		}
	}

	if err := p.reader.CheckElementLength(int64(length)); err != nil {
		return nil, err
	}
	end := p.reader.Position() + int64(length)
	for p.reader.Position() < end {
		item, done, err := readNext()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if parent != nil {
			item.DataSet.SetParent(parent)
		}
		seq.Append(item)
	}
	return seq, nil
}

// readItem parses one sequence item into a nested DataSet. itemLen is the
// item's declared length, either a byte count or 0xFFFFFFFF for undefined
// length terminated by an Item Delimitation Item.
func (p *ElementParser) readItem(itemLen uint32) (*Item, error) {
	if err := p.budget.countItem(); err != nil {
		return nil, err
	}

	ds := NewDataSet()
	item := &Item{DataSet: ds, ExplicitLength: itemLen}

	readElementsUntil := func(stop func() bool) error {
		for stop == nil || !stop() {
			t, err := p.readTag()
			if err != nil {
				if err == io.EOF {
					return fmt.Errorf("%w: unexpected EOF in item", ErrTruncatedInput)
				}
				return err
			}
			if itemLen == 0xFFFFFFFF && t.Uint32() == tagItemDelimitationUint32 {
				if _, err := p.reader.ReadUint32(); err != nil {
					return fmt.Errorf("failed to read item delimitation length: %w", err)
				}
				return nil
			}
			de, err := p.readDatasetElementForTag(t, ds)
			if err != nil {
				return err
			}
			addParsedElement(ds, de)
		}
		return nil
	}

	if itemLen == 0xFFFFFFFF {
		if err := readElementsUntil(nil); err != nil {
			return nil, err
		}
		return item, nil
	}

	if err := p.reader.CheckElementLength(int64(itemLen)); err != nil {
		return nil, err
	}
	end := p.reader.Position() + int64(itemLen)
	if err := readElementsUntil(func() bool { return p.reader.Position() >= end }); err != nil {
		return nil, err
	}
	return item, nil
}

// readFragments parses encapsulated (compressed) Pixel Data: a mandatory
// Basic Offset Table item (possibly empty) followed by one item per
// fragment, terminated by a Sequence Delimitation Item.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
func (p *ElementParser) readFragments(pixelDataTag tag.Tag) (*Fragments, error) {
	frags := &Fragments{}
	itemIndex := 0

	for {
		t, err := p.readTag()
		if err != nil {
			return nil, fmt.Errorf("%w: reading encapsulated pixel data %s: %v", ErrTruncatedInput, pixelDataTag, err)
		}

		switch t.Uint32() {
		case tagSequenceDelimitationUint32:
			if _, err := p.reader.ReadUint32(); err != nil {
				return nil, fmt.Errorf("failed to read sequence delimitation length: %w", err)
			}
			return frags, nil
		case tagItemUint32:
			itemLen, err := p.reader.ReadUint32()
			if err != nil {
				return nil, fmt.Errorf("failed to read fragment item length: %w", err)
			}
			if err := p.reader.CheckElementLength(int64(itemLen)); err != nil {
				return nil, err
			}
			data, err := p.reader.ReadBytes(int(itemLen))
			if err != nil {
				return nil, fmt.Errorf("%w: failed to read fragment %d: %v", ErrMalformedEncapsulation, itemIndex, err)
			}
			if itemIndex == 0 {
				frags.BasicOffsetTable = decodeBasicOffsetTable(data)
			} else {
				frags.Items = append(frags.Items, Fragment{Data: data})
			}
			itemIndex++
		default:
			return nil, fmt.Errorf("%w: unexpected tag %s in encapsulated pixel data", ErrMalformedEncapsulation, t)
		}
	}
}

// decodeBasicOffsetTable parses the first item of an encapsulated pixel data
// sequence: a list of little-endian uint32 byte offsets, one per frame, into
// the concatenated fragment stream. An empty item means the encoder chose
// not to provide one.
func decodeBasicOffsetTable(data []byte) []uint32 {
	if len(data) == 0 {
		return nil
	}
	n := len(data) / 4
	offsets := make([]uint32, n)
	for i := 0; i < n; i++ {
		offsets[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return offsets
}

// decodeExtendedOffsetTable parses an (7FE0,0001)/(7FE0,0002) OV element's
// raw bytes into a list of little-endian uint64 values.
func decodeExtendedOffsetTable(data []byte) []uint64 {
	if len(data) == 0 {
		return nil
	}
	n := len(data) / 8
	values := make([]uint64, n)
	for i := 0; i < n; i++ {
		values[i] = binary.LittleEndian.Uint64(data[i*8 : i*8+8])
	}
	return values
}

// addParsedElement routes a freshly parsed DatasetElement into ds through
// the type-appropriate accessor, keeping the primitive/sequence/fragment
// storage paths exercised uniformly regardless of nesting depth.
func addParsedElement(ds *DataSet, de *DatasetElement) {
	switch {
	case de.Sequence != nil:
		_ = ds.AddSequence(de.Sequence)
	case de.Fragments != nil:
		_ = ds.AddFragments(de.Fragments)
	case de.Primitive != nil:
		_ = ds.Add(de.Primitive)
	}
}
