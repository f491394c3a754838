// Package dicom provides Go implementations of DICOM data structures and operations.
//
// This is the root package containing the primary DataSet type and collection types
// for working with DICOM datasets.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html
package dicom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medvault/dicomkit/dicom/element"
	"github.com/medvault/dicomkit/dicom/tag"
)

// DataSet represents a collection of DICOM data elements.
//
// A DataSet stores DataElements indexed by their tags, providing dictionary-like
// access to DICOM attributes. This follows pydicom's Dataset design adapted for Go.
//
// Example usage:
//
//	// Create a new dataset
//	ds := dicom.NewDataSet()
//
//	// Add elements
//	val, _ := value.NewStringValue(vr.PersonName, []string{"Doe^John"})
//	patientName, _ := element.NewElement(tag.New(0x0010, 0x0010), vr.PersonName, val)
//	ds.Add(patientName)
//
//	// Retrieve by tag
//	elem, err := ds.Get(tag.New(0x0010, 0x0010))
//
//	// Retrieve by keyword
//	elem, err := ds.GetByKeyword("PatientName")
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type DataSet struct {
	elements map[tag.Tag]*DatasetElement
	order    []tag.Tag
	parent   *DataSet
}

// NewDataSet creates a new empty DICOM dataset.
//
// Example:
//
//	ds := dicom.NewDataSet()
//	fmt.Println(ds.Len())  // Output: 0
func NewDataSet() *DataSet {
	return &DataSet{
		elements: make(map[tag.Tag]*DatasetElement),
	}
}

// SetParent records the enclosing dataset for a nested item's DataSet. This
// is used by CreatorFor to resolve private creators declared in an ancestor
// dataset, and is set automatically by the sequence parser when building an
// item tree.
func (ds *DataSet) SetParent(parent *DataSet) {
	ds.parent = parent
}

// Parent returns the enclosing dataset if this DataSet is a sequence item's
// nested dataset, or nil for a top-level dataset.
func (ds *DataSet) Parent() *DataSet {
	return ds.parent
}

// CreatorFor resolves the private creator string registered for a private
// tag's reservation block (e.g. tag (0009,1001) is reserved by whatever
// creator string is stored at (0009,0010)). It walks up through parent
// datasets so items nested inside a sequence can resolve creators declared
// in an ancestor dataset.
func (ds *DataSet) CreatorFor(t tag.Tag) (string, bool) {
	if !t.IsPrivate() {
		return "", false
	}
	block := (t.Element >> 8) & 0xFF
	if block == 0 {
		return "", false
	}
	creatorTag := tag.New(t.Group, block)

	for d := ds; d != nil; d = d.parent {
		de, ok := d.elements[creatorTag]
		if !ok || de.Primitive == nil {
			continue
		}
		if sv, ok := de.Primitive.Value().(interface{ Strings() []string }); ok {
			vals := sv.Strings()
			if len(vals) > 0 {
				return vals[0], true
			}
		}
		return de.Primitive.Value().String(), true
	}
	return "", false
}

// NewDataSetWithElements creates a new dataset pre-populated with elements.
//
// Returns an error if any element is nil or if duplicate tags are found.
//
// Example:
//
//	elements := []*element.Element{patientName, patientID, studyDate}
//	ds, err := dicom.NewDataSetWithElements(elements)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewDataSetWithElements(elements []*element.Element) (*DataSet, error) {
	ds := NewDataSet()

	for _, elem := range elements {
		if elem == nil {
			return nil, fmt.Errorf("cannot add nil element")
		}

		// Check for duplicates
		if ds.Contains(elem.Tag()) {
			return nil, fmt.Errorf("duplicate tag %s in elements", elem.Tag())
		}

		if err := ds.Add(elem); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// Add inserts or replaces an element in the dataset.
//
// If an element with the same tag already exists, it will be replaced.
// Returns an error if the element is nil.
//
// Example:
//
//	elem, _ := element.NewElement(tag.New(0x0010, 0x0010), vr.PersonName, value)
//	if err := ds.Add(elem); err != nil {
//	    log.Fatal(err)
//	}
func (ds *DataSet) Add(elem *element.Element) error {
	if elem == nil {
		return fmt.Errorf("cannot add nil element")
	}

	ds.put(elem.Tag(), elementFrom(elem))
	return nil
}

// AddSequence inserts or replaces a Sequence of Items value.
func (ds *DataSet) AddSequence(seq *Sequence) error {
	if seq == nil {
		return fmt.Errorf("cannot add nil sequence")
	}
	ds.put(seq.tag, &DatasetElement{Sequence: seq})
	return nil
}

// AddFragments inserts or replaces encapsulated Pixel Data fragments.
func (ds *DataSet) AddFragments(frags *Fragments) error {
	if frags == nil {
		return fmt.Errorf("cannot add nil fragments")
	}
	ds.put(tag.PixelData, &DatasetElement{Fragments: frags})
	return nil
}

// put records insertion order the first time a tag is seen.
func (ds *DataSet) put(t tag.Tag, de *DatasetElement) {
	if _, exists := ds.elements[t]; !exists {
		ds.order = append(ds.order, t)
	}
	ds.elements[t] = de
}

// GetElement retrieves the raw tagged-union entry for a tag, exposing
// whichever of Primitive, Sequence, or Fragments was stored.
func (ds *DataSet) GetElement(t tag.Tag) (*DatasetElement, error) {
	de, exists := ds.elements[t]
	if !exists {
		return nil, fmt.Errorf("element with tag %s not found", t)
	}
	return de, nil
}

// GetSequence retrieves a Sequence of Items value by tag.
func (ds *DataSet) GetSequence(t tag.Tag) (*Sequence, error) {
	de, err := ds.GetElement(t)
	if err != nil {
		return nil, err
	}
	if de.Sequence == nil {
		return nil, fmt.Errorf("element with tag %s is not a sequence", t)
	}
	return de.Sequence, nil
}

// GetFragments retrieves encapsulated Pixel Data fragments.
func (ds *DataSet) GetFragments() (*Fragments, error) {
	de, err := ds.GetElement(tag.PixelData)
	if err != nil {
		return nil, err
	}
	if de.Fragments == nil {
		return nil, fmt.Errorf("pixel data is not encapsulated")
	}
	return de.Fragments, nil
}

// Get retrieves an element by its DICOM tag.
//
// Returns an error if the tag is not found in the dataset.
//
// Example:
//
//	elem, err := ds.Get(tag.New(0x0010, 0x0010))
//	if err != nil {
//	    log.Printf("PatientName not found: %v", err)
//	}
func (ds *DataSet) Get(t tag.Tag) (*element.Element, error) {
	de, exists := ds.elements[t]
	if !exists {
		return nil, fmt.Errorf("element with tag %s not found", t)
	}
	if de.Primitive == nil {
		return nil, fmt.Errorf("element with tag %s is not a primitive value", t)
	}

	return de.Primitive, nil
}

// GetByKeyword retrieves an element by its DICOM keyword.
//
// The keyword is looked up in the DICOM dictionary to find the corresponding tag.
// Returns an error if the keyword is unknown or the element is not in the dataset.
//
// Example:
//
//	elem, err := ds.GetByKeyword("PatientName")
//	if err != nil {
//	    log.Printf("Element not found: %v", err)
//	}
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
func (ds *DataSet) GetByKeyword(keyword string) (*element.Element, error) {
	// Find the tag for this keyword
	info, err := tag.FindByKeyword(keyword)
	if err != nil {
		return nil, fmt.Errorf("unknown keyword %q: %w", keyword, err)
	}

	return ds.Get(info.Tag)
}

// Contains checks if an element with the given tag exists in the dataset.
//
// Example:
//
//	if ds.Contains(tag.New(0x0010, 0x0010)) {
//	    fmt.Println("PatientName is present")
//	}
func (ds *DataSet) Contains(t tag.Tag) bool {
	_, exists := ds.elements[t]
	return exists
}

// Remove removes an element from the dataset by its tag.
//
// Returns an error if the tag is not found.
//
// Example:
//
//	if err := ds.Remove(tag.New(0x0010, 0x0010)); err != nil {
//	    log.Printf("Could not remove PatientName: %v", err)
//	}
func (ds *DataSet) Remove(t tag.Tag) error {
	if !ds.Contains(t) {
		return fmt.Errorf("element with tag %s not found", t)
	}

	delete(ds.elements, t)
	for i, ot := range ds.order {
		if ot == t {
			ds.order = append(ds.order[:i], ds.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of elements in the dataset.
//
// Example:
//
//	fmt.Printf("Dataset contains %d elements\n", ds.Len())
func (ds *DataSet) Len() int {
	return len(ds.elements)
}

// Elements returns all elements in the dataset sorted by tag.
//
// The returned slice is a copy and can be safely modified without affecting
// the dataset.
//
// Example:
//
//	for _, elem := range ds.Elements() {
//	    fmt.Printf("%s = %s\n", elem.Tag(), elem.Value())
//	}
func (ds *DataSet) Elements() []*element.Element {
	if len(ds.elements) == 0 {
		return []*element.Element{}
	}

	tags := ds.Tags()
	elements := make([]*element.Element, 0, len(tags))

	for _, t := range tags {
		if de := ds.elements[t]; de.Primitive != nil {
			elements = append(elements, de.Primitive)
		}
	}

	return elements
}

// AllElements returns every tagged-union entry in the dataset sorted by tag,
// including sequences and encapsulated pixel data fragments.
func (ds *DataSet) AllElements() []*DatasetElement {
	tags := ds.Tags()
	all := make([]*DatasetElement, len(tags))
	for i, t := range tags {
		all[i] = ds.elements[t]
	}
	return all
}

// OrderedTags returns tags in the order they were first inserted, as opposed
// to Tags which sorts numerically. Useful for round-tripping a dataset that
// does not follow canonical tag order (rare but standard-legal).
func (ds *DataSet) OrderedTags() []tag.Tag {
	out := make([]tag.Tag, len(ds.order))
	copy(out, ds.order)
	return out
}

// Tags returns all tags in the dataset sorted in ascending order.
//
// The returned slice is a copy and can be safely modified without affecting
// the dataset.
//
// Example:
//
//	for _, t := range ds.Tags() {
//	    elem, _ := ds.Get(t)
//	    fmt.Printf("%s: %s\n", t, elem.Name())
//	}
func (ds *DataSet) Tags() []tag.Tag {
	if len(ds.elements) == 0 {
		return []tag.Tag{}
	}

	tags := make([]tag.Tag, 0, len(ds.elements))
	for t := range ds.elements {
		tags = append(tags, t)
	}

	// Sort by tag value
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Compare(tags[j]) < 0
	})

	return tags
}

// String returns a human-readable string representation of the dataset.
//
// Format:
//
//	DataSet with N elements:
//	(GGGG,EEEE) VR [Name] = value
//	...
//
// Example:
//
//	fmt.Println(ds.String())
//	// Output:
//	// DataSet with 2 elements:
//	// (0010,0010) PN [Patient's Name] = Doe^John
//	// (0010,0020) LO [Patient ID] = 12345
func (ds *DataSet) String() string {
	var sb strings.Builder

	count := ds.Len()
	if count == 0 {
		sb.WriteString("DataSet with 0 elements")
		return sb.String()
	}

	if count == 1 {
		sb.WriteString("DataSet with 1 element:\n")
	} else {
		sb.WriteString(fmt.Sprintf("DataSet with %d elements:\n", count))
	}

	// Print elements in sorted order
	for _, elem := range ds.AllElements() {
		sb.WriteString("  ")
		sb.WriteString(elem.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

// Copy creates a copy of the dataset's element map and insertion order.
//
// Adding or removing elements in the copy does not affect the original.
// The elements themselves are not duplicated: both datasets share the same
// element entries, so changing an element's value is seen by both.
//
// Example:
//
//	original := dicom.NewDataSet()
//	// ... add elements ...
//	copy := original.Copy()
//	copy.Remove(tag.New(0x0010, 0x0010))  // Does not affect original
func (ds *DataSet) Copy() *DataSet {
	copied := NewDataSet()
	copied.parent = ds.parent

	for _, t := range ds.order {
		copied.put(t, ds.elements[t])
	}

	return copied
}

// Merge merges elements from another dataset into this one.
//
// Elements with the same tag will be replaced by the other dataset's values.
//
// Example:
//
//	ds1 := dicom.NewDataSet()
//	ds2 := dicom.NewDataSet()
//	// ... populate both datasets ...
//	ds1.Merge(ds2)  // ds2's elements are merged into ds1
func (ds *DataSet) Merge(other *DataSet) error {
	if other == nil {
		return fmt.Errorf("cannot merge nil dataset")
	}

	for _, t := range other.order {
		ds.put(t, other.elements[t])
	}

	return nil
}

// FileMetaInformation returns a new DataSet containing only File Meta Information elements.
//
// File Meta Information consists of all elements in Group 0x0002, which includes:
// - Transfer Syntax UID (0002,0010)
// - Media Storage SOP Class UID (0002,0002)
// - Media Storage SOP Instance UID (0002,0003)
// - Implementation Class UID (0002,0012)
// - Implementation Version Name (0002,0013)
//
// Returns nil if no File Meta Information elements are present.
//
// Example:
//
//	fileMeta := ds.FileMetaInformation()
//	if fileMeta != nil {
//	    tsElem, err := fileMeta.Get(tag.TransferSyntaxUID)
//	    if err == nil {
//	        fmt.Printf("Transfer Syntax: %s\n", tsElem.Value())
//	    }
//	}
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
func (ds *DataSet) FileMetaInformation() *DataSet {
	fileMeta := NewDataSet()
	hasElements := false

	// File Meta Information is Group 0x0002
	const fileMetaGroup = 0x0002

	// Collect all elements from Group 0x0002
	for _, t := range ds.order {
		if t.Group == fileMetaGroup {
			fileMeta.put(t, ds.elements[t])
			hasElements = true
		}
	}

	if !hasElements {
		return nil
	}

	return fileMeta
}
