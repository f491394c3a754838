// Package anonymize implements DICOM PS3.15 compliant de-identification.
package anonymize

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-playground/validator/v10"

	"github.com/medvault/dicomkit/dicom"
	"github.com/medvault/dicomkit/dicom/element"
	"github.com/medvault/dicomkit/dicom/remap"
	"github.com/medvault/dicomkit/dicom/tag"
	"github.com/medvault/dicomkit/dicom/value"
	"github.com/medvault/dicomkit/dicom/vr"
)

// Profile represents a DICOM PS3.15 de-identification profile.
type Profile int

const (
	// ProfileBasic is the Basic Application Level Confidentiality Profile (PS3.15 E.1).
	ProfileBasic Profile = iota

	// ProfileClean includes Basic profile with the Clean Descriptors, Clean
	// Structured Content and Clean Graphics options. Pixel data is not cleaned.
	ProfileClean

	// ProfileRetainUIDs includes Basic profile but retains UIDs for longitudinal studies.
	ProfileRetainUIDs

	// ProfileRetainDeviceIdentity includes Basic profile but retains device/institution information.
	ProfileRetainDeviceIdentity

	// ProfileCustom allows full customization of anonymization actions.
	ProfileCustom
)

// Action represents the action to take for a DICOM attribute that a caller
// overrides directly, outside the profile table (ActionCallback, most
// commonly, or a blanket ActionKeep/ActionRemove for a tag the table does
// not mention).
type Action int

const (
	ActionKeep Action = iota
	ActionRemove
	ActionEmpty
	ActionDummy
	ActionClean
	ActionUID
	ActionHash
	ActionCallback
)

// Options configures anonymization behavior beyond the base profile.
type Options struct {
	// RetainSafePrivate keeps private (odd group) elements whose private
	// creator is in SafeCreators; others are removed.
	RetainSafePrivate bool
	// SafeCreators lists private creator strings considered safe when
	// RetainSafePrivate is set. A creator not on the list is never treated
	// as safe, so an empty list retains no private elements.
	SafeCreators []string

	// RetainUIDs preserves original Study/Series/SOP Instance UIDs (for
	// longitudinal studies); it never affects patient name/ID, which the
	// profile table always replaces.
	RetainUIDs bool

	// RetainDeviceIdentity preserves device and institution information.
	RetainDeviceIdentity bool

	// RetainInstitutionIdentity preserves institution name/address/department.
	RetainInstitutionIdentity bool

	// RetainPatientCharacteristics preserves age, sex, size, weight.
	RetainPatientCharacteristics bool

	// RetainFullDates preserves dates/times unshifted.
	RetainFullDates bool

	// RetainModifiedDates allows dates/times through the DateShift strategy
	// instead of removal, when RetainFullDates is false.
	RetainModifiedDates bool

	// CleanDescriptors cleans (rather than removes) free-text descriptor
	// fields.
	CleanDescriptors bool

	// CleanStructuredContent cleans structured report content items instead
	// of removing them.
	CleanStructuredContent bool

	// CleanGraphics cleans graphic annotation overlays instead of removing
	// them.
	CleanGraphics bool

	// RemovePrivateTags removes all private tags not covered by
	// RetainSafePrivate.
	RemovePrivateTags bool

	// RemoveOverlays removes overlay planes (60xx groups).
	RemoveOverlays bool

	// RemoveCurves removes curve data (50xx groups).
	RemoveCurves bool

	// DateShift configures the per-subject date/time shifting strategy
	// applied, under RetainModifiedDates, to a date/time value that the
	// profile would otherwise remove or replace.
	DateShift DateShiftConfig
}

// retention packs Options' boolean flags into the RetentionOption bitmask
// the profile table is gated on.
func (o Options) retention() RetentionOption {
	var r RetentionOption
	if o.RetainSafePrivate {
		r |= RetainSafePrivate
	}
	if o.RetainUIDs {
		r |= RetainIdentifiers
	}
	if o.RetainDeviceIdentity {
		r |= RetainDeviceIdentity
	}
	if o.RetainInstitutionIdentity {
		r |= RetainInstitutionIdentity
	}
	if o.RetainPatientCharacteristics {
		r |= RetainPatientCharacteristics
	}
	if o.RetainFullDates {
		r |= RetainFullDates
	}
	if o.RetainModifiedDates {
		r |= RetainModifiedDates
	}
	if o.CleanDescriptors {
		r |= CleanDescriptorsOpt
	}
	if o.CleanStructuredContent {
		r |= CleanStructuredContentOpt
	}
	if o.CleanGraphics {
		r |= CleanGraphicsOpt
	}
	return r
}

// Config contains the complete configuration for an Anonymizer.
type Config struct {
	// Profile is the base de-identification profile to use.
	Profile Profile

	// Options provides additional configuration.
	Options Options

	// PatientName is the replacement value for patient name. Bounded to the
	// PN VR's 64-character component-group limit.
	PatientName string `validate:"max=64"`

	// PatientID is the replacement value for patient ID. Bounded to the LO
	// VR's 64-character limit.
	PatientID string `validate:"max=64"`

	// InstitutionName is the replacement value for institution name.
	InstitutionName string `validate:"max=64"`

	// CustomActions allows overriding actions for specific tags, taking
	// precedence over the profile table.
	CustomActions map[tag.Tag]Action

	// Callbacks provides custom functions for specific tags when using ActionCallback.
	Callbacks map[tag.Tag]func(*element.Element) (*element.Element, error)

	// Remap is the Identifier Remap Store used for remap-identifier
	// resolutions. Defaults to a fresh in-memory store when nil.
	Remap remap.Store

	// Scope identifies this Anonymize call's dataset grouping (e.g. a study
	// or batch identifier) passed through to Remap.GetOrCreate.
	Scope string `validate:"max=64"`

	// Log receives diagnostic events; defaults to a no-op logger.
	Log logr.Logger
}

// configValidator runs Config's struct-tag validation; safe for concurrent
// use across Anonymizers, matching the teacher's single-shared-Validate
// pattern in its FHIR validator.
var configValidator = validator.New()

// Validate checks Config's struct-tag constraints (field lengths) and the
// embedded DateShift strategy, returning a *validator.InvalidValidationError
// or validator.ValidationErrors describing every violation found.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return err
	}
	return configValidator.Struct(c.Options.DateShift)
}

// Anonymizer performs DICOM dataset de-identification.
type Anonymizer struct {
	config      Config
	actions     map[tag.Tag]Action
	dateShifter *DateShifter
	log         logr.Logger
}

// NewAnonymizer creates an anonymizer with the specified profile.
//
// Example:
//
//	anonymizer := anonymize.NewAnonymizer(anonymize.ProfileBasic)
func NewAnonymizer(profile Profile) *Anonymizer {
	config := Config{
		Profile:     profile,
		PatientName: "ANONYMOUS",
		PatientID:   fmt.Sprintf("ANON%d", time.Now().Unix()),
		Options:     defaultOptionsForProfile(profile),
	}
	return NewAnonymizerWithConfig(config)
}

// NewAnonymizerWithConfig creates an anonymizer with custom configuration.
//
// Example:
//
//	config := anonymize.Config{
//	    Profile: anonymize.ProfileBasic,
//	    Options: anonymize.Options{
//	        RetainUIDs: true,
//	        CleanDescriptors: true,
//	    },
//	    PatientName: "STUDY_001",
//	}
//	anonymizer := anonymize.NewAnonymizerWithConfig(config)
func NewAnonymizerWithConfig(config Config) *Anonymizer {
	if config.Remap == nil {
		config.Remap = remap.NewMemoryStore(remap.Options{}, config.Log)
	}

	a := &Anonymizer{
		config:      config,
		actions:     make(map[tag.Tag]Action),
		dateShifter: NewDateShifter(config.Options.DateShift),
		log:         config.Log,
	}

	for t, action := range config.CustomActions {
		a.actions[t] = action
	}

	return a
}

// Anonymize performs de-identification on a DICOM dataset.
//
// Returns a new anonymized dataset. The original dataset is not modified.
//
// Example:
//
//	anonymizedDS, err := anonymizer.Anonymize(originalDS)
//	if err != nil {
//	    log.Fatal(err)
//	}
func (a *Anonymizer) Anonymize(ds *dicom.DataSet) (*dicom.DataSet, error) {
	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid anonymizer configuration: %w", err)
	}

	newDS, err := a.copyDataSet(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to copy dataset: %w", err)
	}

	subjectKey := subjectKeyFor(newDS)
	methods := make([]string, 0, 4)

	if err := a.walk(newDS, subjectKey, &methods); err != nil {
		return nil, fmt.Errorf("failed to apply anonymization: %w", err)
	}

	if a.config.Options.RemoveOverlays {
		if err := newDS.RemoveGroupTags(0x6000); err != nil {
			return nil, fmt.Errorf("failed to remove overlays: %w", err)
		}
		methods = append(methods, "OVERLAYS REMOVED")
	}

	if a.config.Options.RemoveCurves {
		if err := newDS.RemoveGroupTags(0x5000); err != nil {
			return nil, fmt.Errorf("failed to remove curves: %w", err)
		}
		methods = append(methods, "CURVES REMOVED")
	}

	if err := a.applyConformanceMarkers(newDS, methods); err != nil {
		return nil, fmt.Errorf("failed to record de-identification conformance: %w", err)
	}

	a.log.V(1).Info("anonymized dataset", "elements", newDS.Len(), "methods", len(methods))
	return newDS, nil
}

// walk recurses through every primitive element in ds, including those
// nested inside sequence items, resolving and applying the profile action
// for each.
func (a *Anonymizer) walk(ds *dicom.DataSet, subjectKey string, methods *[]string) error {
	opts := a.config.Options.retention()

	for _, de := range ds.AllElements() {
		t := de.Tag()

		if de.Sequence != nil {
			for _, item := range de.Sequence.Items {
				if item.DataSet == nil {
					continue
				}
				if err := a.walk(item.DataSet, subjectKey, methods); err != nil {
					return err
				}
			}
			continue
		}

		if de.Fragments != nil {
			continue
		}
		if de.Primitive == nil {
			continue
		}

		remove, err := a.resolveElement(ds, de.Primitive, t, opts, subjectKey)
		if err != nil {
			return err
		}
		if remove {
			if err := ds.Remove(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveElement decides and applies the concrete operation for one element,
// returning true if the caller should remove it from ds.
func (a *Anonymizer) resolveElement(ds *dicom.DataSet, elem *element.Element, t tag.Tag, opts RetentionOption, subjectKey string) (bool, error) {
	if action, ok := a.actions[t]; ok {
		return a.applyAction(elem, action)
	}

	if t.IsPrivate() {
		return a.resolvePrivate(ds, elem, t)
	}

	entry, ok := lookupProfileEntry(t, opts)
	if !ok {
		return false, nil
	}

	hasValue := len(elem.Value().Bytes()) > 0
	op := Resolve(entry.Action, entry.Class, elem.VR(), hasValue)

	// Under RetainModifiedDates a date/time value that would otherwise be
	// altered goes through the date shifter instead.
	if opts&RetainModifiedDates != 0 && op != OpKeep && hasValue &&
		(elem.VR() == vr.Date || elem.VR() == vr.Time || elem.VR() == vr.DateTime) {
		op = OpClean
	}

	switch op {
	case OpKeep:
		return false, nil
	case OpRemove:
		return true, nil
	case OpReplaceEmpty:
		_, err := a.replaceWithEmpty(elem)
		return false, err
	case OpReplaceDummy:
		_, err := a.replaceWithDummy(elem)
		return false, err
	case OpClean:
		return false, a.resolveClean(elem, subjectKey)
	case OpRemapIdentifier:
		return false, a.remapIdentifier(elem)
	default:
		return false, nil
	}
}

// resolveClean routes a clean-action element either through the date
// shifter (for date/time fields qualifying under RetainFullDates /
// RetainModifiedDates) or through free-text cleaning.
func (a *Anonymizer) resolveClean(elem *element.Element, subjectKey string) error {
	switch elem.VR() {
	case vr.Date:
		return a.shiftOrClean(elem, subjectKey, func(s, key string) (string, bool, error) { return a.dateShifter.ShiftDate(s, key) })
	case vr.Time:
		return a.shiftOrClean(elem, subjectKey, func(s, key string) (string, bool, error) { return a.dateShifter.ShiftTime(s, key) })
	case vr.DateTime:
		return a.shiftOrClean(elem, subjectKey, func(s, key string) (string, bool, error) { return a.dateShifter.ShiftDateTime(s, key) })
	default:
		_, err := a.cleanElement(elem)
		return err
	}
}

func (a *Anonymizer) shiftOrClean(elem *element.Element, subjectKey string, shift func(string, string) (string, bool, error)) error {
	shifted, ok, err := shift(elem.Value().String(), subjectKey)
	if err != nil {
		return err
	}
	if !ok {
		return elem.SetValue(mustEmptyValue(elem.VR()))
	}
	val, err := value.NewStringValue(elem.VR(), []string{shifted})
	if err != nil {
		return fmt.Errorf("failed to create shifted value: %w", err)
	}
	return elem.SetValue(val)
}

func mustEmptyValue(v vr.VR) value.Value {
	val, _ := value.NewStringValue(v, []string{""})
	return val
}

// remapIdentifier resolves elem's UID through the configured Remap store,
// recording the replacement in place of the original.
func (a *Anonymizer) remapIdentifier(elem *element.Element) error {
	original := elem.Value().String()
	replacement, err := a.config.Remap.GetOrCreate(original, a.config.Scope)
	if err != nil {
		return fmt.Errorf("remapping %s: %w", elem.Tag(), err)
	}
	val, err := value.NewStringValue(vr.UniqueIdentifier, []string{replacement})
	if err != nil {
		return fmt.Errorf("failed to create remapped UID value: %w", err)
	}
	return elem.SetValue(val)
}

// resolvePrivate applies the private-tag policy: remove unless
// RetainSafePrivate is set and the tag's private creator is on the safe
// list.
func (a *Anonymizer) resolvePrivate(ds *dicom.DataSet, elem *element.Element, t tag.Tag) (bool, error) {
	if !a.config.Options.RemovePrivateTags && !a.config.Options.RetainSafePrivate {
		return false, nil
	}
	if a.config.Options.RetainSafePrivate {
		creator, _ := ds.CreatorFor(t)
		if containsString(a.config.Options.SafeCreators, creator) {
			return false, nil
		}
	}
	return true, nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// applyConformanceMarkers stamps the de-identified dataset with the
// standard markers recording that, and how, de-identification was applied.
func (a *Anonymizer) applyConformanceMarkers(ds *dicom.DataSet, methods []string) error {
	removedVal, err := value.NewStringValue(vr.CodeString, []string{"YES"})
	if err != nil {
		return err
	}
	removedElem, err := element.NewElement(tag.PatientIdentityRemoved, vr.CodeString, removedVal)
	if err != nil {
		return err
	}
	if err := ds.Add(removedElem); err != nil {
		return err
	}

	if len(methods) == 0 {
		methods = []string{"BASIC APPLICATION LEVEL CONFIDENTIALITY PROFILE"}
	}
	methodVal, err := value.NewStringValue(vr.LongString, []string{strings.Join(methods, "\\")})
	if err != nil {
		return err
	}
	methodElem, err := element.NewElement(tag.DeidentificationMethod, vr.LongString, methodVal)
	if err != nil {
		return err
	}
	return ds.Add(methodElem)
}

// applyAction applies a caller-overridden Action to an element.
func (a *Anonymizer) applyAction(elem *element.Element, action Action) (bool, error) {
	switch action {
	case ActionKeep:
		return false, nil

	case ActionRemove:
		return true, nil

	case ActionEmpty:
		_, err := a.replaceWithEmpty(elem)
		return false, err

	case ActionDummy:
		_, err := a.replaceWithDummy(elem)
		return false, err

	case ActionClean:
		_, err := a.cleanElement(elem)
		return false, err

	case ActionUID:
		return a.remapViaAction(elem)

	case ActionHash:
		_, err := a.hashElement(elem)
		return false, err

	case ActionCallback:
		callback, ok := a.config.Callbacks[elem.Tag()]
		if !ok {
			return false, fmt.Errorf("no callback defined for tag %s", elem.Tag())
		}
		newElem, err := callback(elem)
		if err != nil {
			return false, err
		}
		if newElem == nil {
			return true, nil
		}
		return false, elem.SetValue(newElem.Value())

	default:
		return false, nil
	}
}

func (a *Anonymizer) remapViaAction(elem *element.Element) (bool, error) {
	return false, a.remapIdentifier(elem)
}

// replaceWithEmpty replaces the element value with an empty value.
func (a *Anonymizer) replaceWithEmpty(elem *element.Element) (bool, error) {
	var val value.Value
	var err error

	switch elem.VR() {
	case vr.PersonName, vr.LongString, vr.ShortString, vr.UnlimitedText,
		vr.ShortText, vr.LongText, vr.CodeString, vr.Date, vr.Time, vr.DateTime, vr.AgeString:
		val, err = value.NewStringValue(elem.VR(), []string{""})
	case vr.IntegerString:
		val, err = value.NewIntValue(vr.IntegerString, []int64{})
	case vr.DecimalString:
		val, err = value.NewFloatValue(vr.DecimalString, []float64{})
	default:
		val, err = value.NewBytesValue(elem.VR(), []byte{})
	}

	if err != nil {
		return false, fmt.Errorf("failed to create empty value: %w", err)
	}

	return true, elem.SetValue(val)
}

// replaceWithDummy replaces the element value with a dummy value that keeps
// the original VR valid.
func (a *Anonymizer) replaceWithDummy(elem *element.Element) (bool, error) {
	var val value.Value
	var err error

	switch elem.Tag() {
	case tag.PatientName:
		val, err = value.NewStringValue(vr.PersonName, []string{a.config.PatientName})
	case tag.PatientID:
		val, err = value.NewStringValue(vr.LongString, []string{a.config.PatientID})
	case tag.InstitutionName:
		val, err = value.NewStringValue(vr.LongString, []string{a.config.InstitutionName})
	default:
		switch elem.VR() {
		case vr.PersonName:
			val, err = value.NewStringValue(vr.PersonName, []string{"ANONYMOUS"})
		case vr.Date:
			val, err = value.NewStringValue(vr.Date, []string{"19000101"})
		case vr.Time:
			val, err = value.NewStringValue(vr.Time, []string{"000000.000000"})
		case vr.DateTime:
			val, err = value.NewStringValue(vr.DateTime, []string{"19000101000000.000000"})
		case vr.AgeString:
			val, err = value.NewStringValue(vr.AgeString, []string{"000Y"})
		case vr.UniqueIdentifier:
			return false, fmt.Errorf("replaceWithDummy: UID dummy substitution must go through remap, not a literal value")
		case vr.UniversalResourceIdentifier:
			val, err = value.NewStringValue(vr.UniversalResourceIdentifier, []string{"http://example.com"})
		case vr.LongString, vr.ShortString:
			val, err = value.NewStringValue(elem.VR(), []string{"ANONYMIZED"})
		default:
			return a.replaceWithEmpty(elem)
		}
	}

	if err != nil {
		return false, fmt.Errorf("failed to create dummy value: %w", err)
	}

	return true, elem.SetValue(val)
}

// cleanElement cleans identifying information while preserving clinical meaning.
func (a *Anonymizer) cleanElement(elem *element.Element) (bool, error) {
	switch elem.VR() {
	case vr.LongText, vr.ShortText, vr.UnlimitedText, vr.LongString, vr.ShortString:
		cleaned := cleanText(elem.Value().String())
		val, err := value.NewStringValue(elem.VR(), []string{cleaned})
		if err != nil {
			return false, fmt.Errorf("failed to create cleaned value: %w", err)
		}
		return true, elem.SetValue(val)
	default:
		return a.replaceWithDummy(elem)
	}
}

// hashElement replaces the value with a one-way hash, preserving referential
// consistency across elements sharing the same original value without the
// Remap store's bidirectional bookkeeping.
func (a *Anonymizer) hashElement(elem *element.Element) (bool, error) {
	original := elem.Value().String()
	hashed := fmt.Sprintf("HASH_%d", hashString(original))

	val, err := value.NewStringValue(elem.VR(), []string{hashed})
	if err != nil {
		return false, fmt.Errorf("failed to create hash value: %w", err)
	}
	return true, elem.SetValue(val)
}

// copyDataSet creates a deep copy of a dataset, including nested sequence
// items, so the original is never mutated.
func (a *Anonymizer) copyDataSet(ds *dicom.DataSet) (*dicom.DataSet, error) {
	newDS := dicom.NewDataSet()

	for _, t := range ds.OrderedTags() {
		de, err := ds.GetElement(t)
		if err != nil {
			return nil, err
		}

		switch {
		case de.Primitive != nil:
			newElem, err := element.NewElement(de.Primitive.Tag(), de.Primitive.VR(), de.Primitive.Value())
			if err != nil {
				return nil, err
			}
			if err := newDS.Add(newElem); err != nil {
				return nil, err
			}

		case de.Sequence != nil:
			newSeq := dicom.NewSequence(t)
			for _, item := range de.Sequence.Items {
				var newItemDS *dicom.DataSet
				if item.DataSet != nil {
					copied, err := a.copyDataSet(item.DataSet)
					if err != nil {
						return nil, err
					}
					copied.SetParent(newDS)
					newItemDS = copied
				} else {
					newItemDS = dicom.NewDataSet()
					newItemDS.SetParent(newDS)
				}
				newSeq.Append(dicom.NewItem(newItemDS))
			}
			if err := newDS.AddSequence(newSeq); err != nil {
				return nil, err
			}

		case de.Fragments != nil:
			if err := newDS.AddFragments(de.Fragments); err != nil {
				return nil, err
			}
		}
	}

	return newDS, nil
}

// subjectKeyFor derives the date-shifting subject key for a dataset: its
// PatientID if present, otherwise a fixed fallback so every element of an
// anonymous subject still shares one offset.
func subjectKeyFor(ds *dicom.DataSet) string {
	if elem, err := ds.Get(tag.PatientID); err == nil {
		if s := elem.Value().String(); s != "" {
			return s
		}
	}
	return "UNKNOWN"
}

// Helper functions

func defaultOptionsForProfile(profile Profile) Options {
	switch profile {
	case ProfileBasic:
		return Options{
			RemovePrivateTags: true,
		}
	case ProfileClean:
		return Options{
			RemovePrivateTags:      true,
			CleanDescriptors:       true,
			CleanStructuredContent: true,
			CleanGraphics:          true,
		}
	case ProfileRetainUIDs:
		return Options{
			RemovePrivateTags: true,
			RetainUIDs:        true,
		}
	case ProfileRetainDeviceIdentity:
		return Options{
			RemovePrivateTags:         true,
			RetainDeviceIdentity:      true,
			RetainInstitutionIdentity: true,
		}
	default:
		return Options{}
	}
}

func cleanText(text string) string {
	cleaned := text

	cleaned = strings.ReplaceAll(cleaned, "phone:", "REMOVED")

	if strings.Contains(cleaned, "@") {
		cleaned = "CLEANED_TEXT"
	}

	return cleaned
}

func hashString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}
