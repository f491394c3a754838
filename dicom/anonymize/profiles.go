// Package anonymize implements DICOM PS3.15 compliant de-identification profiles.
package anonymize

import (
	"github.com/medvault/dicomkit/dicom/tag"
)

// ProfileAction is a De-identification Profile Table entry's action, before
// the Action Resolver (resolver.go) turns it into a concrete ResolvedOp.
// Distinct from Action (the legacy per-element override/callback model),
// this is the vocabulary the profile table itself uses.
type ProfileAction int

const (
	PAKeep ProfileAction = iota
	PARemove
	PAReplaceEmpty
	PAReplaceDummy
	PAClean
	PARemapID

	// Compound conditional codes, resolved against a ConformanceClass by
	// resolver.go's compoundTable.
	PAZOrD
	PAXOrZ
	PAXOrD
	PAXOrZOrD
	PAXOrZOrUID
)

// RetentionOption is one flag in the bitmask of retention options qualifying
// a De-identification Profile Table entry.
type RetentionOption uint16

const (
	RetainSafePrivate RetentionOption = 1 << iota
	// RetainIdentifiers corresponds to PS3.15's Retain UIDs Option: it gates
	// only UID-valued attributes, never patient name/ID, which the Basic
	// Profile always replaces regardless of options.
	RetainIdentifiers
	RetainDeviceIdentity
	RetainInstitutionIdentity
	RetainPatientCharacteristics
	RetainFullDates
	RetainModifiedDates
	CleanDescriptorsOpt
	CleanStructuredContentOpt
	CleanGraphicsOpt
)

// ProfileEntry is one row of the De-identification Profile Table: an action
// plus the conformance class used to resolve compound codes, and the
// retention-option bit that, when enabled, overrides Action: Clean for the
// Clean* options, Keep for every other option.
type ProfileEntry struct {
	Action     ProfileAction
	Class      ConformanceClass
	RetainWhen RetentionOption
}

// basicProfileTable is the De-identification Profile Table, keyed on the
// tags the Basic Application Level Confidentiality Profile (PS3.15 Table
// E.1-1) enumerates, carrying compound codes and retention-option gates
// instead of one fixed action per tag.
//
// Reference: https://dicom.nema.org/medical/dicom/current/output/html/part15.html#table_E.1-1
var basicProfileTable = map[tag.Tag]ProfileEntry{
	// Patient Module
	tag.PatientName:               {PAZOrD, Class2, 0},
	tag.PatientID:                 {PAZOrD, Class2, 0},
	tag.PatientBirthDate:          {PAZOrD, Class2, RetainFullDates},
	tag.PatientBirthTime:          {PAXOrZ, Class3, RetainFullDates},
	tag.PatientSex:                {PAKeep, Class2, 0},
	tag.PatientAge:                {PAXOrD, Class3, RetainPatientCharacteristics},
	tag.PatientSize:               {PAXOrD, Class3, RetainPatientCharacteristics},
	tag.PatientWeight:             {PAXOrD, Class3, RetainPatientCharacteristics},
	tag.OtherPatientIDs:           {PAXOrZ, Class3, 0},
	tag.OtherPatientNames:         {PARemove, Class3, 0},
	tag.PatientBirthName:          {PARemove, Class3, 0},
	tag.PatientMotherBirthName:    {PARemove, Class3, 0},
	tag.MedicalRecordLocator:      {PARemove, Class3, 0},
	tag.EthnicGroup:               {PARemove, Class3, 0},
	tag.PatientComments:           {PARemove, Class3, 0},
	tag.PatientSpeciesDescription: {PAKeep, Class1C, 0},
	tag.PatientBreedDescription:   {PAKeep, Class1C, 0},
	tag.ResponsiblePerson:         {PARemove, Class2C, 0},
	tag.ResponsibleOrganization:   {PARemove, Class3, 0},

	// General Study Module
	tag.StudyInstanceUID:                   {PARemapID, Class1, RetainIdentifiers},
	tag.StudyDate:                          {PAZOrD, Class2, RetainFullDates},
	tag.StudyTime:                          {PAZOrD, Class2, RetainFullDates},
	tag.ReferringPhysicianName:             {PAReplaceEmpty, Class2, 0},
	tag.ReferringPhysicianAddress:          {PARemove, Class3, 0},
	tag.ReferringPhysicianTelephoneNumbers: {PARemove, Class3, 0},
	tag.StudyID:                            {PAZOrD, Class2, 0},
	tag.AccessionNumber:                    {PAZOrD, Class2, 0},
	tag.IssuerOfAccessionNumberSequence:    {PARemove, Class3, 0},
	tag.StudyDescription:                   {PAXOrZ, Class3, CleanDescriptorsOpt},
	tag.PhysiciansOfRecord:                 {PARemove, Class3, 0},
	tag.NameOfPhysiciansReadingStudy:       {PARemove, Class3, 0},
	tag.RequestingPhysician:                {PARemove, Class3, 0},
	tag.ConsultingPhysicianName:            {PARemove, Class3, 0},
	tag.AdmittingDiagnosesDescription:      {PARemove, Class3, 0},
	tag.ReferencedStudySequence:            {PAKeep, Class3, 0},

	// General Series Module
	tag.SeriesInstanceUID:         {PARemapID, Class1, RetainIdentifiers},
	tag.SeriesNumber:              {PAKeep, Class2, 0},
	tag.SeriesDate:                {PAXOrZOrD, Class3, RetainFullDates},
	tag.SeriesTime:                {PAXOrZOrD, Class3, RetainFullDates},
	tag.SeriesDescription:         {PAXOrZ, Class3, CleanDescriptorsOpt},
	tag.PerformingPhysicianName:   {PAReplaceEmpty, Class3, 0},
	tag.OperatorsName:             {PAReplaceEmpty, Class3, 0},
	tag.ProtocolName:              {PAXOrZ, Class3, CleanDescriptorsOpt},
	tag.RequestAttributesSequence: {PARemove, Class3, 0},

	// General Equipment Module
	tag.InstitutionName:             {PAXOrZOrD, Class3, RetainInstitutionIdentity},
	tag.InstitutionAddress:          {PARemove, Class3, RetainInstitutionIdentity},
	tag.InstitutionalDepartmentName: {PARemove, Class3, RetainInstitutionIdentity},
	tag.StationName:                 {PARemove, Class3, RetainDeviceIdentity},
	tag.DeviceSerialNumber:          {PAXOrZOrD, Class3, RetainDeviceIdentity},

	// General Image Module
	tag.SOPInstanceUID:        {PARemapID, Class1, RetainIdentifiers},
	tag.AcquisitionDate:       {PAXOrZOrD, Class3, RetainFullDates},
	tag.AcquisitionTime:       {PAXOrZOrD, Class3, RetainFullDates},
	tag.AcquisitionDateTime:   {PAXOrZOrD, Class3, RetainFullDates},
	tag.ContentDate:           {PAZOrD, Class2C, RetainFullDates},
	tag.ContentTime:           {PAZOrD, Class2C, RetainFullDates},
	tag.InstanceCreationDate:  {PAXOrZOrD, Class3, RetainFullDates},
	tag.InstanceCreationTime:  {PAXOrZOrD, Class3, RetainFullDates},
	tag.InstanceCreatorUID:    {PARemove, Class3, 0},
	tag.DerivationDescription: {PAXOrZ, Class3, CleanDescriptorsOpt},

	// SOP Common Module
	tag.InstanceNumber:            {PAKeep, Class3, 0},
	tag.TimezoneOffsetFromUTC:     {PARemove, Class3, 0},
	tag.DigitalSignaturesSequence: {PARemove, Class3, 0},

	// Patient Study Module
	tag.PatientSexNeutered: {PARemove, Class2C, 0},

	// Additional identifying attributes
	tag.ImageComments:               {PAXOrZ, Class3, CleanDescriptorsOpt},
	tag.FrameComments:               {PAXOrZ, Class3, CleanDescriptorsOpt},
	tag.RequestingService:           {PARemove, Class3, 0},
	tag.CurrentPatientLocation:      {PARemove, Class3, 0},
	tag.PatientInstitutionResidence: {PARemove, Class3, 0},
	tag.ModifiedAttributesSequence:  {PARemove, Class3, 0},
	tag.OriginalAttributesSequence:  {PARemove, Class3, 0},
	tag.PersonName:                  {PARemove, Class3, 0},
	tag.PersonAddress:                {PARemove, Class3, 0},
	tag.PersonTelephoneNumbers:       {PARemove, Class3, 0},
	tag.TextComments:                 {PARemove, Class3, 0},
	tag.TextString:                   {PARemove, Class3, 0},
	tag.AdditionalPatientHistory:     {PARemove, Class3, 0},
	tag.Occupation:                   {PARemove, Class3, 0},
	tag.MilitaryRank:                 {PARemove, Class3, 0},
	tag.BranchOfService:              {PARemove, Class3, 0},
	tag.CountryOfResidence:           {PARemove, Class3, 0},
	tag.RegionOfResidence:            {PARemove, Class3, 0},

	// Performed Procedure Step timestamps
	tag.PerformedProcedureStepStartDate:   {PAXOrZOrD, Class3, RetainFullDates},
	tag.PerformedProcedureStepStartTime:   {PAXOrZOrD, Class3, RetainFullDates},
	tag.PerformedProcedureStepEndDate:     {PAXOrZOrD, Class3, RetainFullDates},
	tag.PerformedProcedureStepEndTime:     {PAXOrZOrD, Class3, RetainFullDates},
	tag.PerformedProcedureStepDescription: {PAXOrZ, Class3, CleanDescriptorsOpt},
	tag.RequestedProcedureDescription:     {PAXOrZ, Class3, CleanDescriptorsOpt},

	// File metadata
	tag.MediaStorageSOPInstanceUID: {PARemapID, Class1, RetainIdentifiers},
}

// lookupProfileEntry returns the profile table row for t under the supplied
// retention options, applying the RetainWhen gate (Clean for a Clean*
// option, Keep for any other, when its bit is set) before the caller hands
// the row to the Action Resolver.
func lookupProfileEntry(t tag.Tag, opts RetentionOption) (ProfileEntry, bool) {
	entry, ok := basicProfileTable[t]
	if !ok {
		return ProfileEntry{}, false
	}
	if entry.RetainWhen != 0 && opts&entry.RetainWhen != 0 {
		if entry.RetainWhen&(CleanDescriptorsOpt|CleanStructuredContentOpt|CleanGraphicsOpt) != 0 {
			return ProfileEntry{Action: PAClean, Class: entry.Class}, true
		}
		return ProfileEntry{Action: PAKeep, Class: entry.Class}, true
	}
	return entry, true
}
