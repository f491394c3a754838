// AUTO-GENERATED-STYLE data file: standard DICOM PS3.6 attribute dictionary entries
// referenced by this module. Not exhaustive over the full standard (~4000
// entries) — covers the attributes the codec and de-identification engine
// name directly.
package tag

import "github.com/medvault/dicomkit/dicom/vr"

// Well-known DICOM tags used throughout the codec and de-identification engine.
var (
	// File Meta Information (group 0002)
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion     = New(0x0002, 0x0001)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)
	ImplementationClassUID         = New(0x0002, 0x0012)
	ImplementationVersionName      = New(0x0002, 0x0013)

	// SOP Common / identification
	SOPClassUID          = New(0x0008, 0x0016)
	SOPInstanceUID       = New(0x0008, 0x0018)
	InstanceCreationDate = New(0x0008, 0x0012)
	InstanceCreationTime = New(0x0008, 0x0013)
	InstanceCreatorUID   = New(0x0008, 0x0014)
	InstanceNumber       = New(0x0020, 0x0013)
	TimezoneOffsetFromUTC = New(0x0008, 0x0201)

	// General Study
	StudyDate                          = New(0x0008, 0x0020)
	StudyTime                          = New(0x0008, 0x0030)
	AccessionNumber                    = New(0x0008, 0x0050)
	IssuerOfAccessionNumberSequence    = New(0x0008, 0x0051)
	ReferringPhysicianName             = New(0x0008, 0x0090)
	ReferringPhysicianAddress          = New(0x0008, 0x0092)
	ReferringPhysicianTelephoneNumbers = New(0x0008, 0x0094)
	ConsultingPhysicianName            = New(0x0008, 0x009C)
	StudyDescription                   = New(0x0008, 0x1030)
	PhysiciansOfRecord                 = New(0x0008, 0x1048)
	NameOfPhysiciansReadingStudy       = New(0x0008, 0x1060)
	AdmittingDiagnosesDescription      = New(0x0008, 0x1080)
	StudyInstanceUID                   = New(0x0020, 0x000D)
	StudyID                            = New(0x0020, 0x0010)
	RequestAttributesSequence          = New(0x0040, 0x0275)

	// General Series
	Modality                 = New(0x0008, 0x0060)
	SeriesDescription        = New(0x0008, 0x103E)
	PerformingPhysicianName  = New(0x0008, 0x1050)
	ProtocolName             = New(0x0018, 0x1030)
	SeriesInstanceUID        = New(0x0020, 0x000E)
	SeriesNumber             = New(0x0020, 0x0011)
	SeriesDate               = New(0x0008, 0x0021)
	SeriesTime               = New(0x0008, 0x0031)
	OperatorsName            = New(0x0008, 0x1070)

	// General Equipment
	InstitutionName             = New(0x0008, 0x0080)
	InstitutionAddress          = New(0x0008, 0x0081)
	InstitutionalDepartmentName = New(0x0008, 0x1040)
	StationName                 = New(0x0008, 0x1010)
	DeviceSerialNumber          = New(0x0018, 0x1000)

	// General Image / acquisition
	AcquisitionDate     = New(0x0008, 0x0022)
	AcquisitionTime     = New(0x0008, 0x0032)
	AcquisitionDateTime = New(0x0008, 0x002A)
	ContentDate         = New(0x0008, 0x0023)
	ContentTime         = New(0x0008, 0x0033)
	DerivationDescription = New(0x0008, 0x2111)
	ImageComments       = New(0x0020, 0x4000)

	// Patient Module
	PatientName              = New(0x0010, 0x0010)
	PatientID                = New(0x0010, 0x0020)
	PatientBirthDate         = New(0x0010, 0x0030)
	PatientBirthTime         = New(0x0010, 0x0032)
	PatientSex               = New(0x0010, 0x0040)
	OtherPatientIDs          = New(0x0010, 0x1000)
	OtherPatientNames        = New(0x0010, 0x1001)
	PatientBirthName         = New(0x0010, 0x1005)
	PatientAge               = New(0x0010, 0x1010)
	PatientSize              = New(0x0010, 0x1020)
	PatientWeight            = New(0x0010, 0x1030)
	MilitaryRank             = New(0x0010, 0x1080)
	BranchOfService          = New(0x0010, 0x1081)
	PatientMotherBirthName   = New(0x0010, 0x1060)
	MedicalRecordLocator     = New(0x0010, 0x1090)
	CountryOfResidence       = New(0x0010, 0x2150)
	RegionOfResidence        = New(0x0010, 0x2152)
	EthnicGroup              = New(0x0010, 0x2160)
	Occupation               = New(0x0010, 0x2180)
	PatientSpeciesDescription = New(0x0010, 0x2201)
	PatientSexNeutered       = New(0x0010, 0x2203)
	PatientBreedDescription  = New(0x0010, 0x2292)
	ResponsiblePerson        = New(0x0010, 0x2297)
	ResponsibleOrganization  = New(0x0010, 0x2299)
	AdditionalPatientHistory = New(0x0010, 0x21B0)
	PatientComments          = New(0x0010, 0x4000)
	PatientIdentityRemoved   = New(0x0012, 0x0062)
	DeidentificationMethod   = New(0x0012, 0x0063)
	DeidentificationMethodCodeSequence = New(0x0012, 0x0064)

	// Patient Study
	RequestingPhysician                = New(0x0032, 0x1032)
	RequestingService                  = New(0x0032, 0x1033)
	RequestedProcedureDescription      = New(0x0032, 0x1060)
	CurrentPatientLocation             = New(0x0038, 0x0300)
	PatientInstitutionResidence        = New(0x0038, 0x0400)
	PerformedProcedureStepStartDate    = New(0x0040, 0x0244)
	PerformedProcedureStepStartTime    = New(0x0040, 0x0245)
	PerformedProcedureStepEndDate      = New(0x0040, 0x0250)
	PerformedProcedureStepEndTime      = New(0x0040, 0x0251)
	PerformedProcedureStepDescription  = New(0x0040, 0x0254)

	// SR content-item person/text attributes
	PersonName             = New(0x0040, 0xA123)
	PersonAddress          = New(0x0040, 0xA353)
	PersonTelephoneNumbers = New(0x0040, 0xA354)
	TextString             = New(0x2030, 0x0020)
	TextComments           = New(0x4000, 0x4000)
	FrameComments          = New(0x0020, 0x9158)

	// Modified/original attribute tracking
	ModifiedAttributesSequence = New(0x0400, 0x0550)
	OriginalAttributesSequence = New(0x0400, 0x0561)
	DigitalSignaturesSequence  = New(0xFFFA, 0xFFFA)
	ReferencedStudySequence    = New(0x0008, 0x1110)

	// Image pixel module
	SamplesPerPixel            = New(0x0028, 0x0002)
	PhotometricInterpretation  = New(0x0028, 0x0004)
	PlanarConfiguration        = New(0x0028, 0x0006)
	NumberOfFrames             = New(0x0028, 0x0008)
	Rows                       = New(0x0028, 0x0010)
	Columns                    = New(0x0028, 0x0011)
	BitsAllocated              = New(0x0028, 0x0100)
	BitsStored                 = New(0x0028, 0x0101)
	HighBit                    = New(0x0028, 0x0102)
	PixelRepresentation        = New(0x0028, 0x0103)
	BurnedInAnnotation         = New(0x0028, 0x0301)
	PixelData                  = New(0x7FE0, 0x0010)
	ExtendedOffsetTable        = New(0x7FE0, 0x0001)
	ExtendedOffsetTableLengths = New(0x7FE0, 0x0002)

	// De-identification conformance markers and coded-entry components
	LongitudinalTemporalInformationModified = New(0x0028, 0x0303)
	CodeValue                               = New(0x0008, 0x0100)
	CodingSchemeDesignator                  = New(0x0008, 0x0102)
	CodeMeaning                             = New(0x0008, 0x0104)
)

// TagDict is the standard attribute dictionary backing Find/FindByKeyword.
var TagDict = map[Tag]Info{
	FileMetaInformationGroupLength: {FileMetaInformationGroupLength, []vr.VR{vr.UnsignedLong}, "File Meta Information Group Length", "FileMetaInformationGroupLength", "1", false},
	FileMetaInformationVersion:     {FileMetaInformationVersion, []vr.VR{vr.OtherByte}, "File Meta Information Version", "FileMetaInformationVersion", "1", false},
	MediaStorageSOPClassUID:        {MediaStorageSOPClassUID, []vr.VR{vr.UniqueIdentifier}, "Media Storage SOP Class UID", "MediaStorageSOPClassUID", "1", false},
	MediaStorageSOPInstanceUID:     {MediaStorageSOPInstanceUID, []vr.VR{vr.UniqueIdentifier}, "Media Storage SOP Instance UID", "MediaStorageSOPInstanceUID", "1", false},
	TransferSyntaxUID:              {TransferSyntaxUID, []vr.VR{vr.UniqueIdentifier}, "Transfer Syntax UID", "TransferSyntaxUID", "1", false},
	ImplementationClassUID:         {ImplementationClassUID, []vr.VR{vr.UniqueIdentifier}, "Implementation Class UID", "ImplementationClassUID", "1", false},
	ImplementationVersionName:      {ImplementationVersionName, []vr.VR{vr.ShortString}, "Implementation Version Name", "ImplementationVersionName", "1", false},

	New(0x0008, 0x0005): {New(0x0008, 0x0005), []vr.VR{vr.CodeString}, "Specific Character Set", "SpecificCharacterSet", "1-n", false},
	SOPClassUID:           {SOPClassUID, []vr.VR{vr.UniqueIdentifier}, "SOP Class UID", "SOPClassUID", "1", false},
	SOPInstanceUID:        {SOPInstanceUID, []vr.VR{vr.UniqueIdentifier}, "SOP Instance UID", "SOPInstanceUID", "1", false},
	InstanceCreationDate:  {InstanceCreationDate, []vr.VR{vr.Date}, "Instance Creation Date", "InstanceCreationDate", "1", false},
	InstanceCreationTime:  {InstanceCreationTime, []vr.VR{vr.Time}, "Instance Creation Time", "InstanceCreationTime", "1", false},
	InstanceCreatorUID:    {InstanceCreatorUID, []vr.VR{vr.UniqueIdentifier}, "Instance Creator UID", "InstanceCreatorUID", "1", false},
	InstanceNumber:        {InstanceNumber, []vr.VR{vr.IntegerString}, "Instance Number", "InstanceNumber", "1", false},
	TimezoneOffsetFromUTC: {TimezoneOffsetFromUTC, []vr.VR{vr.ShortString}, "Timezone Offset From UTC", "TimezoneOffsetFromUTC", "1", false},

	StudyDate:                          {StudyDate, []vr.VR{vr.Date}, "Study Date", "StudyDate", "1", false},
	StudyTime:                          {StudyTime, []vr.VR{vr.Time}, "Study Time", "StudyTime", "1", false},
	AccessionNumber:                    {AccessionNumber, []vr.VR{vr.ShortString}, "Accession Number", "AccessionNumber", "1", false},
	IssuerOfAccessionNumberSequence:    {IssuerOfAccessionNumberSequence, []vr.VR{vr.SequenceOfItems}, "Issuer of Accession Number Sequence", "IssuerOfAccessionNumberSequence", "1", false},
	ReferringPhysicianName:             {ReferringPhysicianName, []vr.VR{vr.PersonName}, "Referring Physician's Name", "ReferringPhysicianName", "1", false},
	ReferringPhysicianAddress:          {ReferringPhysicianAddress, []vr.VR{vr.ShortText}, "Referring Physician's Address", "ReferringPhysicianAddress", "1", false},
	ReferringPhysicianTelephoneNumbers: {ReferringPhysicianTelephoneNumbers, []vr.VR{vr.ShortString}, "Referring Physician's Telephone Numbers", "ReferringPhysicianTelephoneNumbers", "1-n", false},
	ConsultingPhysicianName:            {ConsultingPhysicianName, []vr.VR{vr.PersonName}, "Consulting Physician's Name", "ConsultingPhysicianName", "1-n", false},
	StudyDescription:                   {StudyDescription, []vr.VR{vr.LongString}, "Study Description", "StudyDescription", "1", false},
	PhysiciansOfRecord:                 {PhysiciansOfRecord, []vr.VR{vr.PersonName}, "Physician(s) of Record", "PhysiciansOfRecord", "1-n", false},
	NameOfPhysiciansReadingStudy:       {NameOfPhysiciansReadingStudy, []vr.VR{vr.PersonName}, "Name of Physician(s) Reading Study", "NameOfPhysiciansReadingStudy", "1-n", false},
	AdmittingDiagnosesDescription:      {AdmittingDiagnosesDescription, []vr.VR{vr.LongString}, "Admitting Diagnoses Description", "AdmittingDiagnosesDescription", "1-n", false},
	StudyInstanceUID:                   {StudyInstanceUID, []vr.VR{vr.UniqueIdentifier}, "Study Instance UID", "StudyInstanceUID", "1", false},
	StudyID:                            {StudyID, []vr.VR{vr.ShortString}, "Study ID", "StudyID", "1", false},
	RequestAttributesSequence:          {RequestAttributesSequence, []vr.VR{vr.SequenceOfItems}, "Request Attributes Sequence", "RequestAttributesSequence", "1", false},

	Modality:                {Modality, []vr.VR{vr.CodeString}, "Modality", "Modality", "1", false},
	SeriesDescription:       {SeriesDescription, []vr.VR{vr.LongString}, "Series Description", "SeriesDescription", "1", false},
	PerformingPhysicianName: {PerformingPhysicianName, []vr.VR{vr.PersonName}, "Performing Physician's Name", "PerformingPhysicianName", "1-n", false},
	ProtocolName:            {ProtocolName, []vr.VR{vr.LongString}, "Protocol Name", "ProtocolName", "1", false},
	SeriesInstanceUID:       {SeriesInstanceUID, []vr.VR{vr.UniqueIdentifier}, "Series Instance UID", "SeriesInstanceUID", "1", false},
	SeriesNumber:            {SeriesNumber, []vr.VR{vr.IntegerString}, "Series Number", "SeriesNumber", "1", false},
	SeriesDate:              {SeriesDate, []vr.VR{vr.Date}, "Series Date", "SeriesDate", "1", false},
	SeriesTime:              {SeriesTime, []vr.VR{vr.Time}, "Series Time", "SeriesTime", "1", false},
	OperatorsName:           {OperatorsName, []vr.VR{vr.PersonName}, "Operators' Name", "OperatorsName", "1-n", false},

	InstitutionName:             {InstitutionName, []vr.VR{vr.LongString}, "Institution Name", "InstitutionName", "1", false},
	InstitutionAddress:          {InstitutionAddress, []vr.VR{vr.ShortText}, "Institution Address", "InstitutionAddress", "1", false},
	InstitutionalDepartmentName: {InstitutionalDepartmentName, []vr.VR{vr.LongString}, "Institutional Department Name", "InstitutionalDepartmentName", "1", false},
	StationName:                 {StationName, []vr.VR{vr.ShortString}, "Station Name", "StationName", "1", false},
	DeviceSerialNumber:          {DeviceSerialNumber, []vr.VR{vr.LongString}, "Device Serial Number", "DeviceSerialNumber", "1", false},

	AcquisitionDate:       {AcquisitionDate, []vr.VR{vr.Date}, "Acquisition Date", "AcquisitionDate", "1", false},
	AcquisitionTime:       {AcquisitionTime, []vr.VR{vr.Time}, "Acquisition Time", "AcquisitionTime", "1", false},
	AcquisitionDateTime:   {AcquisitionDateTime, []vr.VR{vr.DateTime}, "Acquisition DateTime", "AcquisitionDateTime", "1", false},
	ContentDate:           {ContentDate, []vr.VR{vr.Date}, "Content Date", "ContentDate", "1", false},
	ContentTime:           {ContentTime, []vr.VR{vr.Time}, "Content Time", "ContentTime", "1", false},
	DerivationDescription: {DerivationDescription, []vr.VR{vr.ShortText}, "Derivation Description", "DerivationDescription", "1", false},
	ImageComments:         {ImageComments, []vr.VR{vr.LongText}, "Image Comments", "ImageComments", "1", false},

	PatientName:               {PatientName, []vr.VR{vr.PersonName}, "Patient's Name", "PatientName", "1", false},
	PatientID:                 {PatientID, []vr.VR{vr.LongString}, "Patient ID", "PatientID", "1", false},
	PatientBirthDate:          {PatientBirthDate, []vr.VR{vr.Date}, "Patient's Birth Date", "PatientBirthDate", "1", false},
	PatientBirthTime:          {PatientBirthTime, []vr.VR{vr.Time}, "Patient's Birth Time", "PatientBirthTime", "1", false},
	PatientSex:                {PatientSex, []vr.VR{vr.CodeString}, "Patient's Sex", "PatientSex", "1", false},
	OtherPatientIDs:           {OtherPatientIDs, []vr.VR{vr.LongString}, "Other Patient IDs", "OtherPatientIDs", "1-n", true},
	OtherPatientNames:         {OtherPatientNames, []vr.VR{vr.PersonName}, "Other Patient Names", "OtherPatientNames", "1-n", false},
	PatientBirthName:          {PatientBirthName, []vr.VR{vr.PersonName}, "Patient's Birth Name", "PatientBirthName", "1", true},
	PatientAge:                {PatientAge, []vr.VR{vr.AgeString}, "Patient's Age", "PatientAge", "1", false},
	PatientSize:               {PatientSize, []vr.VR{vr.DecimalString}, "Patient's Size", "PatientSize", "1", false},
	PatientWeight:             {PatientWeight, []vr.VR{vr.DecimalString}, "Patient's Weight", "PatientWeight", "1", false},
	MilitaryRank:              {MilitaryRank, []vr.VR{vr.LongString}, "Military Rank", "MilitaryRank", "1", false},
	BranchOfService:           {BranchOfService, []vr.VR{vr.LongString}, "Branch of Service", "BranchOfService", "1", false},
	PatientMotherBirthName:    {PatientMotherBirthName, []vr.VR{vr.PersonName}, "Patient's Mother's Birth Name", "PatientMotherBirthName", "1", false},
	MedicalRecordLocator:      {MedicalRecordLocator, []vr.VR{vr.LongString}, "Medical Record Locator", "MedicalRecordLocator", "1", true},
	CountryOfResidence:        {CountryOfResidence, []vr.VR{vr.LongString}, "Country of Residence", "CountryOfResidence", "1", false},
	RegionOfResidence:         {RegionOfResidence, []vr.VR{vr.LongString}, "Region of Residence", "RegionOfResidence", "1", false},
	EthnicGroup:               {EthnicGroup, []vr.VR{vr.ShortString}, "Ethnic Group", "EthnicGroup", "1", false},
	Occupation:                {Occupation, []vr.VR{vr.ShortString}, "Occupation", "Occupation", "1", false},
	PatientSpeciesDescription: {PatientSpeciesDescription, []vr.VR{vr.LongString}, "Patient Species Description", "PatientSpeciesDescription", "1", false},
	PatientSexNeutered:        {PatientSexNeutered, []vr.VR{vr.CodeString}, "Patient's Sex Neutered", "PatientSexNeutered", "1", false},
	PatientBreedDescription:   {PatientBreedDescription, []vr.VR{vr.LongString}, "Patient Breed Description", "PatientBreedDescription", "1", false},
	ResponsiblePerson:         {ResponsiblePerson, []vr.VR{vr.PersonName}, "Responsible Person", "ResponsiblePerson", "1", false},
	ResponsibleOrganization:   {ResponsibleOrganization, []vr.VR{vr.LongString}, "Responsible Organization", "ResponsibleOrganization", "1", false},
	AdditionalPatientHistory:  {AdditionalPatientHistory, []vr.VR{vr.LongText}, "Additional Patient History", "AdditionalPatientHistory", "1", false},
	PatientComments:           {PatientComments, []vr.VR{vr.LongText}, "Patient Comments", "PatientComments", "1", false},
	PatientIdentityRemoved:    {PatientIdentityRemoved, []vr.VR{vr.CodeString}, "Patient Identity Removed", "PatientIdentityRemoved", "1", false},
	DeidentificationMethod:            {DeidentificationMethod, []vr.VR{vr.LongString}, "De-identification Method", "DeidentificationMethod", "1-n", false},
	DeidentificationMethodCodeSequence: {DeidentificationMethodCodeSequence, []vr.VR{vr.SequenceOfItems}, "De-identification Method Code Sequence", "DeidentificationMethodCodeSequence", "1", false},

	RequestingPhysician:               {RequestingPhysician, []vr.VR{vr.PersonName}, "Requesting Physician", "RequestingPhysician", "1", false},
	RequestingService:                 {RequestingService, []vr.VR{vr.LongString}, "Requesting Service", "RequestingService", "1", false},
	RequestedProcedureDescription:     {RequestedProcedureDescription, []vr.VR{vr.LongString}, "Requested Procedure Description", "RequestedProcedureDescription", "1", false},
	CurrentPatientLocation:            {CurrentPatientLocation, []vr.VR{vr.LongString}, "Current Patient Location", "CurrentPatientLocation", "1", false},
	PatientInstitutionResidence:       {PatientInstitutionResidence, []vr.VR{vr.LongString}, "Patient's Institution Residence", "PatientInstitutionResidence", "1", false},
	PerformedProcedureStepStartDate:   {PerformedProcedureStepStartDate, []vr.VR{vr.Date}, "Performed Procedure Step Start Date", "PerformedProcedureStepStartDate", "1", false},
	PerformedProcedureStepStartTime:   {PerformedProcedureStepStartTime, []vr.VR{vr.Time}, "Performed Procedure Step Start Time", "PerformedProcedureStepStartTime", "1", false},
	PerformedProcedureStepEndDate:     {PerformedProcedureStepEndDate, []vr.VR{vr.Date}, "Performed Procedure Step End Date", "PerformedProcedureStepEndDate", "1", false},
	PerformedProcedureStepEndTime:     {PerformedProcedureStepEndTime, []vr.VR{vr.Time}, "Performed Procedure Step End Time", "PerformedProcedureStepEndTime", "1", false},
	PerformedProcedureStepDescription: {PerformedProcedureStepDescription, []vr.VR{vr.LongString}, "Performed Procedure Step Description", "PerformedProcedureStepDescription", "1", false},

	PersonName:             {PersonName, []vr.VR{vr.PersonName}, "Person Name", "PersonName", "1", false},
	PersonAddress:          {PersonAddress, []vr.VR{vr.ShortText}, "Person Address", "PersonAddress", "1", false},
	PersonTelephoneNumbers: {PersonTelephoneNumbers, []vr.VR{vr.LongString}, "Person Telephone Numbers", "PersonTelephoneNumbers", "1-n", false},
	TextString:             {TextString, []vr.VR{vr.ShortText}, "Text String", "TextString", "1", false},
	TextComments:           {TextComments, []vr.VR{vr.LongText}, "Text Comments", "TextComments", "1", false},
	FrameComments:          {FrameComments, []vr.VR{vr.LongText}, "Frame Comments", "FrameComments", "1", false},

	ModifiedAttributesSequence: {ModifiedAttributesSequence, []vr.VR{vr.SequenceOfItems}, "Modified Attributes Sequence", "ModifiedAttributesSequence", "1", false},
	OriginalAttributesSequence: {OriginalAttributesSequence, []vr.VR{vr.SequenceOfItems}, "Original Attributes Sequence", "OriginalAttributesSequence", "1", false},
	DigitalSignaturesSequence:  {DigitalSignaturesSequence, []vr.VR{vr.SequenceOfItems}, "Digital Signatures Sequence", "DigitalSignaturesSequence", "1", false},
	ReferencedStudySequence:    {ReferencedStudySequence, []vr.VR{vr.SequenceOfItems}, "Referenced Study Sequence", "ReferencedStudySequence", "1", false},

	SamplesPerPixel:           {SamplesPerPixel, []vr.VR{vr.UnsignedShort}, "Samples per Pixel", "SamplesPerPixel", "1", false},
	PhotometricInterpretation: {PhotometricInterpretation, []vr.VR{vr.CodeString}, "Photometric Interpretation", "PhotometricInterpretation", "1", false},
	PlanarConfiguration:       {PlanarConfiguration, []vr.VR{vr.UnsignedShort}, "Planar Configuration", "PlanarConfiguration", "1", false},
	NumberOfFrames:            {NumberOfFrames, []vr.VR{vr.IntegerString}, "Number of Frames", "NumberOfFrames", "1", false},
	Rows:                      {Rows, []vr.VR{vr.UnsignedShort}, "Rows", "Rows", "1", false},
	Columns:                   {Columns, []vr.VR{vr.UnsignedShort}, "Columns", "Columns", "1", false},
	BitsAllocated:             {BitsAllocated, []vr.VR{vr.UnsignedShort}, "Bits Allocated", "BitsAllocated", "1", false},
	BitsStored:                {BitsStored, []vr.VR{vr.UnsignedShort}, "Bits Stored", "BitsStored", "1", false},
	HighBit:                   {HighBit, []vr.VR{vr.UnsignedShort}, "High Bit", "HighBit", "1", false},
	PixelRepresentation:       {PixelRepresentation, []vr.VR{vr.UnsignedShort}, "Pixel Representation", "PixelRepresentation", "1", false},
	BurnedInAnnotation:        {BurnedInAnnotation, []vr.VR{vr.CodeString}, "Burned In Annotation", "BurnedInAnnotation", "1", false},
	PixelData:                 {PixelData, []vr.VR{vr.OtherWord, vr.OtherByte}, "Pixel Data", "PixelData", "1", false},
	ExtendedOffsetTable:        {ExtendedOffsetTable, []vr.VR{vr.OtherVeryLong}, "Extended Offset Table", "ExtendedOffsetTable", "1", false},
	ExtendedOffsetTableLengths: {ExtendedOffsetTableLengths, []vr.VR{vr.OtherVeryLong}, "Extended Offset Table Lengths", "ExtendedOffsetTableLengths", "1", false},

	LongitudinalTemporalInformationModified: {LongitudinalTemporalInformationModified, []vr.VR{vr.CodeString}, "Longitudinal Temporal Information Modified", "LongitudinalTemporalInformationModified", "1", false},
	CodeValue:               {CodeValue, []vr.VR{vr.ShortString}, "Code Value", "CodeValue", "1", false},
	CodingSchemeDesignator:  {CodingSchemeDesignator, []vr.VR{vr.ShortString}, "Coding Scheme Designator", "CodingSchemeDesignator", "1", false},
	CodeMeaning:             {CodeMeaning, []vr.VR{vr.LongString}, "Code Meaning", "CodeMeaning", "1", false},
}
