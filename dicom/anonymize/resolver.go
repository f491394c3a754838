package anonymize

import (
	"github.com/medvault/dicomkit/dicom/vr"
)

// ConformanceClass is an attribute's DICOM Information Object Definition
// requirement class, used by the Action Resolver to pick a concrete
// operation for a compound conditional profile code.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part03.html#sect_C.2
type ConformanceClass int

const (
	// Class1 attributes are required and must be non-empty.
	Class1 ConformanceClass = iota
	// Class1C attributes are conditionally required and must be non-empty
	// when present.
	Class1C
	// Class2 attributes are required but may be empty.
	Class2
	// Class2C attributes are conditionally required and may be empty.
	Class2C
	// Class3 attributes are optional.
	Class3
)

// ResolvedOp is the concrete operation the Action Resolver produces from a
// ProfileAction plus the conformance class, VR, and emptiness of the
// element under consideration.
type ResolvedOp int

const (
	OpKeep ResolvedOp = iota
	OpRemove
	OpReplaceEmpty
	OpReplaceDummy
	OpClean
	OpRemapIdentifier
)

// compoundTable implements the spec's compound-code-to-conformance-class
// resolution table (§4.10). Each row picks the operation for
// Class1/Class1C, Class2/Class2C, and Class3 respectively.
var compoundTable = map[ProfileAction][3]ResolvedOp{
	PAZOrD:      {OpReplaceDummy, OpReplaceEmpty, OpReplaceEmpty},
	PAXOrZ:      {OpRemove, OpReplaceEmpty, OpRemove},
	PAXOrD:      {OpReplaceDummy, OpRemove, OpRemove},
	PAXOrZOrD:   {OpReplaceDummy, OpReplaceEmpty, OpRemove},
	PAXOrZOrUID: {OpRemapIdentifier, OpReplaceEmpty, OpRemove},
}

func classColumn(c ConformanceClass) int {
	switch c {
	case Class1, Class1C:
		return 0
	case Class2, Class2C:
		return 1
	default:
		return 2
	}
}

// Resolve maps a profile action to a concrete operation given the
// attribute's conformance class, VR, and whether it currently has a value.
// It applies both post-rules from §4.10: a remap-identifier resolution
// against a non-UI VR downgrades to replace-with-dummy, and a
// replace-with-empty resolution against an already-empty value downgrades
// to keep.
func Resolve(action ProfileAction, class ConformanceClass, v vr.VR, hasValue bool) ResolvedOp {
	op := resolveBase(action, class)

	if op == OpRemapIdentifier && v != vr.UniqueIdentifier {
		op = OpReplaceDummy
	}
	if op == OpReplaceEmpty && !hasValue {
		op = OpKeep
	}
	return op
}

func resolveBase(action ProfileAction, class ConformanceClass) ResolvedOp {
	if row, ok := compoundTable[action]; ok {
		return row[classColumn(class)]
	}

	switch action {
	case PAKeep:
		return OpKeep
	case PARemove:
		return OpRemove
	case PAReplaceEmpty:
		return OpReplaceEmpty
	case PAReplaceDummy:
		return OpReplaceDummy
	case PAClean:
		return OpClean
	case PARemapID:
		return OpRemapIdentifier
	default:
		return OpKeep
	}
}
