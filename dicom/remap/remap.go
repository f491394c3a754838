// Package remap implements the Identifier Remap Store: a bidirectional
// mapping between original DICOM unique identifiers and synthetic
// replacements used by the de-identification engine's remap-identifier
// action.
package remap

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// StandardUIDPrefix is the well-known DICOM standards prefix. Identifiers
// beginning with this prefix (transfer syntaxes, SOP classes, and the like)
// are never remapped.
const StandardUIDPrefix = "1.2.840.10008."

// syntheticUIDPrefix roots every generated synthetic identifier in the
// "2.25" UUID-derived UID arc reserved by the DICOM standard for
// locally-generated UIDs (PS3.5 Annex B.2).
const syntheticUIDPrefix = "2.25."

// Mapping is one recorded original/synthetic identifier pair.
type Mapping struct {
	OriginalUID string
	RemappedUID string
	Scope       string
	CreatedAt   time.Time
}

// Store is the Identifier Remap Store interface. Implementations must be
// safe for concurrent use.
//
// GetOrCreate is idempotent on original: the first call for a given
// original, in any scope, allocates and records a new synthetic identifier;
// every subsequent call for the same original returns that same synthetic,
// regardless of the scope argument.
type Store interface {
	GetOrCreate(original, scope string) (string, error)
	TryGetSynthetic(original string) (string, bool)
	TryGetOriginal(synthetic string) (string, bool)
	Count() (int, error)
	Clear() error
	BulkInsert(mappings []Mapping) error
	Export(w writer) error
	AddPreserved(ids ...string)
}

// writer is the subset of io.Writer Export needs, named locally to avoid
// importing io solely for a function parameter type.
type writer interface {
	Write(p []byte) (n int, err error)
}

// Options configures synthetic identifier generation.
type Options struct {
	// DeterministicSeed, when non-empty, makes GetOrCreate generate the
	// same synthetic identifier for the same original UID across runs,
	// by hashing Seed+original instead of drawing fresh randomness. Used
	// for reproducible test fixtures and audit replay.
	DeterministicSeed string
}

// IsStandardUID reports whether s begins with the DICOM standards prefix
// and must therefore never be remapped.
func IsStandardUID(s string) bool {
	return len(s) >= len(StandardUIDPrefix) && s[:len(StandardUIDPrefix)] == StandardUIDPrefix
}

// generateSynthetic derives a new "2.25."-prefixed synthetic UID. With a
// deterministic seed configured, the 128-bit payload is SHA-256(seed ||
// original) truncated to 16 bytes instead of a random UUID, so the same
// (seed, original) pair always yields the same synthetic identifier.
func generateSynthetic(original string, opts Options) string {
	var payload [16]byte
	if opts.DeterministicSeed != "" {
		sum := sha256.Sum256([]byte(opts.DeterministicSeed + original))
		copy(payload[:], sum[:16])
	} else {
		copy(payload[:], uuid.New()[:])
	}

	n := new(big.Int).SetBytes(payload[:])
	synthetic := syntheticUIDPrefix + n.String()
	if len(synthetic) > 64 {
		// A 128-bit integer's decimal form cannot exceed 39 digits, so
		// this only trips for a pathologically long prefix; truncate the
		// numeric tail rather than emit an over-length UID.
		synthetic = synthetic[:64]
	}
	return synthetic
}

func validateMapping(m Mapping) error {
	if m.OriginalUID == "" || m.RemappedUID == "" {
		return fmt.Errorf("remap: mapping requires both original and remapped UIDs")
	}
	return nil
}

// exportDocument is the deterministic JSON shape Export writes: root fields
// exportedAt, mappingCount, and an ascending-by-createdAt mappings array.
type exportDocument struct {
	ExportedAt   string            `json:"exportedAt"`
	MappingCount int               `json:"mappingCount"`
	Mappings     []exportedMapping `json:"mappings"`
}

type exportedMapping struct {
	OriginalUID string `json:"originalUid"`
	RemappedUID string `json:"remappedUid"`
	Scope       string `json:"scope"`
	CreatedAt   string `json:"createdAt"`
}

func encodeExport(w writer, rows []exportedMapping) error {
	doc := exportDocument{
		ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		MappingCount: len(rows),
		Mappings:     rows,
	}
	return json.NewEncoder(w).Encode(doc)
}
