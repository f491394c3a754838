package anonymize

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
	"time"

	"github.com/medvault/dicomkit/dicom/datetime"
)

// DateShiftStrategy selects how the Date Shifter transforms a date, time, or
// datetime value that the Action Resolver has routed to it (used for dates
// under RetainFullDates/RetainModifiedDates rather than plain removal).
type DateShiftStrategy int

const (
	// DateShiftNone passes the value through unchanged.
	DateShiftNone DateShiftStrategy = iota
	// DateShiftFixed applies the same configured offset to every subject.
	DateShiftFixed
	// DateShiftRandomPerSubject derives a pseudo-random, but stable, offset
	// for each subject key from a seed, so one subject's dates all shift by
	// the same amount while different subjects shift by different amounts.
	DateShiftRandomPerSubject
	// DateShiftRemoveTime shifts the date component (if any) by FixedOffset
	// and truncates times to midnight/zero.
	DateShiftRemoveTime
	// DateShiftRemove reports the value as having no usable shifted form;
	// the anonymizer then replaces the element's value with an empty one.
	DateShiftRemove
)

// DateShiftConfig configures a DateShifter.
type DateShiftConfig struct {
	Strategy DateShiftStrategy `validate:"oneof=0 1 2 3 4"`

	// FixedOffset is the offset applied under DateShiftFixed and
	// DateShiftRemoveTime.
	FixedOffset time.Duration

	// Seed derives per-subject offsets under DateShiftRandomPerSubject.
	Seed string

	// MaxRandomOffset bounds the magnitude of a derived per-subject offset;
	// defaults to 365 days if zero.
	MaxRandomOffset time.Duration `validate:"gte=0"`
}

// DateShifter implements the spec's per-subject date/time shifting: the same
// subject always receives the same offset, so interval relationships between
// a subject's studies are preserved even though the absolute dates are not.
type DateShifter struct {
	cfg DateShiftConfig

	mu      sync.Mutex
	offsets map[string]time.Duration
}

// NewDateShifter constructs a DateShifter from cfg, defaulting MaxRandomOffset
// to 365 days when unset.
func NewDateShifter(cfg DateShiftConfig) *DateShifter {
	if cfg.MaxRandomOffset == 0 {
		cfg.MaxRandomOffset = 365 * 24 * time.Hour
	}
	return &DateShifter{cfg: cfg, offsets: make(map[string]time.Duration)}
}

// offsetFor returns the offset to apply for subjectKey, deriving and caching
// a new one for DateShiftRandomPerSubject on first use.
func (s *DateShifter) offsetFor(subjectKey string) time.Duration {
	switch s.cfg.Strategy {
	case DateShiftFixed, DateShiftRemoveTime:
		return s.cfg.FixedOffset
	case DateShiftRandomPerSubject:
		s.mu.Lock()
		defer s.mu.Unlock()
		if off, ok := s.offsets[subjectKey]; ok {
			return off
		}
		off := derivePerSubjectOffset(s.cfg.Seed, subjectKey, s.cfg.MaxRandomOffset)
		s.offsets[subjectKey] = off
		return off
	default:
		return 0
	}
}

// derivePerSubjectOffset hashes seed+subjectKey into a signed offset bounded
// by max, so the same pair always produces the same offset without needing
// to persist anything beyond the (seed, subjectKey) inputs themselves.
func derivePerSubjectOffset(seed, subjectKey string, max time.Duration) time.Duration {
	sum := sha256.Sum256([]byte(seed + "|" + subjectKey))
	raw := int64(binary.BigEndian.Uint64(sum[:8]))
	if raw < 0 {
		raw = -raw
	}
	span := int64(max)
	if span == 0 {
		return 0
	}
	magnitude := raw % span
	if sum[8]%2 == 0 {
		return -time.Duration(magnitude)
	}
	return time.Duration(magnitude)
}

// ShiftDate shifts a DICOM DA-formatted date string for the given subject,
// preserving the source string's precision (year/month/day) on re-render.
func (s *DateShifter) ShiftDate(value, subjectKey string) (string, bool, error) {
	if s.cfg.Strategy == DateShiftNone {
		return value, true, nil
	}
	if s.cfg.Strategy == DateShiftRemove {
		return "", false, nil
	}

	d, err := datetime.ParseDate(value)
	if err != nil {
		return "", false, err
	}
	d.Time = d.Time.Add(s.offsetFor(subjectKey))
	return d.DCM(), true, nil
}

// ShiftTime shifts a DICOM TM-formatted time string. Under
// DateShiftRemoveTime it returns a zeroed time instead of applying an
// offset, matching the spec's "remove-time" strategy.
func (s *DateShifter) ShiftTime(value, subjectKey string) (string, bool, error) {
	switch s.cfg.Strategy {
	case DateShiftNone:
		return value, true, nil
	case DateShiftRemove:
		return "", false, nil
	case DateShiftRemoveTime:
		t, err := datetime.ParseTime(value)
		if err != nil {
			return "", false, err
		}
		zeroed := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
		t.Time = zeroed
		return t.DCM(), true, nil
	}

	t, err := datetime.ParseTime(value)
	if err != nil {
		return "", false, err
	}
	t.Time = t.Time.Add(s.offsetFor(subjectKey))
	return t.DCM(), true, nil
}

// ShiftDateTime shifts a DICOM DT-formatted combined date-time string.
func (s *DateShifter) ShiftDateTime(value, subjectKey string) (string, bool, error) {
	if s.cfg.Strategy == DateShiftNone {
		return value, true, nil
	}
	if s.cfg.Strategy == DateShiftRemove {
		return "", false, nil
	}

	dt, err := datetime.ParseDateTime(value)
	if err != nil {
		return "", false, err
	}
	dt.Time = dt.Time.Add(s.offsetFor(subjectKey))
	if s.cfg.Strategy == DateShiftRemoveTime {
		dt.Time = time.Date(dt.Time.Year(), dt.Time.Month(), dt.Time.Day(), 0, 0, 0, 0, dt.Time.Location())
	}
	return dt.DCM(), true, nil
}
