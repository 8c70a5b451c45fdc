package inventory

import (
	"fmt"
	"strings"
)

// TransientRecordError reports a single record that could not be read. The
// record is skipped; the rest of the batch is unaffected.
type TransientRecordError struct {
	RecordID   string
	RecordName string
	Err        error
}

func (e *TransientRecordError) Error() string {
	return fmt.Sprintf("run %s (%s): %v", e.RecordID, e.RecordName, e.Err)
}

func (e *TransientRecordError) Unwrap() error {
	return e.Err
}

// SpecExtractionError reports the first field of a specs blob that was
// missing or of the wrong type.
type SpecExtractionError struct {
	Path []string
	Err  error
}

func (e *SpecExtractionError) Error() string {
	return fmt.Sprintf("invalid specs at %s: %v", strings.Join(e.Path, "."), e.Err)
}

func (e *SpecExtractionError) Unwrap() error {
	return e.Err
}

// ServiceUnavailableError means the record listing itself failed. It is
// fatal for the refresh: no partial snapshot is produced.
type ServiceUnavailableError struct {
	Err error
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("record service unavailable: %v", e.Err)
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Err
}
