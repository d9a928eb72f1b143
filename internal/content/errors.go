package content

import "fmt"

// InvalidDocumentError reports the first missing or invalid required field
// of a document. Field ordering follows the validation priority: title,
// date, layout.
type InvalidDocumentError struct {
	Source string
	Field  string
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document %s: field %q: %s", e.Source, e.Field, e.Reason)
}
