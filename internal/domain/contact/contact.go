package contact

import "booking-intake/internal/domain/document"

// Prepare assigns an id to a new contact when the submission carries none.
func Prepare(r document.Record, id func() string) {
	if r.ID() == "" {
		r[document.FieldID] = id()
	}
}

// IndexForDeletion resolves ident to a contact position.
// An id match wins; records predating id assignment are matched by timestamp.
func IndexForDeletion(contacts []document.Record, ident string) int {
	if ident == "" {
		return -1
	}
	if i := document.IndexOf(contacts, ident); i >= 0 {
		return i
	}
	for i, c := range contacts {
		if c.ID() == "" && c.Timestamp() == ident {
			return i
		}
	}
	return -1
}
