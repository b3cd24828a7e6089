package document

import (
	"bytes"
	"sort"

	"github.com/goccy/go-json"

	"booking-intake/internal/pkg/errs"
)

const (
	KeyContacts     = "contacts"
	KeyBookings     = "bookings"
	KeyTestimonials = "testimonials"
	KeyServices     = "services"
)

var collectionKeys = []string{KeyContacts, KeyBookings, KeyTestimonials, KeyServices}

// Document is the single persisted root holding every collection.
// Top-level keys other than the four collections are kept verbatim in Extra.
type Document struct {
	Contacts     []Record
	Bookings     []Record
	Testimonials []Record
	Services     []Record
	Extra        map[string]json.RawMessage
}

func New() *Document {
	return &Document{
		Contacts:     []Record{},
		Bookings:     []Record{},
		Testimonials: []Record{},
		Services:     []Record{},
	}
}

func (d *Document) collection(key string) *[]Record {
	switch key {
	case KeyContacts:
		return &d.Contacts
	case KeyBookings:
		return &d.Bookings
	case KeyTestimonials:
		return &d.Testimonials
	case KeyServices:
		return &d.Services
	}
	return nil
}

// Normalize replaces missing collections with empty ones.
func (d *Document) Normalize() {
	for _, key := range collectionKeys {
		if c := d.collection(key); *c == nil {
			*c = []Record{}
		}
	}
}

func (d Document) MarshalJSON() ([]byte, error) {
	d.Normalize()

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range collectionKeys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, key, *d.collection(key)); err != nil {
			return nil, err
		}
	}

	extraKeys := make([]string, 0, len(d.Extra))
	for k := range d.Extra {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		buf.WriteByte(',')
		if err := writeMember(&buf, key, d.Extra[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeMember appends "key":value without HTML escaping, so <, > and & stay readable in the file.
func writeMember(buf *bytes.Buffer, key string, value any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return errs.Wrapf(err, "encode key %q", key)
	}
	trimNewline(buf)
	buf.WriteByte(':')
	if err := enc.Encode(value); err != nil {
		return errs.Wrapf(err, "encode %q", key)
	}
	trimNewline(buf)
	return nil
}

func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errs.Wrap(err, "decode document")
	}

	*d = Document{}
	for _, key := range collectionKeys {
		member, ok := raw[key]
		if !ok {
			continue
		}
		delete(raw, key)

		var records []Record
		dec := json.NewDecoder(bytes.NewReader(member))
		dec.UseNumber()
		if err := dec.Decode(&records); err != nil {
			return errs.Wrapf(err, "decode %q", key)
		}
		*d.collection(key) = records
	}
	if len(raw) > 0 {
		d.Extra = raw
	}
	d.Normalize()
	return nil
}
