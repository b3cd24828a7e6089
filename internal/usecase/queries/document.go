package queries

import (
	"context"

	"booking-intake/internal/domain/document"
)

//go:generate mockgen -source=document.go -destination=../../../tests/mock/queries/document.go -package=queriesmock

type DocumentReader interface {
	Load(ctx context.Context) *document.Document
}

type AdminOverview struct {
	Bookings      []document.Record
	Contacts      []document.Record
	TotalBookings int
	TotalContacts int
}

type DocumentQueries interface {
	// GetDocument returns the stored document for the public data endpoint.
	GetDocument(ctx context.Context) (*document.Document, error)
	GetAdminOverview(ctx context.Context) (*AdminOverview, error)
}

type documentQueriesImpl struct {
	reader     DocumentReader
	publicFull bool
}

// NewDocumentQueries builds the read side. With publicFull false the public document
// carries empty contacts and bookings so personal data stays behind the admin login.
func NewDocumentQueries(reader DocumentReader, publicFull bool) DocumentQueries {
	return &documentQueriesImpl{
		reader:     reader,
		publicFull: publicFull,
	}
}

func (q *documentQueriesImpl) GetDocument(ctx context.Context) (*document.Document, error) {
	doc := q.reader.Load(ctx)
	if !q.publicFull {
		doc.Contacts = []document.Record{}
		doc.Bookings = []document.Record{}
	}
	return doc, nil
}

func (q *documentQueriesImpl) GetAdminOverview(ctx context.Context) (*AdminOverview, error) {
	doc := q.reader.Load(ctx)
	return &AdminOverview{
		Bookings:      doc.Bookings,
		Contacts:      doc.Contacts,
		TotalBookings: len(doc.Bookings),
		TotalContacts: len(doc.Contacts),
	}, nil
}
