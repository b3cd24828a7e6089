//go:build unit

package queries_test

import (
	"context"
	"testing"

	"booking-intake/internal/domain/document"
	"booking-intake/internal/usecase/queries"
	queriesmock "booking-intake/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleDocument() *document.Document {
	doc := document.New()
	doc.Contacts = []document.Record{{"id": "c1"}}
	doc.Bookings = []document.Record{{"id": "b1"}, {"id": "b2"}}
	doc.Testimonials = []document.Record{{"quote": "great"}}
	doc.Services = []document.Record{{"name": "Private lesson"}}
	return doc
}

func TestGetDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("public full document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockDocumentReader(ctrl)
		reader.EXPECT().Load(gomock.Any()).Return(sampleDocument())

		doc, err := queries.NewDocumentQueries(reader, true).GetDocument(ctx)
		require.NoError(t, err)
		assert.Len(t, doc.Contacts, 1)
		assert.Len(t, doc.Bookings, 2)
	})

	t.Run("redacted personal data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockDocumentReader(ctrl)
		reader.EXPECT().Load(gomock.Any()).Return(sampleDocument())

		doc, err := queries.NewDocumentQueries(reader, false).GetDocument(ctx)
		require.NoError(t, err)
		assert.NotNil(t, doc.Contacts)
		assert.Empty(t, doc.Contacts)
		assert.Empty(t, doc.Bookings)
		assert.Len(t, doc.Testimonials, 1)
		assert.Len(t, doc.Services, 1)
	})
}

func TestGetAdminOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockDocumentReader(ctrl)
	reader.EXPECT().Load(gomock.Any()).Return(sampleDocument())

	// redaction only applies to the public endpoint
	overview, err := queries.NewDocumentQueries(reader, false).GetAdminOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalBookings)
	assert.Equal(t, 1, overview.TotalContacts)
	assert.Equal(t, "b2", overview.Bookings[1].ID())
}
