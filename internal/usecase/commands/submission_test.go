//go:build unit

package commands_test

import (
	"context"
	"testing"

	"booking-intake/internal/domain/document"
	"booking-intake/internal/infra/filestore"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase/commands"
	"booking-intake/tests/common/builder"
	"booking-intake/tests/common/testutil"
	commandsmock "booking-intake/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubmissionCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *filestore.Store
	cmds  commands.SubmissionCommands
}

func (s *SubmissionCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newTestStore(s.T())
	s.cmds = commands.NewSubmissionCommands(s.store, sequentialIDs("id"), newClock(), testutil.DiscardLogger())
}

func TestSubmissionCommandsSuite(t *testing.T) {
	suite.Run(t, new(SubmissionCommandsTestSuite))
}

func (s *SubmissionCommandsTestSuite) TestContact() {
	result, err := s.cmds.Submit(s.ctx, builder.NewContactBuilder().BuildSubmission())
	s.Require().NoError(err)
	s.Equal(document.KeyContacts, result.Collection)

	doc := s.store.Load(s.ctx)
	s.Require().Len(doc.Contacts, 1)
	got := doc.Contacts[0]
	s.Equal("id-1", got.ID())
	s.Equal("2024-05-01T09:00:00.000000", got.Timestamp())
	s.Equal("Do you teach beginners?", got["message"])
	s.Empty(doc.Bookings)
}

func (s *SubmissionCommandsTestSuite) TestContactKeepsClientTimestampAndID() {
	rec := builder.NewContactBuilder().With(func(b *builder.ContactBuilder) {
		b.ID = "client-id"
		b.Timestamp = "2023-12-31T23:59:59"
	}).BuildSubmission()

	_, err := s.cmds.Submit(s.ctx, rec)
	s.Require().NoError(err)

	got := s.store.Load(s.ctx).Contacts[0]
	s.Equal("client-id", got.ID())
	s.Equal("2023-12-31T23:59:59", got.Timestamp())
}

func (s *SubmissionCommandsTestSuite) TestExplicitNullTimestampIsKept() {
	rec := builder.NewContactBuilder().BuildSubmission()
	rec["timestamp"] = nil

	_, err := s.cmds.Submit(s.ctx, rec)
	s.Require().NoError(err)

	got := s.store.Load(s.ctx).Contacts[0]
	s.Contains(got, "timestamp")
	s.Nil(got["timestamp"])
}

func (s *SubmissionCommandsTestSuite) TestBookingIsStoredPending() {
	rec := builder.NewBookingBuilder().BuildSubmission()

	result, err := s.cmds.Submit(s.ctx, rec)
	s.Require().NoError(err)
	s.Equal(document.KeyBookings, result.Collection)

	doc := s.store.Load(s.ctx)
	s.Require().Len(doc.Bookings, 1)

	want := builder.NewBookingBuilder().BuildSubmission()
	want["id"] = "id-1"
	want["status"] = "pending"
	want["timestamp"] = "2024-05-01T09:00:00.000000"
	want["statusUpdatedAt"] = "2024-05-01T09:00:00.000000"
	if diff := cmp.Diff(want, doc.Bookings[0]); diff != "" {
		s.T().Errorf("stored booking mismatch (-want +got):\n%s", diff)
	}
}

func (s *SubmissionCommandsTestSuite) TestBookingSlotConflicts() {
	cases := []struct {
		name         string
		existing     string
		wantConflict bool
	}{
		{name: "pending holds the slot", existing: "pending", wantConflict: true},
		{name: "confirmed holds the slot", existing: "confirmed", wantConflict: true},
		{name: "missing status counts as pending", existing: "", wantConflict: true},
		{name: "rejected frees the slot", existing: "rejected", wantConflict: false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			seed(s.T(), s.store, func(doc *document.Document) {
				existing := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.ID = "first"
				}).BuildSubmission()
				if tc.existing != "" {
					existing["status"] = tc.existing
				}
				doc.Bookings = append(doc.Bookings, existing)
			})
			before := s.store.Load(s.ctx)

			_, err := s.cmds.Submit(s.ctx, builder.NewBookingBuilder().BuildSubmission())

			after := s.store.Load(s.ctx)
			if tc.wantConflict {
				s.Require().Error(err)
				s.True(errs.Is(err, errs.ErrConflict))
				s.True(errs.Is(err, commands.ErrSlotTaken))
				if diff := cmp.Diff(before, after); diff != "" {
					s.T().Errorf("store changed on conflict (-before +after):\n%s", diff)
				}
				return
			}
			s.Require().NoError(err)
			s.Len(after.Bookings, 2)
		})
	}
}

func (s *SubmissionCommandsTestSuite) TestBookingWithoutFullSlotSkipsConflictCheck() {
	seed(s.T(), s.store, func(doc *document.Document) {
		doc.Bookings = append(doc.Bookings, builder.NewBookingBuilder().BuildStored())
	})

	rec := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.PreferredTime = "" }).BuildSubmission()
	_, err := s.cmds.Submit(s.ctx, rec)

	s.Require().NoError(err)
	s.Len(s.store.Load(s.ctx).Bookings, 2)
}

func (s *SubmissionCommandsTestSuite) TestBookingStatusNormalised() {
	valid := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = "Confirmed" }).BuildSubmission()
	_, err := s.cmds.Submit(s.ctx, valid)
	s.Require().NoError(err)

	bogus := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.PreferredTime = "11:00"
		b.Status = "vip"
	}).BuildSubmission()
	_, err = s.cmds.Submit(s.ctx, bogus)
	s.Require().NoError(err)

	bookings := s.store.Load(s.ctx).Bookings
	s.Require().Len(bookings, 2)
	s.Equal("confirmed", bookings[0]["status"])
	s.Equal("pending", bookings[1]["status"])
}

func (s *SubmissionCommandsTestSuite) TestUnknownTypeAcceptedButNotStored() {
	for _, rec := range []document.Record{
		{"type": "newsletter", "email": "a@b.c"},
		{"email": "no-type@b.c"},
	} {
		result, err := s.cmds.Submit(s.ctx, rec)
		s.Require().NoError(err)
		s.Empty(result.Collection)
	}

	doc := s.store.Load(s.ctx)
	s.Empty(doc.Contacts)
	s.Empty(doc.Bookings)
}

func (s *SubmissionCommandsTestSuite) TestNilRecordIsValidationError() {
	_, err := s.cmds.Submit(s.ctx, nil)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *SubmissionCommandsTestSuite) TestStorageFailure() {
	ctrl := gomock.NewController(s.T())
	store := commandsmock.NewMockDocumentStore(ctrl)
	store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errs.New("disk full"))

	cmds := commands.NewSubmissionCommands(store, sequentialIDs("id"), newClock(), testutil.DiscardLogger())
	_, err := cmds.Submit(s.ctx, builder.NewContactBuilder().BuildSubmission())

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrStorage))
	s.True(errs.Is(err, commands.ErrSaveFailed))
}
