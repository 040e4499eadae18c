package review

import (
	"context"
	"testing"

	"salonbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 77
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetBySalon(ctx context.Context, salonID int64, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, salonID, limit, offset)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetAllBySalon(ctx context.Context, salonID int64) ([]domain.Review, error) {
	args := m.Called(ctx, salonID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) HasCompletedBookingForSalon(ctx context.Context, clientID, salonID int64) (bool, error) {
	args := m.Called(ctx, clientID, salonID)
	return args.Bool(0), args.Error(1)
}

type MockSalonRatingWriter struct {
	mock.Mock
}

func (m *MockSalonRatingWriter) UpdateRating(ctx context.Context, salonID int64, rating, reviewsCount int) error {
	args := m.Called(ctx, salonID, rating, reviewsCount)
	return args.Error(0)
}

func reviewsWithRatings(salonID int64, ratings ...int) []domain.Review {
	out := make([]domain.Review, 0, len(ratings))
	for i, r := range ratings {
		out = append(out, domain.Review{ID: int64(i + 1), SalonID: salonID, Rating: r})
	}
	return out
}

func TestCreate_RecomputesSalonRating(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockBookingGate)
	salons := new(MockSalonRatingWriter)
	svc := NewService(reviews, gate, salons)

	gate.On("HasCompletedBookingForSalon", mock.Anything, int64(42), int64(7)).Return(true, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	// Ratings 5, 4, 3 average to 4 after rounding.
	reviews.On("GetAllBySalon", mock.Anything, int64(7)).Return(reviewsWithRatings(7, 5, 4, 3), nil)
	salons.On("UpdateRating", mock.Anything, int64(7), 4, 3).Return(nil)

	rv, err := svc.Create(context.Background(), 42, CreateReviewRequest{SalonID: 7, Rating: 5})
	assert.NoError(t, err)
	assert.Equal(t, int64(77), rv.ID)
	salons.AssertExpectations(t)
}

func TestCreate_RequiresCompletedBooking(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockBookingGate)
	svc := NewService(reviews, gate, new(MockSalonRatingWriter))

	gate.On("HasCompletedBookingForSalon", mock.Anything, int64(42), int64(7)).Return(false, nil)

	_, err := svc.Create(context.Background(), 42, CreateReviewRequest{SalonID: 7, Rating: 5})
	assert.ErrorIs(t, err, ErrReviewNotAllowed)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RatingBounds(t *testing.T) {
	svc := NewService(new(MockReviewRepository), new(MockBookingGate), new(MockSalonRatingWriter))

	_, err := svc.Create(context.Background(), 42, CreateReviewRequest{SalonID: 7, Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = svc.Create(context.Background(), 42, CreateReviewRequest{SalonID: 7, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDelete_LastReviewResetsRating(t *testing.T) {
	reviews := new(MockReviewRepository)
	salons := new(MockSalonRatingWriter)
	svc := NewService(reviews, new(MockBookingGate), salons)

	reviews.On("GetByID", mock.Anything, int64(77)).
		Return(&domain.Review{ID: 77, SalonID: 7, ClientID: 42, Rating: 5}, nil)
	reviews.On("Delete", mock.Anything, int64(77)).Return(nil)
	reviews.On("GetAllBySalon", mock.Anything, int64(7)).Return([]domain.Review{}, nil)
	salons.On("UpdateRating", mock.Anything, int64(7), 0, 0).Return(nil)

	err := svc.Delete(context.Background(), 77, 42)
	assert.NoError(t, err)
	salons.AssertExpectations(t)
}

func TestUpdate_OnlyAuthorMayEdit(t *testing.T) {
	reviews := new(MockReviewRepository)
	svc := NewService(reviews, new(MockBookingGate), new(MockSalonRatingWriter))

	reviews.On("GetByID", mock.Anything, int64(77)).
		Return(&domain.Review{ID: 77, SalonID: 7, ClientID: 42, Rating: 5}, nil)

	_, err := svc.Update(context.Background(), 77, 99, UpdateReviewRequest{Rating: 1})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdate_NotFound(t *testing.T) {
	reviews := new(MockReviewRepository)
	svc := NewService(reviews, new(MockBookingGate), new(MockSalonRatingWriter))

	reviews.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), 404, 42, UpdateReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_RecomputesRating(t *testing.T) {
	reviews := new(MockReviewRepository)
	salons := new(MockSalonRatingWriter)
	svc := NewService(reviews, new(MockBookingGate), salons)

	reviews.On("GetByID", mock.Anything, int64(77)).
		Return(&domain.Review{ID: 77, SalonID: 7, ClientID: 42, Rating: 5}, nil)
	reviews.On("Update", mock.Anything, mock.Anything).Return(nil)
	// 2 and 3 average to 2.5 which rounds up to 3.
	reviews.On("GetAllBySalon", mock.Anything, int64(7)).Return(reviewsWithRatings(7, 2, 3), nil)
	salons.On("UpdateRating", mock.Anything, int64(7), 3, 2).Return(nil)

	rv, err := svc.Update(context.Background(), 77, 42, UpdateReviewRequest{Rating: 2, Comment: "meh"})
	assert.NoError(t, err)
	assert.Equal(t, 2, rv.Rating)
	salons.AssertExpectations(t)
}

func TestCreate_DuplicateReviewConflicts(t *testing.T) {
	reviews := new(MockReviewRepository)
	gate := new(MockBookingGate)
	svc := NewService(reviews, gate, new(MockSalonRatingWriter))

	gate.On("HasCompletedBookingForSalon", mock.Anything, int64(42), int64(7)).Return(true, nil)
	reviews.On("Create", mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	_, err := svc.Create(context.Background(), 42, CreateReviewRequest{SalonID: 7, Rating: 4})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict) // generic store error passes through

	uniqueErr := errUnique("duplicate key value violates unique constraint \"idx_one_review_per_client\"")
	reviews.On("Create", mock.Anything, mock.Anything).Return(uniqueErr).Once()

	_, err = svc.Create(context.Background(), 42, CreateReviewRequest{SalonID: 7, Rating: 4})
	assert.ErrorIs(t, err, ErrConflict)
}

type errUnique string

func (e errUnique) Error() string { return string(e) }
