package services

import "time"

type FeedbackStore interface {
	FindAccountByEmail(email string) (*Account, error)
	AddFeedback(accountID string, f *Feedback) error
	ListFeedback(accountID string) ([]*Feedback, error)
}

type FeedbackService struct {
	store FeedbackStore
	now   func() time.Time
}

func NewFeedbackService(store FeedbackStore) *FeedbackService {
	return &FeedbackService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Submit appends a rating to the target's ledger. Validation runs fully
// before the write: an out-of-range rating or unknown target stores nothing.
// The ledger does not stop an account reviewing itself.
func (s *FeedbackService) Submit(sess *Session, targetEmail string, rating int, comment string) (*Feedback, error) {
	if sess == nil {
		return nil, NewNotAuthenticatedError("login required")
	}
	target, err := s.store.FindAccountByEmail(targetEmail)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, NewNotFoundError("target account not found")
	}
	if rating < 1 || rating > 5 {
		return nil, NewInvalidRatingError("rating must be between 1 and 5")
	}
	f := &Feedback{
		FromEmail: sess.Email,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	if err := s.store.AddFeedback(target.ID, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Recent returns the last n ledger entries for the account, oldest first.
func (s *FeedbackService) Recent(email string, n int) ([]*Feedback, error) {
	a, err := s.store.FindAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewNotFoundError("account not found")
	}
	fb, err := s.store.ListFeedback(a.ID)
	if err != nil {
		return nil, err
	}
	return lastN(fb, n), nil
}

// Average is the mean of all ratings for the account, 0.0 when the ledger is
// empty.
func (s *FeedbackService) Average(email string) (float64, error) {
	a, err := s.store.FindAccountByEmail(email)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, NewNotFoundError("account not found")
	}
	fb, err := s.store.ListFeedback(a.ID)
	if err != nil {
		return 0, err
	}
	return averageRating(fb), nil
}

func averageRating(fb []*Feedback) float64 {
	if len(fb) == 0 {
		return 0.0
	}
	sum := 0
	for _, f := range fb {
		sum += f.Rating
	}
	return float64(sum) / float64(len(fb))
}

func lastN(fb []*Feedback, n int) []*Feedback {
	if n <= 0 {
		return []*Feedback{}
	}
	if n >= len(fb) {
		return append([]*Feedback(nil), fb...)
	}
	return append([]*Feedback(nil), fb[len(fb)-n:]...)
}
