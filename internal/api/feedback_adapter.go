package api

import "github.com/skillwisehq/skillswap/internal/services"

type feedbackStoreAdapter struct {
	store Store
}

func newFeedbackStoreAdapter(store Store) services.FeedbackStore {
	return &feedbackStoreAdapter{store: store}
}

func (a *feedbackStoreAdapter) FindAccountByEmail(email string) (*services.Account, error) {
	return toServiceAccount(a.store.FindAccountByEmail(email)), nil
}

func (a *feedbackStoreAdapter) AddFeedback(accountID string, f *services.Feedback) error {
	if f == nil {
		return services.NewInvalidError("feedback required")
	}
	a.store.AddFeedback(accountID, &Feedback{FromEmail: f.FromEmail, Rating: f.Rating, Comment: f.Comment, CreatedAt: f.CreatedAt})
	return nil
}

func (a *feedbackStoreAdapter) ListFeedback(accountID string) ([]*services.Feedback, error) {
	return toServiceFeedbackList(a.store.ListFeedback(accountID)), nil
}

var _ services.FeedbackStore = (*feedbackStoreAdapter)(nil)
