package api

import "github.com/skillwisehq/skillswap/internal/services"

type profileStoreAdapter struct {
	store Store
}

func newProfileStoreAdapter(store Store) services.ProfileStore {
	return &profileStoreAdapter{store: store}
}

func (a *profileStoreAdapter) FindAccountByEmail(email string) (*services.Account, error) {
	return toServiceAccount(a.store.FindAccountByEmail(email)), nil
}

func (a *profileStoreAdapter) GetAccount(id string) (*services.Account, error) {
	return toServiceAccount(a.store.GetAccount(id)), nil
}

func (a *profileStoreAdapter) UpdateAccount(acc *services.Account) error {
	if acc == nil {
		return services.NewInvalidError("account required")
	}
	if !a.store.UpdateAccount(fromServiceAccount(acc)) {
		return services.NewNotFoundError("account not found")
	}
	return nil
}

func (a *profileStoreAdapter) ListFeedback(accountID string) ([]*services.Feedback, error) {
	return toServiceFeedbackList(a.store.ListFeedback(accountID)), nil
}

var _ services.ProfileStore = (*profileStoreAdapter)(nil)
