package api

import "github.com/skillwisehq/skillswap/internal/services"

type adminStoreAdapter struct {
	store Store
}

func newAdminStoreAdapter(store Store) services.AdminStore {
	return &adminStoreAdapter{store: store}
}

func (a *adminStoreAdapter) FindAccountByEmail(email string) (*services.Account, error) {
	return toServiceAccount(a.store.FindAccountByEmail(email)), nil
}

func (a *adminStoreAdapter) UpdateAccount(acc *services.Account) error {
	if acc == nil {
		return services.NewInvalidError("account required")
	}
	if !a.store.UpdateAccount(fromServiceAccount(acc)) {
		return services.NewNotFoundError("account not found")
	}
	return nil
}

func (a *adminStoreAdapter) ListAccounts() ([]*services.Account, error) {
	return toServiceAccounts(a.store.ListAccounts()), nil
}

func (a *adminStoreAdapter) ListRequests() ([]*services.SwapRequest, error) {
	return toServiceRequests(a.store.ListRequests()), nil
}

func (a *adminStoreAdapter) AddAnnouncement(an *services.Announcement) error {
	if an == nil {
		return services.NewInvalidError("announcement required")
	}
	a.store.AddAnnouncement(&Announcement{Message: an.Message, CreatedAt: an.CreatedAt})
	return nil
}

func (a *adminStoreAdapter) CountFeedback() (int, error) {
	return a.store.CountFeedback(), nil
}

var _ services.AdminStore = (*adminStoreAdapter)(nil)
