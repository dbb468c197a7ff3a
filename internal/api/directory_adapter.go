package api

import "github.com/skillwisehq/skillswap/internal/services"

type directoryStoreAdapter struct {
	store Store
}

func newDirectoryStoreAdapter(store Store) services.DirectoryStore {
	return &directoryStoreAdapter{store: store}
}

func (a *directoryStoreAdapter) ListAccounts() ([]*services.Account, error) {
	return toServiceAccounts(a.store.ListAccounts()), nil
}

func (a *directoryStoreAdapter) ListAnnouncements() ([]*services.Announcement, error) {
	return toServiceAnnouncements(a.store.ListAnnouncements()), nil
}

var _ services.DirectoryStore = (*directoryStoreAdapter)(nil)
