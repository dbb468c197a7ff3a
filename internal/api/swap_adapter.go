package api

import (
	"time"

	"github.com/skillwisehq/skillswap/internal/services"
)

type swapStoreAdapter struct {
	store Store
}

func newSwapStoreAdapter(store Store) services.SwapStore {
	return &swapStoreAdapter{store: store}
}

func (a *swapStoreAdapter) GetAccount(id string) (*services.Account, error) {
	return toServiceAccount(a.store.GetAccount(id)), nil
}

func (a *swapStoreAdapter) FindAccountByEmail(email string) (*services.Account, error) {
	return toServiceAccount(a.store.FindAccountByEmail(email)), nil
}

func (a *swapStoreAdapter) AddRequest(r *services.SwapRequest) error {
	if r == nil {
		return services.NewInvalidError("request required")
	}
	a.store.AddRequest(fromServiceRequest(r))
	return nil
}

func (a *swapStoreAdapter) GetRequest(id string) (*services.SwapRequest, error) {
	return toServiceRequest(a.store.GetRequest(id)), nil
}

func (a *swapStoreAdapter) ResolveRequest(id string, status services.RequestStatus, at time.Time) (bool, error) {
	return a.store.ResolveRequest(id, string(status), at), nil
}

func (a *swapStoreAdapter) ListRequestsByRecipient(accountID string) ([]*services.SwapRequest, error) {
	return toServiceRequests(a.store.ListRequestsByRecipient(accountID)), nil
}

func (a *swapStoreAdapter) ListRequestsByRequester(accountID string) ([]*services.SwapRequest, error) {
	return toServiceRequests(a.store.ListRequestsByRequester(accountID)), nil
}

var _ services.SwapStore = (*swapStoreAdapter)(nil)
