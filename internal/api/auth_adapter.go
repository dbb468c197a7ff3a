package api

import "github.com/skillwisehq/skillswap/internal/services"

type authStoreAdapter struct {
	store Store
}

func newAuthStoreAdapter(store Store) services.AuthStore {
	return &authStoreAdapter{store: store}
}

func (a *authStoreAdapter) FindAccountByEmail(email string) (*services.Account, error) {
	return toServiceAccount(a.store.FindAccountByEmail(email)), nil
}

func (a *authStoreAdapter) AddAccount(acc *services.Account) error {
	if acc == nil {
		return services.NewInvalidError("account required")
	}
	if !a.store.AddAccount(fromServiceAccount(acc)) {
		return services.NewDuplicateEmailError("email already registered")
	}
	return nil
}

func (a *authStoreAdapter) AddSession(sess *services.Session) error {
	if sess == nil {
		return services.NewInvalidError("session required")
	}
	a.store.AddSession(&Session{Token: sess.Token, AccountID: sess.AccountID, Email: sess.Email, IsAdmin: sess.IsAdmin, CreatedAt: sess.CreatedAt})
	return nil
}

func (a *authStoreAdapter) GetSession(token string) (*services.Session, error) {
	return toServiceSession(a.store.GetSession(token)), nil
}

func (a *authStoreAdapter) DeleteSession(token string) error {
	a.store.DeleteSession(token)
	return nil
}

var _ services.AuthStore = (*authStoreAdapter)(nil)
