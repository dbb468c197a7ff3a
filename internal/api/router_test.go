package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) (*Router, *httptest.Server) {
	t.Helper()
	rt := NewRouter()
	mux := http.NewServeMux()
	rt.Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return rt, srv
}

func doJSON(t *testing.T, method, url, token string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func registerAndLogin(t *testing.T, base, name, email, password string, offered []string) string {
	t.Helper()
	if code := doJSON(t, http.MethodPost, base+"/api/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	}, nil); code != http.StatusCreated {
		t.Fatalf("register %s: status %d", email, code)
	}
	var sess struct {
		Token string `json:"token"`
	}
	if code := doJSON(t, http.MethodPost, base+"/api/login", "", map[string]string{
		"email": email, "password": password,
	}, &sess); code != http.StatusOK {
		t.Fatalf("login %s: status %d", email, code)
	}
	if sess.Token == "" {
		t.Fatalf("login %s: no token", email)
	}
	if offered != nil {
		if code := doJSON(t, http.MethodPatch, base+"/api/profile", sess.Token, map[string]any{
			"skills_offered": offered,
		}, nil); code != http.StatusOK {
			t.Fatalf("profile update %s: status %d", email, code)
		}
	}
	return sess.Token
}

func TestSwapJourney(t *testing.T) {
	_, srv := newTestServer(t)
	base := srv.URL

	tokenA := registerAndLogin(t, base, "A", "a@x.com", "secret-a", []string{"Python"})
	tokenB := registerAndLogin(t, base, "B", "b@x.com", "secret-b", []string{"Go"})

	// duplicate registration is a conflict
	if code := doJSON(t, http.MethodPost, base+"/api/register", "", map[string]string{
		"name": "A2", "email": "a@x.com", "password": "x",
	}, nil); code != http.StatusConflict {
		t.Fatalf("duplicate register: status %d", code)
	}

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if code := doJSON(t, http.MethodPost, base+"/api/swaps", tokenA, map[string]string{
		"recipient_email": "b@x.com",
		"offered_skill":   "Python",
		"requested_skill": "Go",
		"message":         "hi",
	}, &created); code != http.StatusCreated {
		t.Fatalf("create swap: status %d", code)
	}
	if created.Status != "Pending" {
		t.Fatalf("new swap should be Pending, got %q", created.Status)
	}

	var me struct {
		Email string `json:"email"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/me", tokenA, nil, &me); code != http.StatusOK || me.Email != "a@x.com" {
		t.Fatalf("current session: status %d email %q", code, me.Email)
	}

	// A logs out; the revoked token no longer works
	if code := doJSON(t, http.MethodPost, base+"/api/logout", tokenA, nil, nil); code != http.StatusOK {
		t.Fatalf("logout: status %d", code)
	}
	if code := doJSON(t, http.MethodGet, base+"/api/me", tokenA, nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("post-logout session query: status %d", code)
	}
	if code := doJSON(t, http.MethodPost, base+"/api/swaps", tokenA, map[string]string{
		"recipient_email": "b@x.com", "offered_skill": "Python", "requested_skill": "Go",
	}, nil); code != http.StatusUnauthorized {
		t.Fatalf("post-logout create: status %d", code)
	}

	var resolved struct {
		Status string `json:"status"`
	}
	if code := doJSON(t, http.MethodPost, base+"/api/swaps/"+created.ID+"/respond", tokenB, map[string]bool{
		"accept": true,
	}, &resolved); code != http.StatusOK {
		t.Fatalf("respond: status %d", code)
	}
	if resolved.Status != "Accepted" {
		t.Fatalf("expected Accepted, got %q", resolved.Status)
	}

	// terminal state: a second response conflicts
	if code := doJSON(t, http.MethodPost, base+"/api/swaps/"+created.ID+"/respond", tokenB, map[string]bool{
		"accept": false,
	}, nil); code != http.StatusConflict {
		t.Fatalf("second respond: status %d", code)
	}

	var lists struct {
		Incoming []struct {
			ID string `json:"id"`
		} `json:"incoming"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/swaps", tokenB, nil, &lists); code != http.StatusOK {
		t.Fatalf("list swaps: status %d", code)
	}
	if len(lists.Incoming) != 1 || lists.Incoming[0].ID != created.ID {
		t.Fatalf("unexpected incoming list: %+v", lists.Incoming)
	}
}

func TestSwapValidationOverHTTP(t *testing.T) {
	_, srv := newTestServer(t)
	base := srv.URL

	tokenA := registerAndLogin(t, base, "A", "a@x.com", "secret-a", []string{"Python"})
	registerAndLogin(t, base, "B", "b@x.com", "secret-b", []string{"Go"})

	var errResp struct {
		Code string `json:"code"`
	}
	if code := doJSON(t, http.MethodPost, base+"/api/swaps", tokenA, map[string]string{
		"recipient_email": "nobody@x.com", "offered_skill": "Python", "requested_skill": "Go",
	}, &errResp); code != http.StatusNotFound {
		t.Fatalf("unknown recipient: status %d", code)
	}
	if errResp.Code != "recipient_not_found" {
		t.Fatalf("expected recipient_not_found code, got %q", errResp.Code)
	}
	if code := doJSON(t, http.MethodPost, base+"/api/swaps", tokenA, map[string]string{
		"recipient_email": "b@x.com", "offered_skill": "Knitting", "requested_skill": "Go",
	}, &errResp); code != http.StatusUnprocessableEntity || errResp.Code != "offered_skill_not_owned" {
		t.Fatalf("unowned skill: status %d code %q", code, errResp.Code)
	}
}

func TestDirectoryOverHTTP(t *testing.T) {
	_, srv := newTestServer(t)
	base := srv.URL

	registerAndLogin(t, base, "One", "one@x.com", "pw-one", []string{"Python"})
	registerAndLogin(t, base, "Two", "two@x.com", "pw-two", []string{"Go"})
	tokenThree := registerAndLogin(t, base, "Three", "three@x.com", "pw-three", []string{"Python Scripting"})

	// Three goes private and must vanish from listings and search
	if code := doJSON(t, http.MethodPatch, base+"/api/profile", tokenThree, map[string]any{
		"is_public": false,
	}, nil); code != http.StatusOK {
		t.Fatalf("set private: status %d", code)
	}

	var search struct {
		Profiles []struct {
			Email string `json:"email"`
		} `json:"profiles"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/search/skill?q=python", "", nil, &search); code != http.StatusOK {
		t.Fatalf("search: status %d", code)
	}
	if len(search.Profiles) != 1 || search.Profiles[0].Email != "one@x.com" {
		t.Fatalf("unexpected search result: %+v", search.Profiles)
	}

	var page struct {
		Profiles []struct {
			Email string `json:"email"`
		} `json:"profiles"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/profiles?page=1&page_size=1", "", nil, &page); code != http.StatusOK {
		t.Fatalf("profiles: status %d", code)
	}
	if len(page.Profiles) != 1 || page.Profiles[0].Email != "one@x.com" {
		t.Fatalf("unexpected first page: %+v", page.Profiles)
	}
	if doJSON(t, http.MethodGet, base+"/api/profiles?page=9&page_size=5", "", nil, &page); len(page.Profiles) != 0 {
		t.Fatalf("out-of-range page should be empty: %+v", page.Profiles)
	}

	var view struct {
		Account struct {
			Name string `json:"name"`
		} `json:"account"`
		AverageRating float64 `json:"average_rating"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/profiles/one@x.com", "", nil, &view); code != http.StatusOK {
		t.Fatalf("profile view: status %d", code)
	}
	if view.Account.Name != "One" || view.AverageRating != 0.0 {
		t.Fatalf("unexpected profile view: %+v", view)
	}
}

func TestFeedbackOverHTTP(t *testing.T) {
	_, srv := newTestServer(t)
	base := srv.URL

	tokenA := registerAndLogin(t, base, "A", "a@x.com", "secret-a", nil)
	registerAndLogin(t, base, "B", "b@x.com", "secret-b", nil)

	var errResp struct {
		Code string `json:"code"`
	}
	if code := doJSON(t, http.MethodPost, base+"/api/feedback", tokenA, map[string]any{
		"target_email": "b@x.com", "rating": 6, "comment": "too good",
	}, &errResp); code != http.StatusBadRequest || errResp.Code != "invalid_rating" {
		t.Fatalf("out-of-range rating: status %d code %q", code, errResp.Code)
	}

	for _, rating := range []int{5, 4} {
		if code := doJSON(t, http.MethodPost, base+"/api/feedback", tokenA, map[string]any{
			"target_email": "b@x.com", "rating": rating, "comment": "great swap",
		}, nil); code != http.StatusCreated {
			t.Fatalf("feedback rating %d: status %d", rating, code)
		}
	}

	var view struct {
		AverageRating float64 `json:"average_rating"`
		ReviewCount   int     `json:"review_count"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/profiles/b@x.com", "", nil, &view); code != http.StatusOK {
		t.Fatalf("profile view: status %d", code)
	}
	if view.AverageRating != 4.5 || view.ReviewCount != 2 {
		t.Fatalf("expected average 4.5 over 2 reviews, got %+v", view)
	}
}

func TestAdminOverHTTP(t *testing.T) {
	rt, srv := newTestServer(t)
	base := srv.URL

	if err := rt.BootstrapAdmin("Platform Admin", "admin@x.com", "admin-pw"); err != nil {
		t.Fatalf("bootstrap admin: %v", err)
	}
	// bootstrap is restart-safe
	if err := rt.BootstrapAdmin("Platform Admin", "admin@x.com", "admin-pw"); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}

	tokenUser := registerAndLogin(t, base, "A", "a@x.com", "secret-a", []string{"Python"})

	// anonymous and ordinary callers are both refused
	if code := doJSON(t, http.MethodGet, base+"/api/admin/report", "", nil, nil); code != http.StatusForbidden {
		t.Fatalf("anonymous admin report: status %d", code)
	}
	if code := doJSON(t, http.MethodGet, base+"/api/admin/report", tokenUser, nil, nil); code != http.StatusForbidden {
		t.Fatalf("non-admin report: status %d", code)
	}

	var adminSess struct {
		Token string `json:"token"`
	}
	if code := doJSON(t, http.MethodPost, base+"/api/login", "", map[string]string{
		"email": "admin@x.com", "password": "admin-pw",
	}, &adminSess); code != http.StatusOK {
		t.Fatalf("admin login: status %d", code)
	}

	var rep struct {
		TotalAccounts int `json:"total_accounts"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/admin/report", adminSess.Token, nil, &rep); code != http.StatusOK {
		t.Fatalf("admin report: status %d", code)
	}
	if rep.TotalAccounts != 1 {
		t.Fatalf("admin must not count itself, got %d accounts", rep.TotalAccounts)
	}

	if code := doJSON(t, http.MethodPost, base+"/api/admin/announcements", adminSess.Token, map[string]string{
		"message": "welcome aboard",
	}, nil); code != http.StatusCreated {
		t.Fatalf("announce: status %d", code)
	}
	var anns struct {
		Announcements []struct {
			Message string `json:"message"`
		} `json:"announcements"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/announcements", "", nil, &anns); code != http.StatusOK {
		t.Fatalf("list announcements: status %d", code)
	}
	if len(anns.Announcements) != 1 || anns.Announcements[0].Message != "welcome aboard" {
		t.Fatalf("unexpected announcements: %+v", anns.Announcements)
	}

	if code := doJSON(t, http.MethodPost, base+"/api/admin/ban", adminSess.Token, map[string]string{
		"email": "a@x.com",
	}, nil); code != http.StatusOK {
		t.Fatalf("ban: status %d", code)
	}
	// a banned account cannot log back in, and the error is suspension,
	// not a credential failure
	var errResp struct {
		Code string `json:"code"`
	}
	if code := doJSON(t, http.MethodPost, base+"/api/login", "", map[string]string{
		"email": "a@x.com", "password": "secret-a",
	}, &errResp); code != http.StatusForbidden || errResp.Code != "suspended" {
		t.Fatalf("banned login: status %d code %q", code, errResp.Code)
	}
}

func TestSeedEndpoint(t *testing.T) {
	_, srv := newTestServer(t)
	base := srv.URL

	if code := doJSON(t, http.MethodPost, base+"/api/seed", "", nil, nil); code != http.StatusOK {
		t.Fatalf("seed: status %d", code)
	}
	// seeding twice trips the duplicate-email guard
	if code := doJSON(t, http.MethodPost, base+"/api/seed", "", nil, nil); code != http.StatusConflict {
		t.Fatalf("second seed: status %d", code)
	}

	var page struct {
		Profiles []struct {
			Email string `json:"email"`
		} `json:"profiles"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/profiles?page=1&page_size=10", "", nil, &page); code != http.StatusOK {
		t.Fatalf("profiles: status %d", code)
	}
	// six seeded accounts, one of them private
	if len(page.Profiles) != 5 {
		t.Fatalf("expected 5 public seeded profiles, got %d", len(page.Profiles))
	}

	var skills struct {
		Skills []string `json:"skills"`
	}
	if code := doJSON(t, http.MethodGet, base+"/api/skills?q=docker", "", nil, &skills); code != http.StatusOK {
		t.Fatalf("skills: status %d", code)
	}
	if len(skills.Skills) == 0 {
		t.Fatalf("expected catalog match for docker")
	}
}
