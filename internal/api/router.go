package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/skillwisehq/skillswap/internal/catalog"
	"github.com/skillwisehq/skillswap/internal/middleware"
	"github.com/skillwisehq/skillswap/internal/services"
)

// recentFeedbackShown is how many ledger entries a profile page carries.
const recentFeedbackShown = 3

type Router struct {
	store     Store
	auth      *services.AuthService
	profiles  *services.ProfileService
	feedback  *services.FeedbackService
	swaps     *services.SwapService
	directory *services.DirectoryService
	admin     *services.AdminService
}

func NewRouter() *Router {
	return NewRouterWithStore(newMemoryStore())
}

func NewRouterWithStore(store Store) *Router {
	return &Router{
		store:     store,
		auth:      services.NewAuthService(newAuthStoreAdapter(store), middleware.SignToken),
		profiles:  services.NewProfileService(newProfileStoreAdapter(store)),
		feedback:  services.NewFeedbackService(newFeedbackStoreAdapter(store)),
		swaps:     services.NewSwapService(newSwapStoreAdapter(store)),
		directory: services.NewDirectoryService(newDirectoryStoreAdapter(store)),
		admin:     services.NewAdminService(newAdminStoreAdapter(store)),
	}
}

// BootstrapAdmin creates the elevated account at startup. Safe to call when
// the email is already taken (restarts reuse the same env config).
func (rt *Router) BootstrapAdmin(name, email, password string) error {
	_, err := rt.auth.RegisterAdmin(name, email, password)
	if services.CodeOf(err) == services.ErrorDuplicateEmail {
		return nil
	}
	return err
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/register", rt.handleRegister)                    // POST
	mux.HandleFunc("/api/login", rt.handleLogin)                          // POST
	mux.HandleFunc("/api/logout", rt.handleLogout)                        // POST
	mux.HandleFunc("/api/me", rt.handleMe)                                // GET
	mux.HandleFunc("/api/profile", rt.handleOwnProfile)                   // PATCH
	mux.HandleFunc("/api/profiles", rt.handleProfiles)                    // GET (paginated)
	mux.HandleFunc("/api/profiles/", rt.handleProfileByEmail)             // GET /api/profiles/{email}
	mux.HandleFunc("/api/search/skill", rt.handleSearchSkill)             // GET ?q=
	mux.HandleFunc("/api/search/availability", rt.handleSearchAvail)      // GET ?q=
	mux.HandleFunc("/api/skills", rt.handleSkills)                        // GET ?q=
	mux.HandleFunc("/api/skills/categories", rt.handleSkillCategories)    // GET
	mux.HandleFunc("/api/swaps", rt.handleSwaps)                          // POST create, GET list
	mux.HandleFunc("/api/swaps/", rt.handleSwapScoped)                    // POST /api/swaps/{id}/respond
	mux.HandleFunc("/api/feedback", rt.handleFeedback)                    // POST
	mux.HandleFunc("/api/announcements", rt.handleAnnouncements)          // GET
	mux.HandleFunc("/api/admin/ban", rt.handleAdminBan)                   // POST
	mux.HandleFunc("/api/admin/announcements", rt.handleAdminAnnounce)    // POST
	mux.HandleFunc("/api/admin/report", rt.handleAdminReport)             // GET
	mux.HandleFunc("/api/admin/swaps", rt.handleAdminSwaps)               // GET
	mux.HandleFunc("/api/seed", rt.handleSeed)                            // POST
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	se, ok := services.AsServiceError(err)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	status := http.StatusBadRequest
	switch se.Code {
	case services.ErrorNotFound, services.ErrorRecipientNotFound:
		status = http.StatusNotFound
	case services.ErrorDuplicateEmail, services.ErrorAlreadyResolved:
		status = http.StatusConflict
	case services.ErrorBadCredential, services.ErrorNotAuthenticated:
		status = http.StatusUnauthorized
	case services.ErrorNotAuthorized, services.ErrorSuspended, services.ErrorNotRecipient:
		status = http.StatusForbidden
	case services.ErrorRecipientBanned, services.ErrorSkillNotOwned, services.ErrorSkillNotOffered:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]any{"error": se.Message, "code": se.Code})
}

// session resolves the caller's bearer token to a live session. Signature
// and expiry come from the JWT; revocation comes from the session table.
func (rt *Router) session(r *http.Request) (*services.Session, error) {
	tok := middleware.BearerToken(r)
	if tok == "" {
		return nil, services.NewNotAuthenticatedError("login required")
	}
	if _, err := middleware.ParseToken(tok); err != nil {
		return nil, services.NewNotAuthenticatedError("invalid token")
	}
	return rt.auth.Resolve(tok)
}

// POST /api/register
func (rt *Router) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a, err := rt.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// POST /api/login
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, err := rt.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// POST /api/logout
func (rt *Router) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := rt.auth.Logout(middleware.BearerToken(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/me — the caller's current session
func (rt *Router) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := rt.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// PATCH /api/profile — merge-update the caller's own profile
func (rt *Router) handleOwnProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := rt.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a, err := rt.profiles.Update(sess, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// GET /api/profiles?page=&page_size=
func (rt *Router) handleProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	profiles, err := rt.directory.PublicProfiles(page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

// GET /api/profiles/{email}
func (rt *Router) handleProfileByEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	email := strings.TrimPrefix(r.URL.Path, "/api/profiles/")
	if email == "" {
		http.NotFound(w, r)
		return
	}
	view, err := rt.profiles.View(email, recentFeedbackShown)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GET /api/search/skill?q=
func (rt *Router) handleSearchSkill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	matches, err := rt.directory.SearchBySkill(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": matches})
}

// GET /api/search/availability?q=
func (rt *Router) handleSearchAvail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	matches, err := rt.directory.SearchByAvailability(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": matches})
}

// GET /api/skills?q= — search the static catalog
func (rt *Router) handleSkills(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query().Get("q")
	var skills []string
	if q == "" {
		skills = catalog.All()
	} else {
		skills = catalog.Search(q)
	}
	writeJSON(w, http.StatusOK, map[string]any{"skills": skills})
}

// GET /api/skills/categories
func (rt *Router) handleSkillCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	type category struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	}
	out := []category{}
	for _, c := range catalog.ByCategory() {
		out = append(out, category{Name: c.Name, Skills: c.Skills})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// POST /api/swaps — create; GET /api/swaps — caller's incoming/outgoing
func (rt *Router) handleSwaps(w http.ResponseWriter, r *http.Request) {
	sess, err := rt.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	switch r.Method {
	case http.MethodPost:
		var req struct {
			RecipientEmail string `json:"recipient_email"`
			OfferedSkill   string `json:"offered_skill"`
			RequestedSkill string `json:"requested_skill"`
			Message        string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sr, err := rt.swaps.Create(sess, req.RecipientEmail, req.OfferedSkill, req.RequestedSkill, req.Message)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sr)
	case http.MethodGet:
		incoming, outgoing, err := rt.swaps.ListFor(sess)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"incoming": incoming, "outgoing": outgoing})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// POST /api/swaps/{id}/respond
func (rt *Router) handleSwapScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/swaps/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "respond" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := rt.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Accept bool `json:"accept"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sr, err := rt.swaps.Respond(sess, parts[0], req.Accept)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sr)
}

// POST /api/feedback
func (rt *Router) handleFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := rt.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		TargetEmail string `json:"target_email"`
		Rating      int    `json:"rating"`
		Comment     string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f, err := rt.feedback.Submit(sess, req.TargetEmail, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// GET /api/announcements
func (rt *Router) handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	list, err := rt.directory.Announcements()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"announcements": list})
}

// adminSession resolves the caller and reports not_authorized for anonymous
// callers, matching the capability-gate contract of the moderation surface.
func (rt *Router) adminSession(r *http.Request) (*services.Session, error) {
	sess, err := rt.session(r)
	if services.CodeOf(err) == services.ErrorNotAuthenticated {
		return nil, nil
	}
	return sess, err
}

// POST /api/admin/ban
func (rt *Router) handleAdminBan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := rt.adminSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a, err := rt.admin.Ban(sess, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// POST /api/admin/announcements
func (rt *Router) handleAdminAnnounce(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := rt.adminSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	an, err := rt.admin.Announce(sess, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, an)
}

// GET /api/admin/report
func (rt *Router) handleAdminReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := rt.adminSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rep, err := rt.admin.Report(sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// GET /api/admin/swaps — every request on the platform
func (rt *Router) handleAdminSwaps(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, err := rt.adminSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := rt.admin.AllRequests(sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": list})
}
