package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
	"github.com/swipe-labs/swipe-api/internal/core/ports"
	"github.com/swipe-labs/swipe-api/internal/core/service"
)

// memUserRepo is an in-memory UserRepository for end-to-end routing tests.
type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := *user
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	stored := created
	r.users[created.ID] = &stored
	return &created, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Bio != nil {
		u.Profile.Bio = *update.Bio
	}
	u.ProfileSetupComplete = true
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func newTestRouter() (*memUserRepo, *service.TokenCodec, http.Handler) {
	repo := newMemUserRepo()
	codec := service.NewTokenCodec("test-secret", time.Hour)
	authService := service.NewAuthService(repo, codec, nil, nil, zerolog.Nop())
	profileService := service.NewProfileService(repo, nil, zerolog.Nop())
	e := NewRouter(nil, nil, codec, authService, profileService, zerolog.Nop())
	return repo, codec, e
}

func doJSON(h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RegisterLoginProtectedFlow(t *testing.T) {
	_, codec, e := newTestRouter()

	// Register.
	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@x.com","password":"secret1","role":"freelancer"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var reg struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reg); err != nil {
		t.Fatalf("register response: %v", err)
	}

	// Duplicate email conflicts.
	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"alice2","email":"a@x.com","password":"secret1","role":"client"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", rec.Code)
	}

	// Login.
	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"secret1"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var login struct {
		Token string `json:"token"`
		Next  string `json:"next"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("login response: %v", err)
	}
	claims, err := codec.Parse(login.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Role != domain.RoleFreelancer || claims.ProfileSetupComplete {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.UserID != reg.User.ID {
		t.Fatalf("claims id %q does not match registered id %q", claims.UserID, reg.User.ID)
	}
	if login.Next != domain.DestinationEditProfile {
		t.Fatalf("expected next=%s, got %s", domain.DestinationEditProfile, login.Next)
	}

	// Protected route with the issued token.
	rec = doJSON(e, http.MethodGet, "/api/profile/me", "", "Bearer "+login.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile get: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var me struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("profile response: %v", err)
	}
	if me.ID != reg.User.ID {
		t.Fatalf("profile id %q does not match registered id %q", me.ID, reg.User.ID)
	}

	// Wrong scheme is rejected.
	rec = doJSON(e, http.MethodGet, "/api/profile/me", "", "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: expected 401, got %d", rec.Code)
	}

	// Profile save flips the flag; a fresh login token carries it, the old
	// token keeps the stale value.
	rec = doJSON(e, http.MethodPut, "/api/profile/me", `{"bio":"hello"}`, "Bearer "+login.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile put: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"secret1"}`, "")
	var relogin struct {
		Token string `json:"token"`
		Next  string `json:"next"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &relogin); err != nil {
		t.Fatalf("relogin response: %v", err)
	}
	fresh, err := codec.Parse(relogin.Token)
	if err != nil {
		t.Fatalf("fresh token does not parse: %v", err)
	}
	if !fresh.ProfileSetupComplete {
		t.Fatalf("fresh token must carry profileSetupComplete=true")
	}
	if relogin.Next != domain.DestinationDashboard {
		t.Fatalf("expected next=%s, got %s", domain.DestinationDashboard, relogin.Next)
	}
	stale, err := codec.Parse(login.Token)
	if err != nil {
		t.Fatalf("old token must stay valid: %v", err)
	}
	if stale.ProfileSetupComplete {
		t.Fatalf("old token must keep the stale flag")
	}
}

func TestRouter_LoginFailureShapesMatch(t *testing.T) {
	_, _, e := newTestRouter()

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"bob","email":"bob@x.com","password":"secret1","role":"client"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	wrongPass := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"bob@x.com","password":"wrong-pass"}`, "")
	unknown := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@x.com","password":"wrong-pass"}`, "")

	if wrongPass.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Fatalf("failure bodies differ: %q vs %q", wrongPass.Body.String(), unknown.Body.String())
	}
}

func TestRouter_DirectoryRequiresClientRole(t *testing.T) {
	_, _, e := newTestRouter()

	for _, u := range []string{
		`{"username":"freela","email":"f@x.com","password":"secret1","role":"freelancer"}`,
		`{"username":"acme","email":"c@x.com","password":"secret1","role":"client"}`,
	} {
		if rec := doJSON(e, http.MethodPost, "/api/auth/register", u, ""); rec.Code != http.StatusCreated {
			t.Fatalf("register: expected 201, got %d", rec.Code)
		}
	}

	login := func(email string) string {
		rec := doJSON(e, http.MethodPost, "/api/auth/login",
			fmt.Sprintf(`{"email":"%s","password":"secret1"}`, email), "")
		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("login response: %v", err)
		}
		return resp.Token
	}

	freelancerToken := login("f@x.com")
	clientToken := login("c@x.com")

	if rec := doJSON(e, http.MethodGet, "/api/users", "", "Bearer "+freelancerToken); rec.Code != http.StatusForbidden {
		t.Fatalf("freelancer on directory: expected 403, got %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodGet, "/api/users", "", "Bearer "+clientToken); rec.Code != http.StatusOK {
		t.Fatalf("client on directory: expected 200, got %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodGet, "/api/users", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous on directory: expected 401, got %d", rec.Code)
	}
}
