package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"Wayn-App/internal/domain/model"
)

// In-memory fakes shared by the use case tests.

type fakeUsersRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
	saves int
}

func newFakeUsersRepo(users ...*model.User) *fakeUsersRepo {
	repo := &fakeUsersRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		copied := *u
		repo.users[u.ID] = &copied
	}
	return repo
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsersRepo) GetByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.GoogleID == googleID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUsersRepo) Save(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s does not exist", user.ID)
	}
	copied := *user
	f.users[user.ID] = &copied
	f.saves++
	return nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeUsersRepo) stored(id string) *model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id]
}

type fakeSessionsRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newFakeSessionsRepo() *fakeSessionsRepo {
	return &fakeSessionsRepo{sessions: make(map[string]*model.Session)}
}

func (f *fakeSessionsRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionsRepo) Put(ctx context.Context, session *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

type fakePlacesRepo struct {
	mu     sync.Mutex
	places []model.Place
}

func (f *fakePlacesRepo) GetByID(ctx context.Context, id int) (*model.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.places {
		if f.places[i].ID == id {
			copied := f.places[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("place %d not found", id)
}

func (f *fakePlacesRepo) FindActiveByCategories(ctx context.Context, categories []string) ([]model.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []model.Place
	for _, place := range f.places {
		if !place.IsActive {
			continue
		}
		if len(categories) > 0 && !contains(categories, place.Category) {
			continue
		}
		matched = append(matched, place)
	}
	return matched, nil
}

func (f *fakePlacesRepo) UpdateImageURL(ctx context.Context, id int, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.places {
		if f.places[i].ID == id {
			f.places[i].ImageURL = imageURL
			return nil
		}
	}
	return fmt.Errorf("place %d not found", id)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

type fakeImageSearch struct {
	url string
}

func (f *fakeImageSearch) SearchImageURL(ctx context.Context, query string) (string, error) {
	if f.url == "" {
		return "", errors.New("no result")
	}
	return f.url, nil
}

type fakeOAuth struct {
	profile *model.GoogleProfile
	err     error
}

func (f *fakeOAuth) AuthURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (f *fakeOAuth) Exchange(ctx context.Context, code string) (*model.GoogleProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}
