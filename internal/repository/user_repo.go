package repository

import (
	"sync"

	"go-nexus-crm/internal/model"
)

type UserRepository interface {
	FindAll() []model.User
	FindByID(id string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Create(user model.User)
	Update(id string, upd model.UserUpdate) (*model.User, error)
	SetAll(users []model.User)
}

type userRepo struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserRepo() UserRepository {
	return &userRepo{}
}

func (r *userRepo) FindAll() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *userRepo) FindByID(id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepo) Create(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
}

// Update merges the partial fields into the stored record; nil fields keep
// their prior values.
func (r *userRepo) Update(id string, upd model.UserUpdate) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Apply(upd)
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepo) SetAll(users []model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make([]model.User, len(users))
	copy(r.users, users)
}
