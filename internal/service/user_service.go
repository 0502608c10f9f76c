package service

import (
	"errors"
	"fmt"
	"strings"

	"go-nexus-crm/internal/access"
	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/repository"
	"go-nexus-crm/pkg/validator"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
)

type UserService interface {
	ListUsers(statusFilter, query string) []model.User
	GetUserByID(id string) (*model.User, error)
	CreateUser(req *CreateUserRequest) (*model.User, error)
	UpdateUser(id string, req *UpdateUserRequest) (*model.User, error)
	ToggleUserStatus(id string) (*model.User, error)
	UpdateUserAuthorities(id string, authorityNames []string) (*model.User, error)
	AssignableUsers() []model.User
	CreateRole(req *CreateRoleRequest) (*model.Role, error)
	CreateAuthority(req *CreateAuthorityRequest) (*model.Authority, error)
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	RoleID   string `json:"roleId" validate:"required"`
}

type UpdateUserRequest struct {
	Username      *string `json:"username,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	RoleID        *string `json:"roleId,omitempty"`
	AccountActive *bool   `json:"accountActive,omitempty"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Authorities []string `json:"authorities" validate:"dive,upper_snake"`
}

type CreateAuthorityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type userService struct {
	userRepo      repository.UserRepository
	roleRepo      repository.RoleRepository
	authorityRepo repository.AuthorityRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, authorityRepo repository.AuthorityRepository) UserService {
	return &userService{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		authorityRepo: authorityRepo,
	}
}

// ListUsers filters by account status (ALL, ACTIVE, INACTIVE) and a
// case-insensitive username/email query.
func (s *userService) ListUsers(statusFilter, query string) []model.User {
	users := s.userRepo.FindAll()
	query = strings.ToLower(query)

	out := make([]model.User, 0, len(users))
	for _, u := range users {
		switch statusFilter {
		case "ACTIVE":
			if !u.AccountActive {
				continue
			}
		case "INACTIVE":
			if u.AccountActive {
				continue
			}
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(u.Username), query) &&
			!strings.Contains(strings.ToLower(u.Email), query) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (s *userService) GetUserByID(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Resolve the assigned role
	role, err := s.roleRepo.FindByID(req.RoleID)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	// 3. Seed authorities from the role's default set. The seeded set is
	// thereafter independently editable on the user.
	roleRef := role.Ref()
	user := model.User{
		ID:            model.NewID("u"),
		Username:      req.Username,
		Email:         req.Email,
		Role:          &roleRef,
		Authorities:   access.DeriveDefaultAuthorities(role, s.authorityRepo.FindAll()),
		AccountActive: true,
	}

	s.userRepo.Create(user)
	return &user, nil
}

func (s *userService) UpdateUser(id string, req *UpdateUserRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	upd := model.UserUpdate{
		Username:      req.Username,
		Email:         req.Email,
		AccountActive: req.AccountActive,
	}

	// A role change re-seeds the authority set from the new role's
	// defaults, replacing any per-user overrides.
	if req.RoleID != nil {
		role, err := s.roleRepo.FindByID(*req.RoleID)
		if err != nil {
			return nil, ErrRoleNotFound
		}
		roleRef := role.Ref()
		authorities := access.DeriveDefaultAuthorities(role, s.authorityRepo.FindAll())
		upd.Role = &roleRef
		upd.Authorities = &authorities
	}

	user, err := s.userRepo.Update(id, upd)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) ToggleUserStatus(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	active := !user.AccountActive
	return s.userRepo.Update(id, model.UserUpdate{AccountActive: &active})
}

// UpdateUserAuthorities replaces the user's explicit authority set. Names
// that do not resolve against the registry are dropped silently; the role
// definition is never touched.
func (s *userService) UpdateUserAuthorities(id string, authorityNames []string) (*model.User, error) {
	refs := make([]model.AuthorityRef, 0, len(authorityNames))
	for _, name := range authorityNames {
		if a, err := s.authorityRepo.FindByName(name); err == nil {
			refs = append(refs, a.Ref())
		}
	}
	user, err := s.userRepo.Update(id, model.UserUpdate{Authorities: &refs})
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// AssignableUsers returns users eligible for assignment pickers: inactive
// accounts are excluded.
func (s *userService) AssignableUsers() []model.User {
	users := s.userRepo.FindAll()
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.AccountActive {
			out = append(out, u)
		}
	}
	return out
}

// CreateRole normalizes the name to an UPPER_SNAKE token and snapshots the
// given authority names by value. No uniqueness check: colliding normalized
// names may coexist and stay independently addressable by id.
func (s *userService) CreateRole(req *CreateRoleRequest) (*model.Role, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	role := model.Role{
		ID:          model.NewID("r"),
		Name:        model.NormalizeName(req.Name),
		Description: req.Description,
		Authorities: append([]string(nil), req.Authorities...),
	}
	s.roleRepo.Create(role)
	return &role, nil
}

// CreateAuthority normalizes the name like CreateRole does. Authorities are
// immutable once created and are never deleted.
func (s *userService) CreateAuthority(req *CreateAuthorityRequest) (*model.Authority, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	authority := model.Authority{
		ID:          model.NewID("a"),
		Name:        model.NormalizeName(req.Name),
		Description: req.Description,
	}
	s.authorityRepo.Create(authority)
	return &authority, nil
}
