package user

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"uk.co.dudmesh.contacts/internal/model"
	"uk.co.dudmesh.contacts/internal/store"
)

const bcryptCost = 10

type service struct {
	store *store.Store
}

func New(store *store.Store) *service {
	return &service{store}
}

func (s *service) Register(params *model.RegisterUserRequest) (*model.UserResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	count, err := s.store.CountByUsername(params.Username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if count != 0 {
		return nil, model.ErrorUsernameExists
	}

	passwordBytes, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("generating encoded password: %w", err)
	}

	user := &model.User{
		Username: params.Username,
		Name:     params.Name,
		Password: string(passwordBytes),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &model.UserResponse{Username: user.Username, Name: user.Name}, nil
}

// Login answers with the same error for an unknown username and a wrong
// password, so callers cannot probe which usernames exist.
func (s *service) Login(params *model.LoginUserRequest) (*model.UserResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	user, err := s.store.FindUserByUsername(params.Username)
	if err != nil {
		if errors.Is(err, model.ErrorUserNotFound) {
			return nil, model.ErrorInvalidUsernameOrPassword
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(params.Password)); err != nil {
		return nil, model.ErrorInvalidUsernameOrPassword
	}

	token := model.CreateToken()
	if err := s.store.SetToken(user.Username, token); err != nil {
		return nil, fmt.Errorf("storing token: %w", err)
	}

	return &model.UserResponse{Username: user.Username, Name: user.Name, Token: token}, nil
}

// Resolve maps a bearer token to its user, for the auth middleware.
func (s *service) Resolve(token string) (*model.User, error) {
	return s.store.FindUserByToken(token)
}

func (s *service) Get(user *model.User) *model.UserResponse {
	return &model.UserResponse{Username: user.Username, Name: user.Name}
}

func (s *service) Update(user *model.User, params *model.UpdateUserRequest) (*model.UserResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	updated := *user
	if params.Name != "" {
		updated.Name = params.Name
	}
	if params.Password != "" {
		passwordBytes, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("generating encoded password: %w", err)
		}
		updated.Password = string(passwordBytes)
	}

	if err := s.store.UpdateUser(&updated); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return &model.UserResponse{Username: updated.Username, Name: updated.Name}, nil
}

func (s *service) Logout(user *model.User) (*model.UserResponse, error) {
	if err := s.store.ClearToken(user.Username); err != nil {
		return nil, fmt.Errorf("clearing token: %w", err)
	}
	return &model.UserResponse{Username: user.Username, Name: user.Name}, nil
}
