package service

import (
	libauth "meetapp/internal/lib/auth"
	"meetapp/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserStore
type UserStore interface {
	CreateUser(name, email, passwordHash string) (models.User, error)
	GetUser(id int) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	UpdateUser(user models.User) (models.User, error)
	ListUsers() ([]models.User, error)
}

type UpdateUserInput struct {
	Name        *string
	Email       *string
	OldPassword *string
	Password    *string
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) RegisterUser(name, email, password string) (models.User, error) {
	hash, err := libauth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	return s.users.CreateUser(name, email, hash)
}

// Authenticate verifies the credentials and returns the matching user.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return models.User{}, err
	}

	if !libauth.CheckPassword(user.PasswordHash, password) {
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// UpdateUser applies a partial profile update. Changing the password requires
// the correct current one.
func (s *UserService) UpdateUser(id int, in UpdateUserInput) (models.User, error) {
	user, err := s.users.GetUser(id)
	if err != nil {
		return models.User{}, err
	}

	if in.Password != nil {
		if in.OldPassword == nil || !libauth.CheckPassword(user.PasswordHash, *in.OldPassword) {
			return models.User{}, ErrWrongPassword
		}

		hash, err := libauth.HashPassword(*in.Password)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = hash
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}

	return s.users.UpdateUser(user)
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.users.ListUsers()
}
