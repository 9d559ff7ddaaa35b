package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// Same pattern the account schema has always enforced on email addresses.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

type Service struct {
	repo       Repository
	bcryptCost int
}

func NewService(repo Repository, bcryptCost int) *Service {
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

type SignupParams struct {
	Name     string
	Email    string
	Password string
}

// Signup validates the params, hashes the password and stores the new
// account. Emails are case-folded before storage and lookup.
func (s *Service) Signup(ctx context.Context, params SignupParams) (*User, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.ToLower(strings.TrimSpace(params.Email))

	if name == "" || email == "" || params.Password == "" {
		return nil, &ValidationError{Message: "All fields are required"}
	}

	if len(params.Password) < minPasswordLength {
		return nil, &ValidationError{Message: "Password must be at least 6 characters"}
	}

	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Message: "Please enter a valid email"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login checks the credentials and returns the account. Unknown email and
// wrong password both come back as ErrInvalidCredentials so the two cases are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
