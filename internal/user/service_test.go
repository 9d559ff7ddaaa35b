package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sanketkadam3921/financial-dashboard/internal/user"
)

// Cost low enough to keep the hashing in tests fast.
const testBcryptCost = bcrypt.MinCost

func TestService_Signup(t *testing.T) {
	type testCase struct {
		name      string
		params    user.SignupParams
		setupMock func(m *user.MockRepository)
		wantErr   string
		wantEmail string
	}

	tests := []testCase{
		{
			name:   "Success",
			params: user.SignupParams{Name: "Ada", Email: "ada@example.com", Password: "secret1"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantEmail: "ada@example.com",
		},
		{
			name:   "EmailTrimmedAndLowercased",
			params: user.SignupParams{Name: "Ada", Email: "  Ada@Example.COM ", Password: "secret1"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantEmail: "ada@example.com",
		},
		{
			name:      "MissingName",
			params:    user.SignupParams{Email: "ada@example.com", Password: "secret1"},
			setupMock: func(m *user.MockRepository) {},
			wantErr:   "All fields are required",
		},
		{
			name:      "MissingPassword",
			params:    user.SignupParams{Name: "Ada", Email: "ada@example.com"},
			setupMock: func(m *user.MockRepository) {},
			wantErr:   "All fields are required",
		},
		{
			name:      "ShortPassword",
			params:    user.SignupParams{Name: "Ada", Email: "ada@example.com", Password: "12345"},
			setupMock: func(m *user.MockRepository) {},
			wantErr:   "Password must be at least 6 characters",
		},
		{
			name:      "MalformedEmail",
			params:    user.SignupParams{Name: "Ada", Email: "not-an-email", Password: "secret1"},
			setupMock: func(m *user.MockRepository) {},
			wantErr:   "Please enter a valid email",
		},
		{
			name:   "DuplicateEmail",
			params: user.SignupParams{Name: "Ada", Email: "ada@example.com", Password: "secret1"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(user.ErrEmailTaken)
			},
			wantErr: user.ErrEmailTaken.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo, testBcryptCost)

			u, err := svc.Signup(context.Background(), tt.params)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, u.Email)
			assert.NotEqual(t, tt.params.Password, u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tt.params.Password)))
		})
	}
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), testBcryptCost)
	require.NoError(t, err)

	stored := &user.User{Name: "Ada", Email: "ada@example.com", PasswordHash: string(hash)}

	type testCase struct {
		name      string
		email     string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			email:    "ada@example.com",
			password: "secret1",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)
			},
		},
		{
			name:     "EmailCaseFoldedBeforeLookup",
			email:    " ADA@example.com",
			password: "secret1",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)
			},
		},
		{
			name:     "UnknownEmail",
			email:    "ghost@example.com",
			password: "secret1",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "WrongPassword",
			email:    "ada@example.com",
			password: "hunter2!",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(stored, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo, testBcryptCost)

			u, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.Email, u.Email)
		})
	}
}

func TestService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := user.NewService(user.NewMockRepository(ctrl), testBcryptCost)

	_, err := svc.Login(context.Background(), "", "secret1")
	assert.EqualError(t, err, "Email and password are required")

	_, err = svc.Login(context.Background(), "ada@example.com", "")
	assert.EqualError(t, err, "Email and password are required")
}
