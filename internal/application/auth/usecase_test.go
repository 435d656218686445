package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/devyansh/etransport-api/internal/application/auth"
	"github.com/devyansh/etransport-api/internal/application/dto"
	"github.com/devyansh/etransport-api/internal/domain"
	"github.com/devyansh/etransport-api/internal/domain/entity"
	"github.com/devyansh/etransport-api/pkg/jwt"
)

type mockUserRepo struct {
	createFn        func(u *entity.User) error
	getByIDFn       func(id string) (*entity.User, error)
	getByUsernameFn func(username string) (*entity.User, error)
	getByEmailFn    func(email string) (*entity.User, error)
}

func (m *mockUserRepo) Create(u *entity.User) error {
	if m.createFn != nil {
		return m.createFn(u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(id string) (*entity.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(username string) (*entity.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(username)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*entity.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, nil
}

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "etransport-api"}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:   "inspector1",
		Email:      "inspector1@transport.gov.in",
		Password:   "s3cret-pass",
		Department: "Traffic Police",
	}
}

func TestRegisterUser_HashesPasswordAndActivates(t *testing.T) {
	var persisted *entity.User
	repo := &mockUserRepo{
		createFn: func(u *entity.User) error { persisted = u; return nil },
	}
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)
	require.NotNil(t, persisted)

	assert.NotEmpty(t, persisted.ID)
	assert.True(t, persisted.IsActive)
	assert.NotEqual(t, "s3cret-pass", persisted.PasswordHash, "the plaintext password is never stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("s3cret-pass")))

	assert.Equal(t, "inspector1", out.Username)
	assert.Equal(t, "Traffic Police", out.Department)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{
		getByUsernameFn: func(username string) (*entity.User, error) {
			return &entity.User{ID: "u-1", Username: username}, nil
		},
	}
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterUser(registerRequest())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		getByEmailFn: func(email string) (*entity.User, error) {
			return &entity.User{ID: "u-1", Email: email}, nil
		},
	}
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterUser(registerRequest())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockUserRepo{
		getByUsernameFn: func(username string) (*entity.User, error) {
			return &entity.User{
				ID:           "u-1",
				Username:     username,
				PasswordHash: string(hash),
				Department:   "Traffic Police",
				IsActive:     true,
			}, nil
		},
	}
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Username: "inspector1", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "inspector1", out.User.Username)

	userID, username, department, err := jwt.Parse(testJWT.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "inspector1", username)
	assert.Equal(t, "Traffic Police", department)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockUserRepo{
		getByUsernameFn: func(username string) (*entity.User, error) {
			return &entity.User{ID: "u-1", Username: username, PasswordHash: string(hash)}, nil
		},
	}
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Username: "inspector1", Password: "wrong"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := auth.NewAuthUseCase(&mockUserRepo{}, testJWT)

	out, err := uc.Login(dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
