package auth

import (
	"context"
	"testing"

	"resort-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestRegister_NewUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewService(repo, stubTokenIssuer{})
	u, token, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret1",
		FullName: "Alice A",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token", token)
	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, domain.RoleGuest, u.Role)
	assert.True(t, u.IsActive)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(true, nil)

	svc := NewService(repo, stubTokenIssuer{})
	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
		FullName: "Alice A",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	repo.AssertNotCalled(t, "Create")
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(new(MockUserRepository), stubTokenIssuer{})
	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "123",
		FullName: "Bob",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminCreateUser_StaffRole(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "frontdesk", "desk@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewService(repo, stubTokenIssuer{})
	u, err := svc.AdminCreateUser(context.Background(), AdminCreateUserRequest{
		Username: "frontdesk",
		Email:    "Desk@Example.com",
		Password: "secret1",
		FullName: "Front Desk",
		Role:     "staff",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, u.Role)
	assert.True(t, u.IsActive)
	repo.AssertExpectations(t)
}

func TestAdminCreateUser_Duplicate(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "frontdesk", "desk@example.com").Return(true, nil)

	svc := NewService(repo, stubTokenIssuer{})
	_, err := svc.AdminCreateUser(context.Background(), AdminCreateUserRequest{
		Username: "frontdesk",
		Email:    "desk@example.com",
		Password: "secret1",
		FullName: "Front Desk",
		Role:     "staff",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	repo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         domain.RoleGuest,
		IsActive:     true,
	}, nil)

	svc := NewService(repo, stubTokenIssuer{})
	u, token, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret1"})

	assert.NoError(t, err)
	assert.Equal(t, "token", token)
	assert.Equal(t, int64(1), u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	svc := NewService(repo, stubTokenIssuer{})
	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, stubTokenIssuer{})
	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: string(hash),
		IsActive:     false,
	}, nil)

	svc := NewService(repo, stubTokenIssuer{})
	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret1"})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}
