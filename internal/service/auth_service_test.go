package service

import (
	"context"
	"testing"
	"time"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	user    *entity.User
	created []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.created = append(r.created, user)
	return nil
}
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.user == nil {
		return nil, nil
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.ByEmail); ok && r.user.Email != s.Email {
			return nil, nil
		}
	}
	return r.user, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignup(t *testing.T) {
	uow := &fakeUow{users: &fakeUserRepo{}}
	svc := NewAuthService(&fakeUowFactory{uow: uow}, nil, nil)

	res, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "new@example.com",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "Signup successful", res.Message)
	assert.Equal(t, "new@example.com", res.User.Email)
	require.Len(t, uow.users.created, 1)

	// Stored hash must verify against the original password
	stored := uow.users.created[0]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("123456")))
}

func TestSignupEmailTaken(t *testing.T) {
	uow := &fakeUow{users: &fakeUserRepo{user: &entity.User{
		Id:    uuid.New(),
		Email: "taken@example.com",
	}}}
	svc := NewAuthService(&fakeUowFactory{uow: uow}, nil, nil)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "taken@example.com",
		Password: "123456",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userId := uuid.New()
	uow := &fakeUow{users: &fakeUserRepo{user: &entity.User{
		Id:           userId,
		Email:        "demo@example.com",
		PasswordHash: hashPassword(t, "123456"),
		CreatedAt:    time.Now(),
	}}}
	svc := NewAuthService(&fakeUowFactory{uow: uow}, nil, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "demo@example.com",
		Password: "123456",
	}, "127.0.0.1", "go-test")
	require.NoError(t, err)

	assert.Equal(t, "Login successful", res.Message)
	assert.Equal(t, "bearer", res.Session.TokenType)
	assert.Equal(t, int64(86400), res.Session.ExpiresIn)
	assert.Equal(t, "demo@example.com", res.User.Email)

	// The access token must carry the user id and verify with the secret
	token, err := jwt.Parse(res.Session.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, userId.String(), claims["user_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	uow := &fakeUow{users: &fakeUserRepo{user: &entity.User{
		Id:           uuid.New(),
		Email:        "demo@example.com",
		PasswordHash: hashPassword(t, "123456"),
	}}}
	svc := NewAuthService(&fakeUowFactory{uow: uow}, nil, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "demo@example.com",
		Password: "wrong",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	uow := &fakeUow{users: &fakeUserRepo{}}
	svc := NewAuthService(&fakeUowFactory{uow: uow}, nil, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "123456",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
