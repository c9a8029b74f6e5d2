package service

import (
	"context"
	"os"
	"time"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/repository/specification"
	"video-notetaking-be/internal/repository/unitofwork"
	pktNats "video-notetaking-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenExpiry = time.Hour * 24

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	publishDomainEvent(ctx, s.eventPublisher, string(entity.ActivityUserSignup), map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
	})
	publishActivity(ctx, s.publisherService, user.Id, entity.ActivityUserSignup, map[string]interface{}{
		"email": user.Email,
	})

	return &dto.SignupResponse{
		Message: "Signup successful",
		User: dto.UserDTO{
			Id:        user.Id,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check if user exists
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Compare passwords
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. Generate JWT
	expiresAt := time.Now().Add(accessTokenExpiry)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(jwtSecret())
	if err != nil {
		return nil, err
	}

	// PUBLISH EVENT
	publishDomainEvent(ctx, s.eventPublisher, string(entity.ActivityUserLogin), map[string]interface{}{
		"user_id": user.Id,
		"device":  userAgent,
		"ip":      ipAddress,
		"time":    time.Now().Format(time.RFC822),
	})

	publishActivity(ctx, s.publisherService, user.Id, entity.ActivityUserLogin, map[string]interface{}{
		"device": userAgent,
		"ip":     ipAddress,
	})

	return &dto.LoginResponse{
		Message: "Login successful",
		Session: dto.SessionTokenDTO{
			AccessToken: signedToken,
			TokenType:   "bearer",
			ExpiresIn:   int64(accessTokenExpiry.Seconds()),
			ExpiresAt:   expiresAt.Unix(),
		},
		User: dto.UserDTO{
			Id:        user.Id,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
