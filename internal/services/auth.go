package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/datatypes"

	"github.com/yungbote/petpal-backend/internal/data/repos"
	"github.com/yungbote/petpal-backend/internal/platform/apierr"
	"github.com/yungbote/petpal-backend/internal/platform/dbctx"
	"github.com/yungbote/petpal-backend/internal/platform/logger"
)

type LoginResult struct {
	ID               int64             `json:"id"`
	Email            string            `json:"email"`
	Nickname         string            `json:"nickname"`
	Bio              string            `json:"bio"`
	GoogleRegistered int               `json:"google_registered"`
	Level            int               `json:"level"`
	Settings         map[string]string `json:"settings"`
	PetStats         datatypes.JSONMap `json:"pet_stats"`
	Token            string            `json:"token"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	IssueSessionToken(userID int64) (string, error)
	ParseSessionToken(tokenString string) (int64, error)
	GetSessionTTL() time.Duration
}

type JWTClaims struct {
	jwt.RegisteredClaims
}

type authService struct {
	log         *logger.Logger
	userRepo    repos.UserRepo
	settings    SettingsService
	credentials CredentialStore
	jwtSecret   []byte
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewAuthService(
	log *logger.Logger,
	userRepo repos.UserRepo,
	settings SettingsService,
	credentials CredentialStore,
	jwtSecretKey string,
	sessionTTL time.Duration,
) AuthService {
	return &authService{
		log:         log.With("service", "AuthService"),
		userRepo:    userRepo,
		settings:    settings,
		credentials: credentials,
		jwtSecret:   []byte(jwtSecretKey),
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

func (as *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	dbc := dbctx.From(ctx)
	user, err := as.userRepo.GetByEmail(dbc, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !as.credentials.Verify(user.Password, password) {
		return nil, apierr.Unauthorized("invalid_credentials", errInvalidCredentials.Error())
	}

	settings, err := as.settings.Map(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	progress, perr := ParseLearningProgress(user.LearningProgress)
	if perr != nil {
		as.log.Warn("Ignoring unreadable learning progress", "user_id", user.ID, "error", perr)
	}

	token, err := as.IssueSessionToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &LoginResult{
		ID:               user.ID,
		Email:            user.Email,
		Nickname:         user.Nickname,
		Bio:              user.Bio,
		GoogleRegistered: user.GoogleRegistered,
		Level:            user.Level,
		Settings:         settings,
		PetStats:         progress,
		Token:            token,
	}, nil
}

func (as *authService) IssueSessionToken(userID int64) (string, error) {
	now := as.now()
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(as.jwtSecret)
}

func (as *authService) ParseSessionToken(tokenString string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return as.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token: %w", err)
	}
	return userID, nil
}

func (as *authService) GetSessionTTL() time.Duration {
	return as.sessionTTL
}
