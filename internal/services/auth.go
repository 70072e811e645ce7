package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/requestdata"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/utils"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// login failures never reveal which of the two it was.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

type AuthConfig struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type RegisterInput struct {
	Email      string
	Password   string
	FullName   string
	Department string
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*types.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*types.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context) error
	// SetContextFromToken validates a bearer access token and attaches the
	// caller's identity to the returned context.
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  repos.UserRepo
	tokenRepo repos.UserTokenRepo
	cfg       AuthConfig
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, tokenRepo repos.UserTokenRepo, cfg AuthConfig) AuthService {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 30 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &authService{
		db:        db,
		log:       log.With("service", "AuthService"),
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

func (as *authService) Register(ctx context.Context, input RegisterInput) (*types.User, *TokenPair, error) {
	email := utils.NormalizeEmail(input.Email)
	if email == "" {
		return nil, nil, fmt.Errorf("email is required: %w", ErrValidation)
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, nil, fmt.Errorf("full_name is required: %w", ErrValidation)
	}
	exists, err := as.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, nil, fmt.Errorf("email already registered: %w", ErrValidation)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}
	user := &types.User{
		Email:      email,
		Password:   hashed,
		FullName:   strings.TrimSpace(input.FullName),
		Department: strings.TrimSpace(input.Department),
		Role:       types.RoleUser,
		IsActive:   true,
	}
	created, err := as.userRepo.Create(ctx, nil, []*types.User{user})
	if err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}
	user = created[0]

	pair, err := as.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	as.log.Info("User registered", "user_id", user.ID, "department", user.Department)
	return user, pair, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*types.User, *TokenPair, error) {
	user, err := as.userRepo.GetByEmail(ctx, nil, utils.NormalizeEmail(email))
	if err != nil {
		as.log.Warn("Login failed: unknown email")
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, fmt.Errorf("account is deactivated")
	}
	if !utils.CheckPassword(user.Password, password) {
		as.log.Warn("Login failed: bad password", "user_id", user.ID)
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := as.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (as *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := as.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	row, err := as.tokenRepo.GetByRefreshToken(ctx, nil, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh token not recognized")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID != row.UserID {
		return nil, fmt.Errorf("refresh token not recognized")
	}
	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil || len(users) == 0 {
		return nil, fmt.Errorf("user not found")
	}
	user := users[0]
	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	// Rotate: the old pair stops working the moment a new one is issued.
	if err := as.tokenRepo.DeleteByUserID(ctx, nil, userID); err != nil {
		return nil, fmt.Errorf("revoke tokens: %w", err)
	}
	return as.issueTokens(ctx, user)
}

func (as *authService) Logout(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("request data not set in context")
	}
	if err := as.tokenRepo.DeleteByUserID(ctx, nil, rd.UserID); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims, err := as.parseToken(tokenString, tokenTypeAccess)
	if err != nil {
		return ctx, err
	}
	// Tokens are server-side rows too, so logout actually revokes.
	if _, err := as.tokenRepo.GetByAccessToken(ctx, nil, tokenString); err != nil {
		return ctx, fmt.Errorf("token revoked")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid token subject")
	}
	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		Role:        claims.Role,
	}), nil
}

type tokenClaims struct {
	Role      string `json:"role"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

func (as *authService) issueTokens(ctx context.Context, user *types.User) (*TokenPair, error) {
	now := time.Now().UTC()
	accessExpiry := now.Add(as.cfg.AccessTTL)

	access, err := as.signToken(user, tokenTypeAccess, now, accessExpiry)
	if err != nil {
		return nil, err
	}
	refresh, err := as.signToken(user, tokenTypeRefresh, now, now.Add(as.cfg.RefreshTTL))
	if err != nil {
		return nil, err
	}

	if _, err := as.tokenRepo.Create(ctx, nil, &types.UserToken{
		UserID:       user.ID,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry,
	}); err != nil {
		return nil, fmt.Errorf("persist tokens: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: accessExpiry}, nil
}

func (as *authService) signToken(user *types.User, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		Role:      string(user.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (as *authService) parseToken(tokenString, wantType string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("wrong token type")
	}
	return claims, nil
}
