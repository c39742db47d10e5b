package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"recipe-app/models"
	"recipe-app/repositories"

	"github.com/golang-jwt/jwt/v5"
)

type IAuthService interface {
	Login(ctx context.Context, email string, password string) (*string, error)
	GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error)
	Logout(ctx context.Context, tokenString string) error
	CreateToken(user *models.User) (*string, error)
}

type AuthService struct {
	repository      repositories.IUserRepository
	tokenRepository repositories.ITokenRepository
	hasher          PasswordHasher
	secretKey       []byte
	tokenTTL        time.Duration
}

func NewAuthService(
	repository repositories.IUserRepository,
	tokenRepository repositories.ITokenRepository,
	hasher PasswordHasher,
	secretKey string,
	tokenTTL time.Duration,
) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		hasher:          hasher,
		secretKey:       []byte(secretKey),
		tokenTTL:        tokenTTL,
	}
}

// Login は認証に成功した場合にアクセストークンを返す。
// ユーザー不在・パスワード不一致・無効ユーザーはすべて ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUser(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !foundUser.IsActive || !s.hasher.Verify(password, foundUser.Password) {
		return nil, models.ErrInvalidCredentials
	}

	return s.CreateToken(foundUser)
}

func (s *AuthService) CreateToken(user *models.User) (*string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(user.ID), 10),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (s *AuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	// トークンがブラックリストに含まれているかチェック
	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, models.ErrTokenBlacklisted
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	user, err := s.repository.FindUserByID(ctx, uint(userID))
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}

	// 有効期限が取得できない場合は、現在時刻からTTL後を設定
	expiresAt := time.Now().Add(s.tokenTTL).Unix()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Unix()
	}

	// トークンをブラックリストに追加
	return s.tokenRepository.AddBlacklistedToken(ctx, tokenString, expiresAt)
}
