package constants

// コンテキストキー
const (
	ContextUserKey = "user"
)

// 画像アップロード
const (
	RecipeImageDir  = "uploads/recipe"
	RecipeImageForm = "image"
	MediaURLPrefix  = "/media"

	// 10MB
	RecipeImageMaxBytes = 10 << 20
)

// エラーメッセージ
const (
	ErrNotFound           = "Not found"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
	ErrEmailRequired      = "Users must have an email address"
	ErrEmailAlreadyExists = "Email already exists"
	ErrInvalidCredentials = "Unable to authenticate with provided credentials"
	ErrTokenBlacklisted   = "token is blacklisted"
	ErrInvalidToken       = "Invalid token"
)
