package services

import (
	"fmt"
	"strings"

	"recipe-app/constants"
	"recipe-app/models"

	"github.com/google/uuid"
)

// newImageID は差し替え可能なID生成関数（テストで固定値にする）
var newImageID = uuid.NewString

// RecipeImageFilePath returns a fresh storage path for an uploaded recipe image,
// keeping only the extension of the original filename.
func RecipeImageFilePath(_ *models.Recipe, filename string) string {
	ext := filename[strings.LastIndex(filename, ".")+1:]
	return fmt.Sprintf("%s/%s.%s", constants.RecipeImageDir, newImageID(), ext)
}
