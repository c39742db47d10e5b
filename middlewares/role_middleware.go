package middlewares

import (
	"log"
	"net/http"

	"recipe-app/constants"
	"recipe-app/models"

	"github.com/gin-gonic/gin"
)

// RequireStaff スタッフ（is_staff）ユーザーのみアクセスを許可するミドルウェア
// AuthMiddlewareの後に使用することを想定（ctxに"user"が設定されている必要がある）
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get(constants.ContextUserKey)
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// トークンではなくデータベースから取得した最新のフラグで判定する
		if !userModel.IsStaff && !userModel.IsSuperuser {
			log.Printf("RequireStaff: access denied for user id=%d", userModel.ID)
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}
