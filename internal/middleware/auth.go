package middleware

import (
	"strings"

	"wanderlist_backend/internal/config"
	"wanderlist_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验外部认证服务签发的令牌并取出用户身份
// 登录注册和令牌存储不在本服务范围内
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

type UserActivityRepo interface {
	Touch(userID uint, email, name string) error
}

// ActivityMiddleware 记录活跃时间，首次见到的用户顺带补建投影行
func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims != nil {
			// 异步更新，不阻塞主流程
			go repo.Touch(claims.UserID, claims.Email, claims.Name)
		}
		c.Next()
	}
}
