package middleware

import (
	"Inkwell/internal/pkg/consts"
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 会话标识长期有效，不设轮换
const sessionCookieMaxAge = 10 * 365 * 24 * 3600

// SessionMiddleware 解析匿名会话标识并注入 Context。
// 优先取 Header，其次取 Cookie；都没有则生成新的标识并种下 Cookie。
// 没有失败路径：丢失 Cookie 的客户端只是退化为一个全新的会话。
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(consts.SessionHeaderName)
		if sessionID == "" {
			sessionID, _ = c.Cookie(consts.SessionCookieName)
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(consts.SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(consts.SessionIDKey, sessionID)
		newCtx := context.WithValue(c.Request.Context(), consts.SessionIDKey, sessionID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
