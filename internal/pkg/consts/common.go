package consts

const (
	// SessionIDKey 请求上下文中匿名会话标识的键
	SessionIDKey = "session_id"

	// SessionCookieName 客户端持久化会话标识的 Cookie 名
	SessionCookieName = "ink_session_id"

	// SessionHeaderName 非浏览器客户端携带会话标识的 Header 名
	SessionHeaderName = "X-Session-Id"

	RoleAdmin = "ADMIN"
)
