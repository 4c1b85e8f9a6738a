package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenExpirationTime = time.Hour * 24

// AdminClaims 外部身份服务签发的管理端 Token 载荷
type AdminClaims struct {
	Subject string   `json:"sub_name"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}
