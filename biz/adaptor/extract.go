package adaptor

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus-lms/biz/application/dto/basic"
	"campus-lms/biz/infrastructure/config"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cast"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractUserMeta 从 Authorization 头解出请求主体，解析失败时返回空 meta
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	tokenString := strings.TrimPrefix(string(c.GetHeader("Authorization")), "Bearer ")
	meta, err := parseUserMeta(tokenString, config.GetConfig().Auth.SecretKey)
	if err != nil {
		return
	}
	return meta
}

func parseUserMeta(tokenString, secret string) (*basic.UserMeta, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return &basic.UserMeta{
		UserId: cast.ToString(claims["userId"]),
		Role:   cast.ToString(claims["role"]),
	}, nil
}

// GenerateJwtToken 签发HS256令牌，携带用户id与角色
func GenerateJwtToken(userID, role string) (string, int64, error) {
	return signJwtToken(userID, role, config.GetConfig().Auth.SecretKey, config.GetConfig().Auth.AccessExpire)
}

func signJwtToken(userID, role, secret string, accessExpire int64) (string, int64, error) {
	iat := time.Now().Unix()
	exp := iat + accessExpire
	claims := jwt.MapClaims{
		"exp":    exp,
		"iat":    iat,
		"userId": userID,
		"role":   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}
