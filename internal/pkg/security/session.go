package security

import "errors"

// SessionCookieName 会话 Cookie 名称
const SessionCookieName = "session"

// SessionMaxAge 会话有效期（秒），7 天
const SessionMaxAge = 60 * 60 * 24 * 7

var ErrTokenInvalid = errors.New("token invalid")

// TokenCodec 不透明会话令牌与用户名之间的映射抽象
// 调用方只依赖该接口，后续可替换为签名/散列实现而不改动任何调用点
type TokenCodec interface {
	Issue(username string) string
	Resolve(token string) (string, error)
}

// PlainTokenCodec 明文实现：令牌就是用户名本身
// 这是有意保留的简化（不是安全属性），能读到用户名的一方即可冒充该用户
type PlainTokenCodec struct{}

func NewPlainTokenCodec() TokenCodec {
	return PlainTokenCodec{}
}

func (PlainTokenCodec) Issue(username string) string {
	return username
}

func (PlainTokenCodec) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrTokenInvalid
	}
	return token, nil
}
