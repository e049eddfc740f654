package dto

// LoginDTO 登录请求
type LoginDTO struct {
	Username string `json:"username"`
}

// SessionUserDTO 登录成功后返回的用户摘要
type SessionUserDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// LoginResultDTO 登录响应
type LoginResultDTO struct {
	OK   bool           `json:"ok"`
	User SessionUserDTO `json:"user"`
}
