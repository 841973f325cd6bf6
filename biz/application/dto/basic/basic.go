package basic

// UserMeta 认证中间层解出的请求主体，业务层直接信任
type UserMeta struct {
	UserId string `json:"userId" mapstructure:"userId"`
	Role   string `json:"role" mapstructure:"role"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetRole() string {
	if m == nil {
		return ""
	}
	return m.Role
}

type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty" query:"page"`
	Limit *int64 `json:"limit,omitempty" query:"limit"`
}

// Response 通用消息响应
type Response struct {
	Message string `json:"message"`
}
