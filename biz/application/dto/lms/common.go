package lms

// Response 通用消息响应
type Response struct {
	Message string `json:"message"`
}
