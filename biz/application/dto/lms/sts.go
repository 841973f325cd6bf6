package lms

type UploadURLReq struct {
	Filename string `json:"filename"`
	FileType string `json:"fileType"`
}

type UploadURLResp struct {
	UploadURL string `json:"uploadUrl"` // 预签名PUT地址
	FileURL   string `json:"fileUrl"`   // 上传完成后的外链
	ExpiresIn int64  `json:"expiresIn"`
}
