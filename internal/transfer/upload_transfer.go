package transfer

type UploadResult struct {
	Success   bool   `json:"success"`
	PublicURL string `json:"publicUrl"`
	Filename  string `json:"filename"`
}

type ProcessRequest struct {
	Filename string `json:"filename"`
	UserID   string `json:"userId"`
}
