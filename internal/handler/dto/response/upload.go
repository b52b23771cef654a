package response

type UploadResponse struct {
	URLs []string `json:"urls"`
}
