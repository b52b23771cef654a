package response

type AdminAuthResponse struct {
	Token string `json:"token"`
}

type AdminSessionResponse struct {
	AdminID string `json:"admin_id"`
}
