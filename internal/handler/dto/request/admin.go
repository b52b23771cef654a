package request

type AdminLoginRequest struct {
	AdminID       string `json:"adminId" binding:"required"`
	AdminPassword string `json:"adminPassword" binding:"required"`
}
