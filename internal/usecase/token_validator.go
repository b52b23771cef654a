package usecase

// TokenValidator is the narrow slice of AuthUseCase the auth middleware
// needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (userID string, err error)
}
