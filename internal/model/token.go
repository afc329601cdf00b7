package model

// Token is the response body for a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// Principal identifies the caller of an authenticated request. Username is
// the local part of the email, recomputed per request and never persisted.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
