package api

import "context"

// User is the profile the login endpoint returns alongside the token pair.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResult is the session payload issued by POST /auth/login/.
type LoginResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair. It lives on the public
// variant because there is no session yet; invalid credentials come back as
// an *Error carrying the server's message.
func (c *Public) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	if err := c.postJSON(ctx, "/auth/login/", loginRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
