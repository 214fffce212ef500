package backend

import "context"

// Login exchanges credentials for a token and stores it (plus the org id) in
// the session, mirroring what the login page wrote to localStorage.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.post(ctx, "/api/auth/login", payload, &result); err != nil {
		return LoginResult{}, err
	}
	if c.session != nil {
		if err := c.session.SetToken(ctx, result.Token); err != nil {
			return LoginResult{}, err
		}
		if err := c.session.SetOrgID(ctx, result.User.OrgID); err != nil {
			return LoginResult{}, err
		}
	}
	return result, nil
}

// Me validates the current token and returns the operator profile. The auth
// gate polls this; an ErrUnauthorized result means the session was cleared.
func (c *Client) Me(ctx context.Context) (AuthUser, error) {
	var user AuthUser
	if err := c.get(ctx, "/api/auth/me", &user); err != nil {
		return AuthUser{}, err
	}
	return user, nil
}
