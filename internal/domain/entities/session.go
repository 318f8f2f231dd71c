package entities

// Session holds the credentials issued at login
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	DisplayName  string `json:"display_name"`
}

// Empty reports whether no access token is held
func (s Session) Empty() bool {
	return s.AccessToken == ""
}

// Ptr returns a pointer to v, for filling the optional fields of input types
func Ptr[T any](v T) *T {
	return &v
}
