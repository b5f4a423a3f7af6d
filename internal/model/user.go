package model

// User is the identity record held by the user directory. The password
// hash never leaves the process; handlers expose Public projections only.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

// PublicUser is the response-safe projection of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// UserToken is the payload returned by register and login.
type UserToken struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}
