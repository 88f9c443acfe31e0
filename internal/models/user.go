package models

// User is a registered customer account. PasswordHash is a bcrypt hash;
// it is persisted by the file store but handlers only ever expose the
// Public projection.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"password,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// PublicUser is the account shape returned by auth endpoints.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	IsAdmin   bool   `json:"isAdmin,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Public strips the credential fields from a user record.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
