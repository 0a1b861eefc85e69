package model

// Admin represents a registry administrator.
type Admin struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Principal converts the admin into an authenticated identity.
func (a *Admin) Principal() *Principal {
	return &Principal{
		ID:    a.ID,
		Role:  RoleAdmin,
		Name:  a.Name,
		Email: a.Email,
	}
}
