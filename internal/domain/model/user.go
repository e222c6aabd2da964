package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"` // Not exposed
	Roles        []string `json:"roles"`
}

// HasRole reports whether the role tag is explicitly present. Role sets are
// stored exactly as assigned; admin does not imply user.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
