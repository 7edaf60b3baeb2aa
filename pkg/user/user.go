package user

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Role        Role
	Settings    Settings
}

type Settings struct {
	Locale   string
	Currency string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
