package entity

// Well-known role names created by the seeder.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type Role struct {
	ID       string `json:"id"`
	RoleName string `json:"role_name"`
}
