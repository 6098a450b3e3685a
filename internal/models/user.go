package models

const (
	RoleCitizen = "citizen"
	RoleOfficer = "officer"
)

type User struct {
	ID          int64  `json:"-" db:"id"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
	Password    string `json:"password,omitempty" db:"password_hash"`
	Role        string `json:"role" db:"role"`
}
