package model

type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "Admin"
	AdminRoleSuperAdmin AdminRole = "Super Admin"
)

// Admin / Super Admin 以外は管理画面に入れない
func (r AdminRole) IsValid() bool {
	return r == AdminRoleAdmin || r == AdminRoleSuperAdmin
}

type Admin struct {
	Document
	FirstName    string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         AdminRole `gorm:"type:varchar(20);not null;default:'Admin'" json:"role"`
}

func (a Admin) FullName() string {
	return a.FirstName + " " + a.LastName
}
