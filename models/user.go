package models

import (
	"time"
)

type User struct {
	ID        int       `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password" json:"-"`
	Role      int       `db:"role"`
	Status    *string   `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// 角色常量
const (
	RoleUser  = 0 // 普通用户
	RoleAdmin = 1 // 管理员
)

// IsAdmin 检查用户是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
