package model

import "time"

type Role string

const (
	RoleCustomer     Role = "CUSTOMER"
	RoleManager      Role = "MANAGER"
	RoleDeliveryCrew Role = "DELIVERY_CREW"
	RoleUnknown      Role = ""
)

// トークンのrole claimをRoleへ変換する。
// 判定順は customer → delivery crew → manager。どれでもなければUnknown。
func RoleFromString(s string) Role {
	switch s {
	case string(RoleCustomer):
		return RoleCustomer
	case string(RoleDeliveryCrew):
		return RoleDeliveryCrew
	case string(RoleManager):
		return RoleManager
	default:
		return RoleUnknown
	}
}

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'CUSTOMER'"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
