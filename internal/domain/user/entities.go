package user

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Table: users (owned by the account layer; read only here)
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:255;not null"`
	StudentID string    `gorm:"column:student_id;size:50"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex"`
	Role      Role      `gorm:"column:role;size:20;not null;default:'user'"`
	Active    bool      `gorm:"column:active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Actor is the authenticated caller handed in by the session layer.
type Actor struct {
	UserID uint64
	Name   string
	Role   Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
