package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

type StudyGoal string

const (
	GoalAcademic StudyGoal = "academic"
	GoalGeneral  StudyGoal = "general"
)

// User 学员档案，由首次登录事件创建
// swagger:model User
type User struct {
	BaseModel
	ExternalID     string     `gorm:"size:64;index" json:"externalId"` // 身份提供方的用户标识
	Name           string     `gorm:"size:100;not null" json:"name"`
	Email          string     `gorm:"size:100;unique;not null" json:"email"`
	Password       string     `gorm:"size:100;not null" json:"-"`
	Role           UserRole   `gorm:"size:20;default:'student'" json:"role"`
	TargetScore    float64    `gorm:"default:6.5" json:"targetScore"` // 目标分数 5-9
	StudyGoal      StudyGoal  `gorm:"size:20;default:'academic'" json:"studyGoal"`
	CurrentStreak  int        `gorm:"default:0" json:"currentStreak"` // 连续学习天数
	LongestStreak  int        `gorm:"default:0" json:"longestStreak"`
	LastStudyDate  *time.Time `json:"lastStudyDate"`
	TotalStudyTime int        `gorm:"default:0" json:"totalStudyTime"` // 累计学习分钟数
	LastLogin      time.Time  `json:"lastLogin"`
	LastSeen       time.Time  `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
