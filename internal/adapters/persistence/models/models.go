package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Organization tables
// ============================================================

// Area represents the areas table. Areas are pure grouping entities;
// workers reference them and nothing mutates them after seeding.
type Area struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Area) TableName() string {
	return "areas"
}

// Worker represents the workers table
type Worker struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	FullName     string         `gorm:"size:150;not null" json:"full_name"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	Role         string         `gorm:"size:20;not null;default:'TRABAJADOR'" json:"role"`
	AreaID       uint           `gorm:"not null;index" json:"area_id"`
	LeaveBalance float64        `gorm:"type:decimal(4,1);not null" json:"leave_balance"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Area *Area `gorm:"foreignKey:AreaID" json:"area,omitempty"`
}

func (Worker) TableName() string {
	return "workers"
}

// WorkerResponse DTO
type WorkerResponse struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	AreaID       uint      `json:"area_id"`
	AreaName     string    `json:"area_name,omitempty"`
	LeaveBalance float64   `json:"leave_balance"`
	CreatedAt    time.Time `json:"created_at"`
}

func (w *Worker) ToResponse() *WorkerResponse {
	resp := &WorkerResponse{
		ID:           w.ID,
		Email:        w.Email,
		FullName:     w.FullName,
		Role:         w.Role,
		AreaID:       w.AreaID,
		LeaveBalance: w.LeaveBalance,
		CreatedAt:    w.CreatedAt,
	}
	if w.Area != nil {
		resp.AreaName = w.Area.Name
	}
	return resp
}

// ============================================================
// Request lifecycle tables
// ============================================================

// LeaveRequest represents the leave_requests table. WorkerID is fixed at
// creation; ApproverID stays null until the request is decided and is
// written exactly once, inside the decision transaction.
type LeaveRequest struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Type       string     `gorm:"size:20;not null" json:"type"`
	StartDate  time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate    time.Time  `gorm:"type:date;not null" json:"end_date"`
	Shift      string     `gorm:"size:20;not null" json:"shift"`
	Reason     *string    `gorm:"size:100" json:"reason,omitempty"`
	Status     string     `gorm:"size:20;not null;default:'PENDIENTE';index" json:"status"`
	WorkerID   uint       `gorm:"not null;index" json:"worker_id"`
	ApproverID *uint      `json:"approver_id"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Worker   *Worker `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	Approver *Worker `gorm:"foreignKey:ApproverID" json:"approver,omitempty"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// MultiDay reports whether the request spans more than one calendar day
func (r *LeaveRequest) MultiDay() bool {
	return !r.StartDate.Equal(r.EndDate)
}

// LeaveRequestResponse DTO
type LeaveRequestResponse struct {
	ID           uint      `json:"id"`
	Type         string    `json:"type"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Shift        string    `json:"shift"`
	Reason       *string   `json:"reason,omitempty"`
	Status       string    `json:"status"`
	WorkerID     uint      `json:"worker_id"`
	WorkerName   string    `json:"worker_name,omitempty"`
	AreaName     string    `json:"area_name,omitempty"`
	ApproverID   *uint     `json:"approver_id"`
	ApproverName string    `json:"approver_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *LeaveRequest) ToResponse() *LeaveRequestResponse {
	resp := &LeaveRequestResponse{
		ID:         r.ID,
		Type:       r.Type,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Shift:      r.Shift,
		Reason:     r.Reason,
		Status:     r.Status,
		WorkerID:   r.WorkerID,
		ApproverID: r.ApproverID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Worker != nil {
		resp.WorkerName = r.Worker.FullName
		if r.Worker.Area != nil {
			resp.AreaName = r.Worker.Area.Name
		}
	}
	if r.Approver != nil {
		resp.ApproverName = r.Approver.FullName
	}
	return resp
}

// ============================================================
// Auth tables
// ============================================================

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	WorkerID  uint       `gorm:"index;not null" json:"worker_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`

	Worker Worker `gorm:"foreignKey:WorkerID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Area{},
		&Worker{},
		&LeaveRequest{},
		&RefreshToken{},
	)
}
