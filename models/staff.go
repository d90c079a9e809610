package models

import "time"

type StaffMember struct {
	ID                uint             `json:"id" gorm:"primaryKey"`
	FullName          string           `json:"full_name"`
	Role              string           `json:"role"`
	Description       string           `json:"description"`
	ImageURL          string           `json:"image_url"`
	YearsOfExperience int              `json:"years_of_experience"`
	IsActive          bool             `json:"is_active" gorm:"default:true"`
	SortOrder         int              `json:"sort_order"`
	InstagramURL      string           `json:"instagram_url"`
	FacebookURL       string           `json:"facebook_url"`
	TikTokURL         string           `json:"tiktok_url"`
	Specializations   []Specialization `json:"specializations,omitempty" gorm:"foreignKey:StaffMemberID"`
	Gallery           []GalleryImage   `json:"gallery,omitempty" gorm:"foreignKey:StaffMemberID"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

type Specialization struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	StaffMemberID uint   `json:"staff_member_id" gorm:"index"`
	Name          string `json:"name"`
	SortOrder     int    `json:"sort_order"`
}

type GalleryImage struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	StaffMemberID uint   `json:"staff_member_id" gorm:"index"`
	ImageURL      string `json:"image_url"`
	Caption       string `json:"caption"`
	SortOrder     int    `json:"sort_order"`
}
