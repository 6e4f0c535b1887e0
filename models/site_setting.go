package models

import "time"

// SiteSetting holds the public site content the admin console edits: hero
// banner, booking notifications and the post-booking thank-you message.
type SiteSetting struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	BannerTitle     string `gorm:"size:255" json:"banner_title"`
	BannerSubtitle  string `gorm:"type:text" json:"banner_subtitle"`
	HeroImage       string `gorm:"size:255" json:"hero_image"`
	ThankYouMessage string `gorm:"type:text" json:"thank_you_message"`

	WhatsappConfirmation bool `gorm:"default:true" json:"whatsapp_confirmation"`
	ScarcityBadge        bool `gorm:"default:false" json:"scarcity_badge"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
