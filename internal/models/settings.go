package models

import "github.com/google/uuid"

// SiteSettings stores the portal's display strings managed via the admin
// panel. There should be only one row (singleton pattern).
type SiteSettings struct {
	BaseModel
	SiteName       string `json:"site_name"`
	SiteTitle      string `json:"site_title"`
	PageTitle      string `json:"page_title"`
	Description    string `json:"description"`
	WelcomeMessage string `json:"welcome_message"`
	ContactPhone   string `json:"contact_phone"`
	ContactAddress string `json:"contact_address"`
	AdminEmail     string `json:"admin_email"`
}

// Banner types.
const (
	BannerTypeText  = "text"
	BannerTypeImage = "image"
)

// Banner is one entry of the portal's rotating banner strip. Position is the
// display and rotation order.
type Banner struct {
	BaseModel
	BannerSettingsID uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Position         int       `json:"position"`
	Type             string    `json:"type"`
	Title            string    `json:"title,omitempty"`
	Subtitle         string    `json:"subtitle,omitempty"`
	BgColor          string    `json:"bg_color,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	IsActive         bool      `json:"is_active"`
}

// BannerSettings is the singleton parent of the banner sequence plus the
// rotation parameters.
type BannerSettings struct {
	BaseModel
	Banners         []Banner `gorm:"foreignKey:BannerSettingsID;constraint:OnDelete:CASCADE" json:"banners"`
	AutoSlide       bool     `json:"auto_slide"`
	SlideIntervalMS int      `json:"slide_interval"`
}
