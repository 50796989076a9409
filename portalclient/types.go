package portalclient

// Envelope is the response wrapper shared by every portal endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SiteSettings mirrors the server's site settings record.
type SiteSettings struct {
	SiteName       string `json:"site_name"`
	SiteTitle      string `json:"site_title"`
	PageTitle      string `json:"page_title"`
	Description    string `json:"description"`
	WelcomeMessage string `json:"welcome_message"`
	ContactPhone   string `json:"contact_phone"`
	ContactAddress string `json:"contact_address"`
	AdminEmail     string `json:"admin_email"`
}

// Banner is one entry of the rotating banner strip.
type Banner struct {
	Position int    `json:"position"`
	Type     string `json:"type"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	BgColor  string `json:"bg_color,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	IsActive bool   `json:"is_active"`
}

// BannerSettings mirrors the server's banner configuration.
type BannerSettings struct {
	Banners         []Banner `json:"banners"`
	AutoSlide       bool     `json:"auto_slide"`
	SlideIntervalMS int      `json:"slide_interval"`
}

// AdminUser is the operator identity returned by the admin login.
type AdminUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// VoucherGrant is the session granted by a successful voucher redemption.
type VoucherGrant struct {
	Code            string `json:"code"`
	DurationMinutes int    `json:"duration_minutes"`
	SessionEndsAt   string `json:"session_ends_at"`
}

// DefaultSiteSettings is the built-in last-resort settings record served when
// both the portal and the local cache are unavailable.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:       "Myesnet.id",
		SiteTitle:      "Internet Provider Terpercaya",
		PageTitle:      "Myesnet.id - Captive Portal",
		Description:    "Internet Provider Terpercaya untuk kebutuhan internet Anda",
		WelcomeMessage: "Selamat datang di layanan internet Myesnet.id",
		ContactPhone:   "+62 812-3456-7890",
		ContactAddress: "Jl. Internet Sehat No. 123\nKota Digital",
		AdminEmail:     "admin@myesnet.id",
	}
}

// DefaultBannerSettings is the built-in banner fallback.
func DefaultBannerSettings() BannerSettings {
	return BannerSettings{
		Banners: []Banner{
			{
				Position: 0,
				Type:     "text",
				Title:    "STOP JUDI ONLINE",
				Subtitle: "Judi Online Merusak Masa Depan Anda",
				BgColor:  "bg-red-500",
				IsActive: true,
			},
		},
		AutoSlide:       true,
		SlideIntervalMS: 3000,
	}
}
