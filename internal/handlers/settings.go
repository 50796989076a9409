package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/hotspot/internal/models"
)

// SettingsHandler manages the singleton site and banner settings rows.
type SettingsHandler struct {
	db *gorm.DB
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

const (
	defaultSiteName       = "Myesnet.id"
	defaultSiteTitle      = "Internet Provider Terpercaya"
	defaultPageTitle      = "Myesnet.id - Captive Portal"
	defaultDescription    = "Internet Provider Terpercaya untuk kebutuhan internet Anda"
	defaultWelcomeMessage = "Selamat datang di layanan internet Myesnet.id"
	defaultContactPhone   = "+62 812-3456-7890"
	defaultContactAddress = "Jl. Internet Sehat No. 123\nKota Digital"
	defaultAdminEmail     = "admin@myesnet.id"

	defaultSlideIntervalMS = 3000
)

func applySiteDefaults(settings *models.SiteSettings) {
	if settings == nil {
		return
	}
	if strings.TrimSpace(settings.SiteName) == "" {
		settings.SiteName = defaultSiteName
	}
	if strings.TrimSpace(settings.SiteTitle) == "" {
		settings.SiteTitle = defaultSiteTitle
	}
	if strings.TrimSpace(settings.PageTitle) == "" {
		settings.PageTitle = defaultPageTitle
	}
	if strings.TrimSpace(settings.Description) == "" {
		settings.Description = defaultDescription
	}
	if strings.TrimSpace(settings.WelcomeMessage) == "" {
		settings.WelcomeMessage = defaultWelcomeMessage
	}
	if strings.TrimSpace(settings.ContactPhone) == "" {
		settings.ContactPhone = defaultContactPhone
	}
	if strings.TrimSpace(settings.ContactAddress) == "" {
		settings.ContactAddress = defaultContactAddress
	}
	if strings.TrimSpace(settings.AdminEmail) == "" {
		settings.AdminEmail = defaultAdminEmail
	}
}

func validateSiteSettings(input *models.SiteSettings) error {
	if input == nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.AdminEmail) != "" {
		if _, err := mail.ParseAddress(input.AdminEmail); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
		}
	}
	return nil
}

// GetSiteSettings returns the current site settings (public endpoint).
func (h *SettingsHandler) GetSiteSettings(c *fiber.Ctx) error {
	var settings models.SiteSettings
	result := h.db.First(&settings)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First load before any admin save: serve defaults.
			defaults := models.SiteSettings{}
			applySiteDefaults(&defaults)
			return c.JSON(fiber.Map{"success": true, "data": defaults})
		}
		return result.Error
	}

	applySiteDefaults(&settings)
	return c.JSON(fiber.Map{"success": true, "data": settings})
}

// UpdateSiteSettings creates or updates the site settings row (admin
// endpoint). Fields are copied explicitly so client payloads cannot clobber
// immutable columns.
func (h *SettingsHandler) UpdateSiteSettings(c *fiber.Ctx) error {
	var input models.SiteSettings
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validateSiteSettings(&input); err != nil {
		return err
	}

	var existing models.SiteSettings
	result := h.db.First(&existing)

	if result.Error == gorm.ErrRecordNotFound {
		if err := h.db.Create(&input).Error; err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": input})
	} else if result.Error != nil {
		return result.Error
	}

	existing.SiteName = input.SiteName
	existing.SiteTitle = input.SiteTitle
	existing.PageTitle = input.PageTitle
	existing.Description = input.Description
	existing.WelcomeMessage = input.WelcomeMessage
	existing.ContactPhone = input.ContactPhone
	existing.ContactAddress = input.ContactAddress
	existing.AdminEmail = input.AdminEmail

	if err := h.db.Save(&existing).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": existing})
}

// GetBannerSettings returns the banner sequence and rotation parameters
// (public endpoint).
func (h *SettingsHandler) GetBannerSettings(c *fiber.Ctx) error {
	var settings models.BannerSettings
	result := h.db.Preload("Banners", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).First(&settings)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return c.JSON(fiber.Map{"success": true, "data": defaultBannerSettings()})
		}
		return result.Error
	}

	return c.JSON(fiber.Map{"success": true, "data": settings})
}

type bannerInput struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	BgColor  string `json:"bg_color"`
	ImageURL string `json:"image_url"`
	IsActive bool   `json:"is_active"`
}

type bannerSettingsInput struct {
	Banners         []bannerInput `json:"banners"`
	AutoSlide       bool          `json:"auto_slide"`
	SlideIntervalMS int           `json:"slide_interval"`
}

// UpdateBannerSettings replaces the banner sequence wholesale (admin
// endpoint). The submitted order becomes the rotation order.
func (h *SettingsHandler) UpdateBannerSettings(c *fiber.Ctx) error {
	var input bannerSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	for _, b := range input.Banners {
		switch b.Type {
		case models.BannerTypeText:
			if strings.TrimSpace(b.Title) == "" {
				return fiber.NewError(fiber.StatusBadRequest, "text banner requires a title")
			}
		case models.BannerTypeImage:
			if strings.TrimSpace(b.ImageURL) == "" {
				return fiber.NewError(fiber.StatusBadRequest, "image banner requires an image url")
			}
		default:
			return fiber.NewError(fiber.StatusBadRequest, "banner type must be text or image")
		}
	}

	if input.SlideIntervalMS <= 0 {
		input.SlideIntervalMS = defaultSlideIntervalMS
	}

	var settings models.BannerSettings
	err := h.db.Transaction(func(tx *gorm.DB) error {
		result := tx.First(&settings)
		if result.Error == gorm.ErrRecordNotFound {
			settings = models.BannerSettings{}
			if err := tx.Create(&settings).Error; err != nil {
				return err
			}
		} else if result.Error != nil {
			return result.Error
		}

		settings.AutoSlide = input.AutoSlide
		settings.SlideIntervalMS = input.SlideIntervalMS
		if err := tx.Save(&settings).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Banner{}, "banner_settings_id = ?", settings.ID).Error; err != nil {
			return err
		}

		settings.Banners = make([]models.Banner, 0, len(input.Banners))
		for i, b := range input.Banners {
			banner := models.Banner{
				BannerSettingsID: settings.ID,
				Position:         i,
				Type:             b.Type,
				Title:            b.Title,
				Subtitle:         b.Subtitle,
				BgColor:          b.BgColor,
				ImageURL:         b.ImageURL,
				IsActive:         b.IsActive,
			}
			if err := tx.Create(&banner).Error; err != nil {
				return err
			}
			settings.Banners = append(settings.Banners, banner)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": settings})
}

func defaultBannerSettings() models.BannerSettings {
	return models.BannerSettings{
		Banners: []models.Banner{
			{
				Position: 0,
				Type:     models.BannerTypeText,
				Title:    "STOP JUDI ONLINE",
				Subtitle: "Judi Online Merusak Masa Depan Anda",
				BgColor:  "bg-red-500",
				IsActive: true,
			},
		},
		AutoSlide:       true,
		SlideIntervalMS: defaultSlideIntervalMS,
	}
}
