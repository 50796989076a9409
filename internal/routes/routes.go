package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/hotspot/internal/config"
	"github.com/example/hotspot/internal/handlers"
	"github.com/example/hotspot/internal/middleware"
	"github.com/example/hotspot/internal/validator"
)

// Register wires up all HTTP routes. ctx bounds the background goroutines
// started here; cancel it on shutdown.
func Register(ctx context.Context, app *fiber.App, db *gorm.DB, cfg *config.Config) {
	validate := validator.New()

	authHandler := handlers.NewAuthHandler(db, cfg)
	voucherHandler := handlers.NewVoucherHandler(db)
	memberHandler := handlers.NewMemberHandler(db, validate)
	settingsHandler := handlers.NewSettingsHandler(db)
	uploadHandler := handlers.NewUploadHandler(cfg)
	adminHandler := handlers.NewAdminHandler(db)

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	loginLimiter.StartCleanup(ctx, 5*time.Minute)

	api := app.Group("/api")

	// Portal logins (public, rate limited)
	auth := api.Group("/auth", loginLimiter.Middleware())
	auth.Post("/admin/login", authHandler.AdminLogin)
	auth.Post("/voucher/login", authHandler.VoucherLogin)
	auth.Post("/member/login", authHandler.MemberLogin)

	// Settings reads are public: the guest page needs them before login.
	api.Get("/settings/site", settingsHandler.GetSiteSettings)
	api.Get("/settings/banner", settingsHandler.GetBannerSettings)

	// Uploaded banner images
	app.Static(cfg.UploadBaseURL, cfg.UploadDir)

	// Admin console (token required)
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/vouchers", voucherHandler.ListVouchers)
	protected.Post("/vouchers", voucherHandler.CreateVouchers)
	protected.Get("/vouchers/types", voucherHandler.ListTypes)
	protected.Get("/vouchers/comments", voucherHandler.ListComments)
	protected.Get("/vouchers/export", voucherHandler.ExportVouchers)
	protected.Delete("/vouchers/:id", voucherHandler.DeleteVoucher)

	protected.Get("/members", memberHandler.ListMembers)
	protected.Post("/members", memberHandler.CreateMember)
	protected.Get("/members/:id", memberHandler.GetMember)
	protected.Put("/members/:id", memberHandler.UpdateMember)
	protected.Delete("/members/:id", memberHandler.DeleteMember)
	protected.Post("/members/:id/renew", memberHandler.RenewMember)
	protected.Post("/members/:id/suspend", memberHandler.SuspendMember)
	protected.Post("/members/:id/reactivate", memberHandler.ReactivateMember)

	protected.Put("/settings/site", settingsHandler.UpdateSiteSettings)
	protected.Put("/settings/banner", settingsHandler.UpdateBannerSettings)

	protected.Post("/upload/banner", uploadHandler.UploadBanner)

	protected.Get("/admin/dashboard", adminHandler.DashboardStats)
}
