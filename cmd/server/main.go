package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/example/hotspot/internal/config"
	"github.com/example/hotspot/internal/database"
	"github.com/example/hotspot/internal/models"
	"github.com/example/hotspot/internal/routes"
	"github.com/example/hotspot/internal/utils"
	"github.com/example/hotspot/internal/workers"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := seedAdmin(db, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Hotspot Portal",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routes.Register(ctx, app, db, cfg)

	workers.NewExpiryWorker(db, cfg.VoucherValidity, cfg.SweepInterval).Start(ctx)

	go func() {
		log.Printf("Starting server on :%s", cfg.AppPort)
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Fatalf("fiber.Listen error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// errorHandler renders every error through the shared response envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("unhandled error: %v", err)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// seedAdmin creates the initial console operator when none exists.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		log.Println("no admin user exists and ADMIN_PASSWORD is not set; admin login disabled")
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seeded admin user %q", admin.Username)
	return nil
}
