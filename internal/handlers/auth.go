package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/hotspot/internal/config"
	"github.com/example/hotspot/internal/models"
	"github.com/example/hotspot/internal/utils"
	"github.com/example/hotspot/internal/voucher"
)

// AuthHandler bundles dependencies for the three portal login endpoints.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin authenticates a console operator and issues a bearer token.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing username or password")
	}

	var admin models.AdminUser
	if err := h.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(admin.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, admin.ID, admin.Role, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":       admin.ID,
				"username": admin.Username,
				"role":     admin.Role,
			},
		},
	})
}

type voucherLoginRequest struct {
	Code       string `json:"code"`
	IPAddress  string `json:"ipAddress,omitempty"`
	MACAddress string `json:"macAddress,omitempty"`
}

// VoucherLogin redeems a voucher code and grants an access session of the
// voucher's duration. A voucher is redeemed at most once; the status check and
// the stamp happen inside one transaction under a row lock.
func (h *AuthHandler) VoucherLogin(c *fiber.Ctx) error {
	var req voucherLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if !voucher.ValidCode(code) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid voucher code")
	}

	now := time.Now()
	var redeemed models.Voucher

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var v models.Voucher
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", code).First(&v).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "voucher not found")
			}
			return err
		}

		if err := v.Redeem(now); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := tx.Save(&v).Error; err != nil {
			return err
		}

		redeemed = v
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "voucher redeemed",
		"data": fiber.Map{
			"code":             redeemed.Code,
			"duration_minutes": redeemed.DurationMinutes,
			"session_ends_at":  now.Add(time.Duration(redeemed.DurationMinutes) * time.Minute),
		},
	})
}

type memberLoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	IPAddress  string `json:"ipAddress,omitempty"`
	MACAddress string `json:"macAddress,omitempty"`
}

// MemberLogin authenticates a subscriber against the member table. Suspended
// and lapsed members are rejected with a domain error.
func (h *AuthHandler) MemberLogin(c *fiber.Ctx) error {
	var req memberLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing username or password")
	}

	var member models.Member
	if err := h.db.Where("username = ?", req.Username).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(member.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if member.Status == models.MemberStatusSuspended {
		return fiber.NewError(fiber.StatusForbidden, "account suspended")
	}
	if member.Status == models.MemberStatusExpired || member.Overdue(time.Now()) {
		return fiber.NewError(fiber.StatusForbidden, "subscription expired")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":           member.ID,
			"name":         member.Name,
			"username":     member.Username,
			"rx_speed":     member.RxSpeed,
			"tx_speed":     member.TxSpeed,
			"device_limit": member.DeviceLimit,
			"due_date":     member.DueDate,
		},
	})
}
