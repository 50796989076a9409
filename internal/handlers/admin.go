package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/hotspot/internal/models"
)

// AdminHandler serves the dashboard aggregates.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// DashboardStats returns the counters shown on the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	var voucherCounts []statusCount
	if err := h.db.Model(&models.Voucher{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&voucherCounts).Error; err != nil {
		return err
	}

	vouchersByStatus := make(map[string]int64)
	for _, sc := range voucherCounts {
		vouchersByStatus[sc.Status] = sc.Count
	}

	var memberCounts []statusCount
	if err := h.db.Model(&models.Member{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&memberCounts).Error; err != nil {
		return err
	}

	membersByStatus := make(map[string]int64)
	for _, sc := range memberCounts {
		membersByStatus[sc.Status] = sc.Count
	}

	// Recurring revenue from active members.
	var monthlyRevenue int64
	if err := h.db.Model(&models.Member{}).
		Where("status = ?", models.MemberStatusActive).
		Select("COALESCE(SUM(price), 0)").
		Scan(&monthlyRevenue).Error; err != nil {
		return err
	}

	// Voucher revenue realized today.
	var todayVoucherRevenue int64
	if err := h.db.Model(&models.Voucher{}).
		Where("status = ? AND used_at::date = CURRENT_DATE", models.VoucherStatusUsed).
		Select("COALESCE(SUM(price), 0)").
		Scan(&todayVoucherRevenue).Error; err != nil {
		return err
	}

	var todayRedemptions int64
	if err := h.db.Model(&models.Voucher{}).
		Where("status = ? AND used_at::date = CURRENT_DATE", models.VoucherStatusUsed).
		Count(&todayRedemptions).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"vouchers_by_status":    vouchersByStatus,
			"members_by_status":     membersByStatus,
			"monthly_revenue":       monthlyRevenue,
			"today_voucher_revenue": todayVoucherRevenue,
			"today_redemptions":     todayRedemptions,
		},
	})
}
