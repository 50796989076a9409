package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/example/hotspot/internal/models"
	"github.com/example/hotspot/internal/utils"
	"github.com/example/hotspot/internal/voucher"
)

// VoucherHandler manages voucher issuing and administration.
type VoucherHandler struct {
	db *gorm.DB
}

// NewVoucherHandler constructs VoucherHandler.
func NewVoucherHandler(db *gorm.DB) *VoucherHandler {
	return &VoucherHandler{db: db}
}

// ListVouchers returns vouchers with optional comment/status filters.
func (h *VoucherHandler) ListVouchers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Voucher{})

	if comment := c.Query("comment"); comment != "" {
		query = query.Where("comment = ?", comment)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var items []models.Voucher
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&items).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// ListTypes returns the voucher catalog shown on the create dialog.
func (h *VoucherHandler) ListTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": voucher.Types})
}

// ListComments returns the distinct batch tags for the filter dropdown.
func (h *VoucherHandler) ListComments(c *fiber.Ctx) error {
	var comments []string
	if err := h.db.Model(&models.Voucher{}).
		Distinct("comment").
		Order("comment desc").
		Pluck("comment", &comments).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": comments})
}

type createVouchersRequest struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// CreateVouchers bulk-creates vouchers of one type. Every voucher of the call
// carries the same batch comment, computed once before the first code is
// generated, so the batch can be filtered and printed as a group later.
func (h *VoucherHandler) CreateVouchers(c *fiber.Ctx) error {
	var req createVouchersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Count < 1 {
		req.Count = 1
	}
	if req.Count > 1000 {
		return fiber.NewError(fiber.StatusBadRequest, "count must be at most 1000")
	}

	typ, ok := voucher.TypeByPrefix(req.Type)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown voucher type")
	}

	created := make([]models.Voucher, 0, req.Count)
	err := h.db.Transaction(func(tx *gorm.DB) error {
		issued, err := voucher.IssueBatch(typ, req.Count, time.Now(), func(code string) (bool, error) {
			var count int64
			if err := tx.Model(&models.Voucher{}).Where("code = ?", code).Count(&count).Error; err != nil {
				return false, err
			}
			return count > 0, nil
		})
		if err != nil {
			if errors.Is(err, voucher.ErrCodeExhausted) {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return err
		}

		for _, item := range issued {
			v := models.Voucher{
				Code:            item.Code,
				Type:            typ.Prefix,
				DurationMinutes: typ.DurationMinutes,
				Price:           typ.Price,
				Status:          models.VoucherStatusActive,
				Comment:         item.Comment,
			}
			if err := tx.Create(&v).Error; err != nil {
				return err
			}
			created = append(created, v)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d voucher(s) created", len(created)),
		"data":    created,
	})
}

// DeleteVoucher removes a voucher by id.
func (h *VoucherHandler) DeleteVoucher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(&models.Voucher{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportVouchers streams an xlsx sheet of one batch for printing.
func (h *VoucherHandler) ExportVouchers(c *fiber.Ctx) error {
	comment := c.Query("comment")
	if comment == "" {
		return fiber.NewError(fiber.StatusBadRequest, "comment query parameter is required")
	}

	var items []models.Voucher
	if err := h.db.Where("comment = ?", comment).
		Order("created_at asc").Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no vouchers for this comment")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"code", "type", "duration_minutes", "price", "status", "comment", "created_at"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, v := range items {
		excelRow := []interface{}{
			v.Code,
			v.Type,
			v.DurationMinutes,
			v.Price,
			v.Status,
			v.Comment,
			v.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return err
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return err
	}

	fileName := fmt.Sprintf("vouchers_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	return c.Send(buf.Bytes())
}
