package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/hotspot/internal/models"
	"github.com/example/hotspot/internal/utils"
	"github.com/example/hotspot/internal/validator"
)

// MemberHandler manages subscriber accounts.
type MemberHandler struct {
	db       *gorm.DB
	validate *validator.Validator
}

// NewMemberHandler constructs MemberHandler.
func NewMemberHandler(db *gorm.DB, validate *validator.Validator) *MemberHandler {
	return &MemberHandler{db: db, validate: validate}
}

// ListMembers returns members with optional status filter and search.
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Member{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where(
			"name ILIKE ? OR username ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var members []models.Member
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&members).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    members,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetMember returns a single member by id.
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	member, err := h.findMember(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": member})
}

type createMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone"`
	Username    string `json:"username" validate:"required,max=50"`
	Password    string `json:"password" validate:"required,min=6"`
	RxSpeed     string `json:"rx_speed"`
	TxSpeed     string `json:"tx_speed"`
	DeviceLimit int    `json:"device_limit" validate:"omitempty,min=1"`
	Price       int    `json:"price" validate:"omitempty,min=0"`
}

// CreateMember registers a new subscriber. The first due date falls on the
// 15th of the next month.
func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	var req createMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validate.Validate(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing models.Member
	if err := h.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "username already taken")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	now := time.Now()
	if req.DeviceLimit < 1 {
		req.DeviceLimit = 1
	}

	member := models.Member{
		Name:         req.Name,
		Phone:        req.Phone,
		Username:     req.Username,
		PasswordHash: passwordHash,
		RxSpeed:      req.RxSpeed,
		TxSpeed:      req.TxSpeed,
		DeviceLimit:  req.DeviceLimit,
		Price:        req.Price,
		Status:       models.MemberStatusActive,
		DueDate:      models.NextDueDate(now),
		LastPayment:  &now,
	}

	if err := h.db.Create(&member).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": member})
}

type updateMemberRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Password    *string `json:"password"`
	RxSpeed     *string `json:"rx_speed"`
	TxSpeed     *string `json:"tx_speed"`
	DeviceLimit *int    `json:"device_limit"`
	Price       *int    `json:"price"`
}

// UpdateMember modifies the mutable fields of a member. Username and billing
// cycle are not editable here.
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	member, err := h.findMember(c)
	if err != nil {
		return err
	}

	var req updateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name must not be empty")
		}
		member.Name = *req.Name
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return fiber.NewError(fiber.StatusBadRequest, "password must be at least 6 characters")
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
		}
		member.PasswordHash = hash
	}
	if req.RxSpeed != nil {
		member.RxSpeed = *req.RxSpeed
	}
	if req.TxSpeed != nil {
		member.TxSpeed = *req.TxSpeed
	}
	if req.DeviceLimit != nil {
		if *req.DeviceLimit < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "device limit must be positive")
		}
		member.DeviceLimit = *req.DeviceLimit
	}
	if req.Price != nil {
		member.Price = *req.Price
	}

	if err := h.db.Save(&member).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// RenewMember advances the member's billing cycle by one month.
func (h *MemberHandler) RenewMember(c *fiber.Ctx) error {
	member, err := h.findMember(c)
	if err != nil {
		return err
	}

	if err := member.Renew(time.Now()); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Save(&member).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "membership renewed",
		"data":    member,
	})
}

// SuspendMember takes a member out of service.
func (h *MemberHandler) SuspendMember(c *fiber.Ctx) error {
	member, err := h.findMember(c)
	if err != nil {
		return err
	}

	member.Suspend()
	if err := h.db.Save(&member).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// ReactivateMember lifts a suspension.
func (h *MemberHandler) ReactivateMember(c *fiber.Ctx) error {
	member, err := h.findMember(c)
	if err != nil {
		return err
	}

	member.Reactivate(time.Now())
	if err := h.db.Save(&member).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// DeleteMember removes a member by id.
func (h *MemberHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(&models.Member{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MemberHandler) findMember(c *fiber.Ctx) (models.Member, error) {
	var member models.Member
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return member, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.First(&member, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return member, fiber.NewError(fiber.StatusNotFound, "member not found")
		}
		return member, err
	}
	return member, nil
}
