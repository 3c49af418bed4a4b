package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	authModel "schoolku_backend/internals/features/users/auth/model"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	var u authModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("lower(user_email) = lower(?)", req.Email).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, constants.MsgBadCredentials)
		}
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPasswordHash), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, constants.MsgBadCredentials)
	}
	if !u.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, constants.MsgUserInactive)
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       u.UserID.String(),
		"school_id": u.UserSchoolID.String(),
		"role":      u.UserRole,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonOK(c, constants.MsgLoginOK, authDTO.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User:        authDTO.FromUserModel(u),
	})
}

// POST /auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if req.Role == "" {
		req.Role = constants.RoleStaff
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	u := authModel.UserModel{
		UserSchoolID:     req.SchoolID,
		UserEmail:        req.Email,
		UserPasswordHash: string(hash),
		UserFullName:     req.FullName,
		UserRole:         req.Role,
		UserIsActive:     true,
	}

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&authModel.UserModel{}).
			Where("lower(user_email) = lower(?)", req.Email).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgEmailTaken)
		}
		if err := tx.Create(&u).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgEmailTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgRegisterOK, authDTO.FromUserModel(u))
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
