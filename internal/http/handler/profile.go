package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/service"
)

// GetProfile returns the signed-in user's profile.
//
// @Summary Get the current user's profile
// @Tags profile
// @Produce json
// @Param X-User-Id header int true "authenticated user id"
// @Success 200 {object} model.User
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/user/profile [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		u, err := svc.Get(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateProfile applies a partial profile update, including a password change.
//
// @Summary Update the current user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param X-User-Id header int true "authenticated user id"
// @Param body body service.UpdateProfileInput true "fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/user/profile [put]
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		var in service.UpdateProfileInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		u, err := svc.Update(c.UserContext(), userID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// UploadAvatar replaces the avatar image (multipart/form-data, field name: file).
//
// @Summary Upload a profile avatar
// @Tags profile
// @Accept mpfd
// @Produce json
// @Param X-User-Id header int true "authenticated user id"
// @Param file formData file true "image file"
// @Success 200 {object} model.User
// @Failure 400 {object} errorPayload
// @Router /api/user/profile/avatar [put]
func UploadAvatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		u, err := svc.UploadAvatar(c.UserContext(), userID, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// GetAvatar streams the stored avatar image.
func GetAvatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserID(c)
		rc, info, err := svc.OpenAvatar(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		defer rc.Close()

		body, err := io.ReadAll(rc)
		if err != nil {
			return writeServiceError(c, err)
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		return c.Send(body)
	}
}
