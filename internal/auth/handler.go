package auth

import (
	"errors"
	"time"

	"github.com/900mahdi/mohasib3/internal/config"
	"github.com/900mahdi/mohasib3/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type ChangePasswordRequest struct {
	Current string `json:"current"`
	New     string `json:"new"`
	Confirm string `json:"confirm"`
}

func LoginHandler(cfg *config.Config, svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "نص الطلب غير صالح")
		}

		if body.Role == "" {
			body.Role = models.RoleMerchant
		}
		if !body.Role.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "الدور المطلوب غير معروف")
		}

		session, err := svc.Authenticate(body.Password, body.Role)
		if err != nil {
			if errors.Is(err, ErrInvalidCredential) {
				return fiber.NewError(fiber.StatusUnauthorized, "كلمة المرور غير صحيحة. حاول مرة أخرى.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر التحقق من كلمة المرور")
		}

		token, err := GenerateToken(cfg.JWTSecret, session)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء رمز الدخول")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"username": session.Username,
				"role":     session.Role,
			},
		})
	}
}

// BiometricLoginHandler always succeeds after a short simulated delay. It is a
// demo shortcut kept from the original product, not real biometric verification.
func BiometricLoginHandler(cfg *config.Config, svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		time.Sleep(cfg.BiometricDelay)

		session := svc.AuthenticateByBiometric()
		token, err := GenerateToken(cfg.JWTSecret, session)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء رمز الدخول")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"username": session.Username,
				"role":     session.Role,
			},
		})
	}
}

func ChangePasswordHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ChangePasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "نص الطلب غير صالح")
		}

		if err := svc.ChangeCredential(body.Current, body.New, body.Confirm); err != nil {
			switch {
			case errors.Is(err, ErrWrongCurrentCredential):
				return fiber.NewError(fiber.StatusBadRequest, "كلمة المرور الحالية غير صحيحة")
			case errors.Is(err, ErrMismatchedConfirmation):
				return fiber.NewError(fiber.StatusBadRequest, "كلمة المرور الجديدة غير متطابقة")
			case errors.Is(err, ErrCredentialTooShort):
				return fiber.NewError(fiber.StatusBadRequest, "يجب أن تكون كلمة المرور 4 خانات على الأقل")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر تغيير كلمة المرور")
			}
		}

		return c.JSON(fiber.Map{"message": "تم تغيير كلمة المرور بنجاح"})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username": c.Locals(CtxUsernameKey),
			"role":     c.Locals(CtxUserRoleKey),
		})
	}
}

// LogoutHandler acknowledges the logout. Sessions are stateless tokens, so
// destroying one is discarding it on the client.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "تم تسجيل الخروج"})
	}
}
