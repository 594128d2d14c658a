package handler

import (
	"time"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PersonnelHandler struct {
	usecase      *usecase.PersonnelUsecase
	cookieSecure bool
}

func NewPersonnelHandler(uc *usecase.PersonnelUsecase, cookieSecure bool) *PersonnelHandler {
	return &PersonnelHandler{usecase: uc, cookieSecure: cookieSecure}
}

func (h *PersonnelHandler) SignIn(c *fiber.Ctx) error {
	var req usecase.SignInInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	result, err := h.usecase.SignIn(req)
	if err != nil {
		return err
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)
	return respond(c, fiber.StatusOK, result, "User logged in successfully")
}

func (h *PersonnelHandler) SignUp(c *fiber.Ctx) error {
	var req usecase.SignUpInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.usecase.SignUp(req)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, p, "User registered successfully")
}

func (h *PersonnelHandler) RefreshToken(c *fiber.Ctx) error {
	token := c.Cookies(middleware.RefreshTokenCookie)
	if token == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.BodyParser(&body)
		token = body.RefreshToken
	}
	if token == "" {
		return apperror.Unauthenticated("Unauthorized request")
	}

	result, err := h.usecase.Refresh(token)
	if err != nil {
		return err
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)
	return respond(c, fiber.StatusOK, result, "Access token refreshed")
}

func (h *PersonnelHandler) Logout(c *fiber.Ctx) error {
	if err := h.usecase.Logout(middleware.CurrentUser(c)); err != nil {
		return err
	}

	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   h.cookieSecure,
		})
	}
	return respond(c, fiber.StatusOK, fiber.Map{}, "User logged out")
}

func (h *PersonnelHandler) Me(c *fiber.Ctx) error {
	p, err := h.usecase.Profile(middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, p, "Profile fetched successfully")
}

func (h *PersonnelHandler) ChangePassword(c *fiber.Ctx) error {
	var req usecase.ChangePasswordInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.usecase.ChangePassword(middleware.CurrentUser(c), req); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{}, "Password changed successfully")
}

func (h *PersonnelHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreatePersonnelInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.usecase.Create(req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, p, "Personnel created successfully")
}

func (h *PersonnelHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.List(middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, list, "Personnel fetched successfully")
}

func (h *PersonnelHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	p, err := h.usecase.Get(id, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, p, "Personnel fetched successfully")
}

func (h *PersonnelHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdatePersonnelInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.usecase.Update(id, req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, p, "Personnel updated successfully")
}

func (h *PersonnelHandler) setTokenCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{Name: middleware.AccessTokenCookie, Value: access, HTTPOnly: true, Secure: h.cookieSecure})
	c.Cookie(&fiber.Cookie{Name: middleware.RefreshTokenCookie, Value: refresh, HTTPOnly: true, Secure: h.cookieSecure})
}
