package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type registerRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	UserName    string `json:"userName" validate:"required"`
	CountryCode string `json:"countryCode" validate:"required"`
	PhoneNo     string `json:"phoneNo" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Dob         string `json:"dob" validate:"required"`
	Gender      *int   `json:"gender" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyEmailRequest struct {
	VerifyCode string `json:"verifyCode"`
	UserName   string `json:"userName"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type usersResponse struct {
	Success bool          `json:"success"`
	AllUser []domain.User `json:"allUser"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// dobLayouts are the accepted date-of-birth formats.
var dobLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDob(s string) (time.Time, error) {
	var err error
	for _, layout := range dobLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.Wrap(domain.KindValidation, err, "Invalid date of birth")
}

// Register creates a learner account and e-mails a verification code.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  messageResponse
// @Success      200   {object}  messageResponse  "Unverified account refreshed"
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/user/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindValid(c, &req, "All fields are required"); err != nil {
		return err
	}
	dob, err := parseDob(req.Dob)
	if err != nil {
		return err
	}

	res, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		FullName:    req.FullName,
		UserName:    req.UserName,
		CountryCode: req.CountryCode,
		PhoneNo:     req.PhoneNo,
		Email:       req.Email,
		Dob:         dob,
		Gender:      *req.Gender,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	if !res.Created {
		return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Welcome Back, " + res.User.FullName})
	}
	return c.JSON(http.StatusCreated, messageResponse{Success: true, Message: "Welcome, " + res.User.FullName})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	return h.login(c, h.userService.Login)
}

// AdminLogin is Login restricted to administrator accounts.
//
// @Summary      Admin login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/user/admin-login [post]
func (h *UserHandler) AdminLogin(c echo.Context) error {
	return h.login(c, h.userService.AdminLogin)
}

type loginFunc func(ctx context.Context, email, password string) (string, *domain.User, error)

func (h *UserHandler) login(c echo.Context, fn loginFunc) error {
	var req loginRequest
	if err := bindValid(c, &req, "Please add all fields"); err != nil {
		return err
	}

	token, user, err := fn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Welcome back, " + user.FullName,
		Token:   token,
	})
}

// VerifyEmail confirms the one-time code sent at registration.
//
// @Summary      Verify e-mail
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      verifyEmailRequest  true  "User name and code"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/user/verify-email [post]
func (h *UserHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}
	if err := h.userService.VerifyEmail(c.Request().Context(), req.UserName, req.VerifyCode); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Email verified successfully"})
}

// UpdatePassword changes the password of the token's owner.
//
// @Summary      Update password
// @Tags         user
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      updatePasswordRequest  true  "Old and new password"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/user/update-password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req updatePasswordRequest
	if err := bindValid(c, &req, "Please add all fields"); err != nil {
		return err
	}

	user, err := h.userService.UpdatePassword(c.Request().Context(), claims.Email, req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "password updated successfully, " + user.FullName,
	})
}

// @Summary      List users
// @Tags         user
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/user/get-all-user [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Success: true, AllUser: users})
}

// @Summary      Get a user
// @Tags         user
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  messageResponse
// @Router       /api/user/get-user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := intParam(c, "id", "Invalid Id")
	if err != nil {
		return err
	}
	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// @Summary      Delete a user
// @Tags         user
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Router       /api/user/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "id", "Invalid Id")
	if err != nil {
		return err
	}
	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "User Deleted Successfully"})
}
