package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/middleware"
	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
	"github.com/David-H-Afonso/gamesdatabase/internal/logger"
	"github.com/David-H-Afonso/gamesdatabase/internal/types"
)

// userRequest is the create/update payload for user management
type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login verifies credentials and issues a bearer token
func (h *APIHandler) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	if req.Username == "" {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgUsernameRequired)
	}

	user, err := h.users.GetUserByUsername(c.Context(), req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondWithError(c, fiber.StatusUnauthorized, ErrMsgInvalidCredentials)
	} else if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return respondWithError(c, fiber.StatusUnauthorized, ErrMsgInvalidCredentials)
	}

	token, err := middleware.IssueToken(h.jwtSecret, user, middleware.DefaultTokenTTL)
	if err != nil {
		logger.Errorf("failed to sign token for %q: %v", user.Username, err)
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgInvalidCredentials)
	}

	return c.JSON(types.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role.String(),
	})
}

// ListUsers returns all users. Admin only.
func (h *APIHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.GetUsers(c.Context())
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGetUsersFailed)
	}
	return c.JSON(types.ListResponse[models.User]{
		Rows:       users,
		Pagination: types.PaginationResponse{Total: len(users), Page: 1, PageSize: len(users)},
	})
}

// CreateUser creates a new account. Admin only.
func (h *APIHandler) CreateUser(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	if req.Username == "" {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgUsernameRequired)
	}
	if req.Password == "" {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgPasswordRequired)
	}

	role := models.UserRoleStandard
	if req.Role != "" {
		parsed, err := models.ParseUserRole(req.Role)
		if err != nil {
			return respondWithError(c, fiber.StatusBadRequest, err.Error())
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCreateUserFailed)
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.users.CreateUser(c.Context(), &user); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCreateUserFailed)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser changes a user's password or role. Admin only.
func (h *APIHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}

	update := models.User{Username: req.Username}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return respondWithError(c, fiber.StatusInternalServerError, ErrMsgUpdateUserFailed)
		}
		update.PasswordHash = string(hash)
	}
	if req.Role != "" {
		role, err := models.ParseUserRole(req.Role)
		if err != nil {
			return respondWithError(c, fiber.StatusBadRequest, err.Error())
		}
		update.Role = role
	}

	if err := h.users.UpdateUser(c.Context(), id, &update); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgUpdateUserFailed)
	}

	user, err := h.users.GetUserByID(c.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgUserNotFound)
	} else if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgUpdateUserFailed)
	}
	return c.JSON(user)
}

// DeleteUser removes an account. Admin only.
func (h *APIHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
	}
	if err := h.users.DeleteUser(c.Context(), id); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgDeleteUserFailed)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
