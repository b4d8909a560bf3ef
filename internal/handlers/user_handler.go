package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/yildirimsamet/simplestorage/internal/services"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers the user routes; all of them require auth.
func (h *UserHandler) RegisterRoutes(protected fiber.Router) {
	userRoutes := protected.Group("/users")
	userRoutes.Get("/:id", h.HandleGetUser)
}

// HandleGetUser returns a single user by ID.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid user id")
	}

	user, err := h.userService.GetUserByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", user)
}
