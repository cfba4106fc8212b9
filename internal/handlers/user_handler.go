package handlers

import (
	"net/http"

	"renta_backend/internal/middleware"
	"renta_backend/internal/models"
	"renta_backend/internal/services"
	"renta_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes регистрирует маршруты управления пользователями.
// Все маршруты требуют аутентификации, проверки иерархии ролей
// делает сервис
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		// "me" обрабатывается внутри GetByID: отдельный статический
		// маршрут конфликтовал бы с параметром :id
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}

	staff := rg.Group("/users")
	staff.Use(middleware.AuthMiddleware())
	staff.Use(middleware.RequireMinRole(models.UserRoleMod))
	{
		staff.GET("", h.List)
		staff.POST("", h.Create)
	}
}

func (h *UserHandler) GetByID(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	targetID := c.Param("id")
	if targetID == "me" {
		targetID = actorID
	}

	user, err := h.userService.FindByID(actorID, actorRole, targetID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", user)
}

func (h *UserHandler) Create(c *gin.Context) {
	_, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.Create(actorRole, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusCreated, "User created", "users.created", user)
}

func (h *UserHandler) Update(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.Update(actorID, actorRole, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "User updated", "users.updated", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(actorID, actorRole, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "User deleted", "users.deleted", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	_, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UserFilterRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	result, err := h.userService.List(actorRole, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", result)
}
