package handlers

import (
	"net/http"

	"renta_backend/internal/middleware"
	"renta_backend/internal/models"
	"renta_backend/internal/services"
	"renta_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
	}
}

// RegisterRoutes регистрирует маршруты блога.
// Чтение публичное, запись требует аутентификации
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.GET("", h.List)
		posts.GET("/:slug", h.GetBySlug)
	}

	authed := rg.Group("/posts")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
		authed.POST("/:id/comments", h.AddComment)
		authed.POST("/:id/like", h.ToggleLike)
	}

	comments := rg.Group("/comments")
	comments.Use(middleware.AuthMiddleware())
	{
		comments.DELETE("/:id", h.DeleteComment)
	}

	// Категории блога живут отдельным префиксом: сегмент под /posts
	// конфликтовал бы с параметром :slug
	rg.GET("/post-categories", h.ListCategories)

	staff := rg.Group("/post-categories")
	staff.Use(middleware.AuthMiddleware())
	staff.Use(middleware.RequireMinRole(models.UserRoleMod))
	{
		staff.POST("", h.CreateCategory)
		staff.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *PostHandler) List(c *gin.Context) {
	var req dto.PostFilterRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	result, err := h.postService.List(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", result)
}

func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postService.FindBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", post)
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.postService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusCreated, "Post created", "posts.created", post)
}

func (h *PostHandler) Update(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.postService.Update(actorID, actorRole, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Post updated", "posts.updated", post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(actorID, actorRole, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Post deleted", "posts.deleted", nil)
}

// Комментарии и лайки

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	comment, err := h.postService.AddComment(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusCreated, "Comment added", "posts.comment_added", comment)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	actorID, actorRole, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.postService.DeleteComment(actorID, actorRole, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Comment deleted", "posts.comment_deleted", nil)
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	liked, total, err := h.postService.ToggleLike(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", gin.H{
		"liked": liked,
		"likes": total,
	})
}

// Категории блога

func (h *PostHandler) ListCategories(c *gin.Context) {
	categories, err := h.postService.ListPostCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", categories)
}

func (h *PostHandler) CreateCategory(c *gin.Context) {
	var req dto.CreatePostCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.postService.CreatePostCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusCreated, "Post category created", "posts.category_created", category)
}

func (h *PostHandler) DeleteCategory(c *gin.Context) {
	if err := h.postService.DeletePostCategory(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Post category deleted", "posts.category_deleted", nil)
}
