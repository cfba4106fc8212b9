package services

import (
	"errors"

	"renta_backend/internal/auth"
	"renta_backend/internal/models"
	"renta_backend/internal/repositories"
	"renta_backend/internal/services/dto"
	"renta_backend/pkg/apperrors"
)

type PostService interface {
	Create(authorID string, req *dto.CreatePostRequest) (*models.Post, error)
	Update(actorID string, actorRole models.UserRole, postID string, req *dto.UpdatePostRequest) (*models.Post, error)
	Delete(actorID string, actorRole models.UserRole, postID string) error
	FindBySlug(slug string) (*models.Post, error)
	List(req *dto.PostFilterRequest) (*dto.PostListResponse, error)

	AddComment(authorID, postID string, req *dto.CreateCommentRequest) (*models.Comment, error)
	DeleteComment(actorID string, actorRole models.UserRole, commentID string) error
	ToggleLike(userID, postID string) (liked bool, total int64, err error)

	ListPostCategories() ([]models.PostCategory, error)
	CreatePostCategory(req *dto.CreatePostCategoryRequest) (*models.PostCategory, error)
	DeletePostCategory(id string) error
}

type PostServiceImpl struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &PostServiceImpl{postRepo: postRepo}
}

func (s *PostServiceImpl) Create(authorID string, req *dto.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		Thumbnail:  req.Thumbnail,
		AuthorID:   authorID,
		CategoryID: req.CategoryID,
		Published:  req.Published,
	}

	if err := s.postRepo.Create(post); err != nil {
		if errors.Is(err, repositories.ErrSlugAlreadyExists) {
			return nil, apperrors.ErrSlugAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return post, nil
}

// Update - правка записи. Автор правит свое, mod и выше - любое
func (s *PostServiceImpl) Update(actorID string, actorRole models.UserRole, postID string, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if post.AuthorID != actorID && !auth.HasAtLeast(actorRole, models.UserRoleMod) {
		return nil, apperrors.NewForbiddenError("only the author can update this post")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Thumbnail != nil {
		post.Thumbnail = *req.Thumbnail
	}
	if req.CategoryID != nil {
		post.CategoryID = req.CategoryID
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return post, nil
}

func (s *PostServiceImpl) Delete(actorID string, actorRole models.UserRole, postID string) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}

	if post.AuthorID != actorID && !auth.HasAtLeast(actorRole, models.UserRoleMod) {
		return apperrors.NewForbiddenError("only the author can delete this post")
	}

	if err := s.postRepo.Delete(postID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// FindBySlug отдает запись и накручивает счетчик просмотров
func (s *PostServiceImpl) FindBySlug(slug string) (*models.Post, error) {
	post, err := s.postRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.postRepo.IncrementViews(post.ID); err != nil {
		// Счетчик не критичен
		return post, nil
	}
	post.ViewCount++

	return post, nil
}

func (s *PostServiceImpl) List(req *dto.PostFilterRequest) (*dto.PostListResponse, error) {
	criteria := repositories.PostFilter{
		CategoryID:    req.CategoryID,
		AuthorID:      req.AuthorID,
		OnlyPublished: true,
		Search:        req.Search,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	posts, total, err := s.postRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &dto.PostListResponse{
		Posts:    posts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Комментарии

func (s *PostServiceImpl) AddComment(authorID, postID string, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}

	if err := s.postRepo.CreateComment(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return comment, nil
}

func (s *PostServiceImpl) DeleteComment(actorID string, actorRole models.UserRole, commentID string) error {
	comment, err := s.postRepo.FindCommentByID(commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.InternalError(err)
	}

	if comment.AuthorID != actorID && !auth.HasAtLeast(actorRole, models.UserRoleMod) {
		return apperrors.NewForbiddenError("only the author can delete this comment")
	}

	if err := s.postRepo.DeleteComment(commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ToggleLike ставит или снимает лайк. Повторный вызов меняет состояние
// обратно, лишних строк не появляется
func (s *PostServiceImpl) ToggleLike(userID, postID string) (bool, int64, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return false, 0, apperrors.ErrPostNotFound
		}
		return false, 0, apperrors.InternalError(err)
	}

	liked, err := s.postRepo.ToggleLike(postID, userID)
	if err != nil {
		return false, 0, apperrors.InternalError(err)
	}

	total, err := s.postRepo.CountLikes(postID)
	if err != nil {
		return liked, 0, apperrors.InternalError(err)
	}

	return liked, total, nil
}

// Категории блога

func (s *PostServiceImpl) ListPostCategories() ([]models.PostCategory, error) {
	categories, err := s.postRepo.FindAllPostCategories()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *PostServiceImpl) CreatePostCategory(req *dto.CreatePostCategoryRequest) (*models.PostCategory, error) {
	category := &models.PostCategory{
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.postRepo.CreatePostCategory(category); err != nil {
		if errors.Is(err, repositories.ErrSlugAlreadyExists) {
			return nil, apperrors.ErrSlugAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return category, nil
}

func (s *PostServiceImpl) DeletePostCategory(id string) error {
	if err := s.postRepo.DeletePostCategory(id); err != nil {
		if errors.Is(err, repositories.ErrPostCategoryMissing) {
			return apperrors.NewNotFoundError("Post category not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
