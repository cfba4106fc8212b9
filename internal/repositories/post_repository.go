package repositories

import (
	"errors"

	"renta_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrPostCategoryMissing = errors.New("post category not found")
)

type PostRepository interface {
	FindByID(id string) (*models.Post, error)
	FindBySlug(slug string) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id string) error
	FindWithFilter(criteria PostFilter) ([]models.Post, int64, error)
	IncrementViews(id string) error

	// Комментарии
	CreateComment(comment *models.Comment) error
	FindCommentByID(id string) (*models.Comment, error)
	DeleteComment(id string) error

	// Лайки. ToggleLike возвращает true, если лайк поставлен,
	// false - если снят
	ToggleLike(postID, userID string) (bool, error)
	CountLikes(postID string) (int64, error)

	// Категории блога
	FindAllPostCategories() ([]models.PostCategory, error)
	CreatePostCategory(category *models.PostCategory) error
	DeletePostCategory(id string) error
}

type PostRepositoryImpl struct {
	db *gorm.DB
}

type PostFilter struct {
	CategoryID    string
	AuthorID      string
	OnlyPublished bool
	Search        string
	Page          int
	PageSize      int
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) FindByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Category").Preload("Comments").Preload("Comments.Author").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) FindBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Category").Preload("Comments").Preload("Comments.Author").
		First(&post, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) Create(post *models.Post) error {
	var existing models.Post
	if err := r.db.Where("slug = ?", post.Slug).First(&existing).Error; err == nil {
		return ErrSlugAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(post).Error
}

func (r *PostRepositoryImpl) Update(post *models.Post) error {
	result := r.db.Save(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) FindWithFilter(criteria PostFilter) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{})

	if criteria.CategoryID != "" {
		query = query.Where("category_id = ?", criteria.CategoryID)
	}
	if criteria.AuthorID != "" {
		query = query.Where("author_id = ?", criteria.AuthorID)
	}
	if criteria.OnlyPublished {
		query = query.Where("published = ?", true)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var posts []models.Post
	err := query.Preload("Author").Preload("Category").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// Комментарии

func (r *PostRepositoryImpl) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *PostRepositoryImpl) FindCommentByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *PostRepositoryImpl) DeleteComment(id string) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Лайки

func (r *PostRepositoryImpl) ToggleLike(postID, userID string) (bool, error) {
	var like models.Like
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	if err == nil {
		if err := r.db.Delete(&like).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like = models.Like{PostID: postID, UserID: userID}
	if err := r.db.Create(&like).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostRepositoryImpl) CountLikes(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// Категории блога

func (r *PostRepositoryImpl) FindAllPostCategories() ([]models.PostCategory, error) {
	var categories []models.PostCategory
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *PostRepositoryImpl) CreatePostCategory(category *models.PostCategory) error {
	var existing models.PostCategory
	if err := r.db.Where("slug = ?", category.Slug).First(&existing).Error; err == nil {
		return ErrSlugAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(category).Error
}

func (r *PostRepositoryImpl) DeletePostCategory(id string) error {
	result := r.db.Delete(&models.PostCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostCategoryMissing
	}
	return nil
}
