package models

type PostCategory struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description,omitempty"`
}

type Post struct {
	BaseModel
	Title      string        `gorm:"not null" json:"title"`
	Slug       string        `gorm:"uniqueIndex;not null" json:"slug"`
	Content    string        `gorm:"not null" json:"content"`
	Thumbnail  string        `json:"thumbnail,omitempty"`
	AuthorID   string        `gorm:"type:uuid;not null;index" json:"authorId"`
	Author     *User         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID *string       `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Category   *PostCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Published  bool          `gorm:"default:true;index" json:"published"`
	ViewCount  int64         `gorm:"default:0" json:"viewCount"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"-"`
}

type Comment struct {
	BaseModel
	PostID   string `gorm:"type:uuid;not null;index" json:"postId"`
	AuthorID string `gorm:"type:uuid;not null;index" json:"authorId"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content  string `gorm:"not null" json:"content"`
}

// Like - пара (post, user) уникальна: лайкнуть дважды нельзя
type Like struct {
	BaseModel
	PostID string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_user" json:"postId"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_user" json:"userId"`
}
