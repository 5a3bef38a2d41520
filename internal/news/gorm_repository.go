package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&Article{})
}

func (r *GormRepository) List(ctx context.Context) ([]Article, error) {
	var articles []Article
	if err := r.db.WithContext(ctx).Order("published_at").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return articles, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	var a Article
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *GormRepository) Create(ctx context.Context, a *Article) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *GormRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	res := r.db.WithContext(ctx).
		Model(&Article{}).
		Where("id = ?", id).
		Update("image_url", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
