package news

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("news article not found")

type Repository interface {
	List(ctx context.Context) ([]Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	Create(ctx context.Context, a *Article) error
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
}
