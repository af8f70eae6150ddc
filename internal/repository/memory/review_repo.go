package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type reviewRepository struct {
	store *Store
}

func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *review
	stored.ID = s.nextReviewID()
	stored.CreatedAt = time.Now().UTC()
	s.reviews[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *reviewRepository) FindByFacilityID(ctx context.Context, facilityID int) ([]domain.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []domain.Review
	for _, review := range s.reviews {
		if review.FacilityID == facilityID {
			reviews = append(reviews, *review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		if reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].ID > reviews[j].ID
		}
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}
