package postgresql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type pgReviewRepository struct {
	db *sql.DB
}

func NewPgReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &pgReviewRepository{db: db}
}

func (r *pgReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `INSERT INTO reviews (user_id, facility_id, rating, comment, created_at)
	           VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
	           RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		review.UserID, review.FacilityID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.Create: %w", err)
	}
	return review, nil
}

func (r *pgReviewRepository) FindByFacilityID(ctx context.Context, facilityID int) ([]domain.Review, error) {
	query := `SELECT id, user_id, facility_id, rating, comment, created_at
	           FROM reviews WHERE facility_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByFacilityID: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.UserID, &review.FacilityID,
			&review.Rating, &review.Comment, &review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ReviewRepository.FindByFacilityID (scanning row): %w", err)
		}
		reviews = append(reviews, review)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByFacilityID (rows error): %w", err)
	}
	return reviews, nil
}
