package review

import (
	"context"
	"errors"
	"strings"

	"resort-backend/internal/domain"
	"resort-backend/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a review under the caller's account. The display name is
// resolved from the user record so reviews survive later profile edits.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 || strings.TrimSpace(req.Comment) == "" {
		return nil, ErrValidation
	}

	if _, err := repository.NewRoomRepository(s.db).GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	rev := &domain.Review{
		RoomID:  req.RoomID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}
	if userID > 0 {
		u, err := repository.NewUserRepository(s.db).GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		uid := userID
		rev.UserID = &uid
		rev.Username = u.Username
	}

	if err := repository.NewReviewRepository(s.db).Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *Service) ListByRoom(ctx context.Context, roomID int64) ([]ReviewWithReplies, error) {
	reviews := repository.NewReviewRepository(s.db)

	revs, err := reviews.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	out := make([]ReviewWithReplies, 0, len(revs))
	for _, rev := range revs {
		replies, err := reviews.ListReplies(ctx, rev.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ReviewWithReplies{Review: rev, Replies: replies})
	}
	return out, nil
}

func (s *Service) Reply(ctx context.Context, reviewID int64, req ReplyRequest) (*domain.ReviewReply, error) {
	if strings.TrimSpace(req.Reply) == "" {
		return nil, ErrValidation
	}

	reviews := repository.NewReviewRepository(s.db)
	if _, err := reviews.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reply := &domain.ReviewReply{
		ReviewID: reviewID,
		Reply:    strings.TrimSpace(req.Reply),
	}
	if err := reviews.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *Service) Delete(ctx context.Context, reviewID int64) error {
	if err := repository.NewReviewRepository(s.db).Delete(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
