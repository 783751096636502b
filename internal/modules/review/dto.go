package review

import "resort-backend/internal/domain"

type CreateReviewRequest struct {
	RoomID  int64  `json:"room_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

type ReviewWithReplies struct {
	domain.Review
	Replies []domain.ReviewReply `json:"replies"`
}
