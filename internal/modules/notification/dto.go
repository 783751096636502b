package notification

type CreateNotificationRequest struct {
	UserID  *int64 `json:"user_id"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=system booking payment promotion"`
}
