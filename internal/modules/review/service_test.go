package review

import (
	"context"
	"testing"

	"resort-backend/internal/database"
	"resort-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*Service, *gorm.DB, *domain.Room, *domain.User) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	resort := &domain.Resort{Name: "Coral Bay"}
	require.NoError(t, db.Create(resort).Error)
	rt := &domain.RoomType{Name: "Deluxe", PricePerNight: 100}
	require.NoError(t, db.Create(rt).Error)
	room := &domain.Room{ResortID: resort.ID, RoomTypeID: rt.ID, Location: "A-101", Status: domain.RoomAvailable}
	require.NoError(t, db.Create(room).Error)

	user := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", FullName: "Alice", Role: domain.RoleGuest, IsActive: true}
	require.NoError(t, db.Create(user).Error)

	return NewService(db), db, room, user
}

func TestCreate_ResolvesUsername(t *testing.T) {
	svc, _, room, user := setup(t)

	rev, err := svc.Create(context.Background(), user.ID, CreateReviewRequest{
		RoomID:  room.ID,
		Rating:  4,
		Comment: "Great stay",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", rev.Username)
	require.NotNil(t, rev.UserID)
	assert.Equal(t, user.ID, *rev.UserID)
}

func TestCreate_RejectsBadRating(t *testing.T) {
	svc, _, room, user := setup(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), user.ID, CreateReviewRequest{
			RoomID:  room.ID,
			Rating:  rating,
			Comment: "x",
		})
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestCreate_UnknownRoom(t *testing.T) {
	svc, _, _, user := setup(t)
	_, err := svc.Create(context.Background(), user.ID, CreateReviewRequest{
		RoomID:  9999,
		Rating:  4,
		Comment: "x",
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestListByRoom_IncludesReplies(t *testing.T) {
	svc, _, room, user := setup(t)
	ctx := context.Background()

	rev, err := svc.Create(ctx, user.ID, CreateReviewRequest{RoomID: room.ID, Rating: 2, Comment: "Noisy AC"})
	require.NoError(t, err)

	_, err = svc.Reply(ctx, rev.ID, ReplyRequest{Reply: "The unit has been replaced"})
	require.NoError(t, err)

	out, err := svc.ListByRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Replies, 1)
	assert.Equal(t, "The unit has been replaced", out[0].Replies[0].Reply)
}

func TestReply_UnknownReview(t *testing.T) {
	svc, _, _, _ := setup(t)
	_, err := svc.Reply(context.Background(), 9999, ReplyRequest{Reply: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _, room, user := setup(t)
	ctx := context.Background()

	rev, err := svc.Create(ctx, user.ID, CreateReviewRequest{RoomID: room.ID, Rating: 5, Comment: "ok"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rev.ID))
	assert.ErrorIs(t, svc.Delete(ctx, rev.ID), ErrNotFound)
}
