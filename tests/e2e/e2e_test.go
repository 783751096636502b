package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resort-backend/internal/database"
	"resort-backend/internal/domain"
	"resort-backend/internal/middleware"
	"resort-backend/internal/modules/auth"
	"resort-backend/internal/modules/booking"
	"resort-backend/internal/modules/catalog"
	"resort-backend/internal/modules/contact"
	"resort-backend/internal/modules/discount"
	"resort-backend/internal/modules/notification"
	"resort-backend/internal/modules/payment"
	"resort-backend/internal/modules/review"
	"resort-backend/internal/modules/stats"
	jwtsvc "resort-backend/internal/pkg/jwt"
	"resort-backend/internal/pkg/mailer"
	"resort-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type suite struct {
	router *gin.Engine
	db     *gorm.DB
}

func setup(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log := zap.NewNop()
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(repository.NewUserRepository(db), j))
	catalogHandler := catalog.NewHandler(catalog.NewService(db))
	bookingHandler := booking.NewHandler(booking.NewService(db))
	paymentHandler := payment.NewHandler(payment.NewService(db))
	discountHandler := discount.NewHandler(discount.NewService(repository.NewDiscountRepository(db)))
	reviewHandler := review.NewHandler(review.NewService(db))
	notificationHandler := notification.NewHandler(notification.NewService(repository.NewNotificationRepository(db)))
	contactHandler := contact.NewHandler(contact.NewService(repository.NewContactRepository(db), mailer.New(log), log))
	statsHandler := stats.NewHandler(stats.NewService(repository.NewStatsRepository(db), repository.NewBookingRepository(db)))

	r := gin.New()
	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	catalogHandler.RegisterPublicRoutes(v1)
	reviewHandler.RegisterPublicRoutes(v1)
	contactHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))
	authHandler.RegisterProtectedRoutes(protected)
	bookingHandler.RegisterProtectedRoutes(protected)
	paymentHandler.RegisterProtectedRoutes(protected)
	discountHandler.RegisterProtectedRoutes(protected)
	reviewHandler.RegisterProtectedRoutes(protected)
	notificationHandler.RegisterProtectedRoutes(protected)

	staff := v1.Group("/staff")
	staff.Use(middleware.JWTAuth(j), middleware.StaffOrAdmin())
	bookingHandler.RegisterStaffRoutes(staff)
	paymentHandler.RegisterStaffRoutes(staff)
	reviewHandler.RegisterStaffRoutes(staff)
	notificationHandler.RegisterStaffRoutes(staff)
	contactHandler.RegisterStaffRoutes(staff)

	admin := v1.Group("/admin")
	admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
	authHandler.RegisterAdminRoutes(admin)
	catalogHandler.RegisterAdminRoutes(admin)
	discountHandler.RegisterAdminRoutes(admin)
	statsHandler.RegisterAdminRoutes(admin)

	return &suite{router: r, db: db}
}

func (s *suite) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func (s *suite) register(t *testing.T, username string) string {
	t.Helper()
	w, resp := s.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "secret1",
		"full_name": username,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return resp.Data["token"].(string)
}

// promote flips a user's role directly in the database, standing in for an
// out-of-band admin provisioning step.
func (s *suite) promote(t *testing.T, username string, role domain.UserRole) string {
	t.Helper()
	require.NoError(t, s.db.Model(&domain.User{}).
		Where("username = ?", username).
		Update("role", string(role)).Error)

	w, resp := s.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": username,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	return resp.Data["token"].(string)
}

func (s *suite) seedRoom(t *testing.T, adminToken string, price float64) float64 {
	t.Helper()
	w, resp := s.request(t, http.MethodPost, "/api/v1/admin/resorts", adminToken, gin.H{"name": "Coral Bay"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resortID := resp.Data["resort"].(map[string]interface{})["id"].(float64)

	w, resp = s.request(t, http.MethodPost, "/api/v1/admin/room-types", adminToken, gin.H{
		"name": "Deluxe", "price_per_night": price,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	typeID := resp.Data["room_type"].(map[string]interface{})["id"].(float64)

	w, resp = s.request(t, http.MethodPost, "/api/v1/admin/rooms", adminToken, gin.H{
		"resort_id": resortID, "room_type_id": typeID, "location": "A-101",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return resp.Data["room"].(map[string]interface{})["id"].(float64)
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("02/01/2006")
}

func TestFullBookingFlow(t *testing.T) {
	s := setup(t)

	s.register(t, "boss")
	adminToken := s.promote(t, "boss", domain.RoleAdmin)
	roomID := s.seedRoom(t, adminToken, 100)

	guestToken := s.register(t, "alice")

	// Admin creates a 10% discount.
	w, _ := s.request(t, http.MethodPost, "/api/v1/admin/discounts", adminToken, gin.H{
		"code": "SUMMER10", "name": "Summer", "discount_type": "percent",
		"value": 10, "usage_limit": 5,
		"valid_from":  time.Now().Format("2006-01-02"),
		"valid_until": time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Guest books two nights at 100/night.
	w, resp := s.request(t, http.MethodPost, "/api/v1/bookings", guestToken, gin.H{
		"room_id": roomID, "check_in": futureDate(7), "check_out": futureDate(9),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := resp.Data["booking"].(map[string]interface{})
	bookingID := b["id"].(float64)
	assert.Equal(t, 200.0, b["total_amount"])
	assert.Equal(t, "pending", b["status"])

	// Guest pays with the discount: 200 -> 180, booking confirmed.
	w, resp = s.request(t, http.MethodPost, "/api/v1/payments", guestToken, gin.H{
		"booking_id": bookingID, "payment_method": "card", "discount_code": "SUMMER10",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	p := resp.Data["payment"].(map[string]interface{})
	paymentID := p["id"].(float64)
	assert.Equal(t, 180.0, p["amount"])
	assert.Equal(t, "completed", p["status"])

	w, resp = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/bookings/%.0f", bookingID), guestToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", resp.Data["booking"].(map[string]interface{})["status"])

	// A second payment attempt conflicts.
	w, resp = s.request(t, http.MethodPost, "/api/v1/payments", guestToken, gin.H{
		"booking_id": bookingID, "payment_method": "cash",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_PAID", resp.Error.Code)

	// Staff refunds; booking flips to cancelled and the room frees up.
	w, resp = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/staff/payments/%.0f/refund", paymentID), adminToken, gin.H{
		"amount": 180, "reason": "trip cancelled",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "refunded", resp.Data["payment"].(map[string]interface{})["status"])

	w, resp = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/rooms/%.0f", roomID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "available", resp.Data["room"].(map[string]interface{})["status"])

	// The guest got a payment notification along the way.
	w, resp = s.request(t, http.MethodGet, "/api/v1/notifications", guestToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp.Data["notifications"])
}

func TestAdminStatusTransitionsSyncRoom(t *testing.T) {
	s := setup(t)

	s.register(t, "boss")
	adminToken := s.promote(t, "boss", domain.RoleAdmin)
	roomID := s.seedRoom(t, adminToken, 100)
	guestToken := s.register(t, "alice")

	w, resp := s.request(t, http.MethodPost, "/api/v1/bookings", guestToken, gin.H{
		"room_id": roomID, "check_in": futureDate(7), "check_out": futureDate(9),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := resp.Data["booking"].(map[string]interface{})["id"].(float64)

	cases := []struct {
		bookingStatus string
		roomStatus    string
	}{
		{"confirmed", "reserved"},
		{"checked_in", "occupied"},
		{"checked_out", "available"},
	}
	for _, tc := range cases {
		w, _ = s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/staff/bookings/%.0f/status", bookingID), adminToken, gin.H{
			"status": tc.bookingStatus,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w, resp = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/rooms/%.0f", roomID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tc.roomStatus, resp.Data["room"].(map[string]interface{})["status"], tc.bookingStatus)
	}
}

func TestCancelBookingWithinWindow(t *testing.T) {
	s := setup(t)

	s.register(t, "boss")
	adminToken := s.promote(t, "boss", domain.RoleAdmin)
	roomID := s.seedRoom(t, adminToken, 100)
	guestToken := s.register(t, "alice")

	w, resp := s.request(t, http.MethodPost, "/api/v1/bookings", guestToken, gin.H{
		"room_id": roomID, "check_in": futureDate(7), "check_out": futureDate(9),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := resp.Data["booking"].(map[string]interface{})["id"].(float64)

	w, resp = s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/bookings/%.0f/cancel", bookingID), guestToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cancelled", resp.Data["booking"].(map[string]interface{})["status"])

	// Cancelling again conflicts.
	w, resp = s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/bookings/%.0f/cancel", bookingID), guestToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "NOT_CANCELLABLE", resp.Error.Code)
}

func TestGuestCannotReachAdminRoutes(t *testing.T) {
	s := setup(t)
	guestToken := s.register(t, "alice")

	w, resp := s.request(t, http.MethodGet, "/api/v1/admin/users", guestToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	w, _ = s.request(t, http.MethodGet, "/api/v1/admin/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestContactFlowWithReply(t *testing.T) {
	s := setup(t)
	s.register(t, "boss")
	staffToken := s.promote(t, "boss", domain.RoleStaff)

	// Public submission, no auth.
	w, resp := s.request(t, http.MethodPost, "/api/v1/contacts", "", gin.H{
		"name": "Visitor", "email": "v@example.com", "subject": "Pets",
		"message": "Do you allow pets?",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	contactID := resp.Data["contact"].(map[string]interface{})["id"].(float64)

	w, resp = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/staff/contacts/%.0f/reply", contactID), staffToken, gin.H{
		"reply": "Small dogs are welcome.",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "replied", resp.Data["contact"].(map[string]interface{})["status"])
}

func TestReviewFlow(t *testing.T) {
	s := setup(t)
	s.register(t, "boss")
	adminToken := s.promote(t, "boss", domain.RoleAdmin)
	roomID := s.seedRoom(t, adminToken, 100)
	guestToken := s.register(t, "alice")

	w, _ := s.request(t, http.MethodPost, "/api/v1/reviews", guestToken, gin.H{
		"room_id": roomID, "rating": 4, "comment": "Great stay",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp := s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/rooms/%.0f/reviews", roomID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reviews := resp.Data["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	assert.Equal(t, "alice", reviews[0].(map[string]interface{})["username"])
}

func TestRevenueReport(t *testing.T) {
	s := setup(t)
	s.register(t, "boss")
	adminToken := s.promote(t, "boss", domain.RoleAdmin)
	roomID := s.seedRoom(t, adminToken, 100)
	guestToken := s.register(t, "alice")

	w, resp := s.request(t, http.MethodPost, "/api/v1/bookings", guestToken, gin.H{
		"room_id": roomID, "check_in": futureDate(7), "check_out": futureDate(9),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := resp.Data["booking"].(map[string]interface{})["id"].(float64)

	w, _ = s.request(t, http.MethodPost, "/api/v1/payments", guestToken, gin.H{
		"booking_id": bookingID, "payment_method": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = s.request(t, http.MethodGet, "/api/v1/admin/stats/revenue", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	report := resp.Data["report"].(map[string]interface{})
	totals := report["totals"].(map[string]interface{})
	assert.Equal(t, 200.0, totals["total_revenue"])
	assert.Equal(t, 200.0, totals["net_revenue"])
}
