package api

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.temporal.io/sdk/client"

	"techtravel/internal/models"
	"techtravel/internal/temporal/workflows"
)

// Register creates a new user account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) || !h.validateBody(w, &req) {
		return
	}

	hash, err := h.Auth.HashPassword(req.Password)
	if err != nil {
		respondFailure(w, err)
		return
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Gender:   req.Gender,
	}
	if err := h.DB.CreateUser(r.Context(), user); err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusCreated, models.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email})
}

// Login checks credentials and issues access and refresh tokens.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) || !h.validateBody(w, &req) {
		return
	}

	user, err := h.DB.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !h.Auth.CheckPassword(user.Password, req.Password) {
		// Same answer whether the email or the password was wrong.
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	accessToken, err := h.Auth.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		respondFailure(w, err)
		return
	}
	refreshToken, err := h.Auth.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, models.AuthResponse{
		User:         models.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh exchanges a valid refresh token for a new access token.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeBody(w, r, &req) || !h.validateBody(w, &req) {
		return
	}

	claims, err := h.Auth.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		respondFailure(w, err)
		return
	}
	if _, err := h.DB.GetUser(r.Context(), claims.UserID); err != nil {
		respondFailure(w, err)
		return
	}

	accessToken, err := h.Auth.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"access_token": accessToken})
}

// Profile returns the authenticated user.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "token not provided")
		return
	}

	user, err := h.DB.GetUser(r.Context(), claims.UserID)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respond(w, http.StatusOK, user)
}

// CreateBooking books an itinerary for a user and kicks off the order
// notification pipeline.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if !decodeBody(w, r, &req) || !h.validateBody(w, &req) {
		return
	}

	user, err := h.DB.GetUser(r.Context(), req.UserID)
	if err != nil {
		respondFailure(w, err)
		return
	}
	if _, err := h.DB.GetItinerary(r.Context(), req.ItineraryID); err != nil {
		respondFailure(w, err)
		return
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		ItineraryID: req.ItineraryID,
		Status:      models.BookingConfirmed,
	}
	if err := h.DB.CreateBooking(r.Context(), booking); err != nil {
		respondFailure(w, err)
		return
	}

	// Notification is best-effort: the booking is already committed, so a
	// pipeline failure must not fail the request.
	h.startOrderWorkflow(r, booking, user.Email)

	respond(w, http.StatusCreated, booking)
}

func (h *Handler) startOrderWorkflow(r *http.Request, booking *models.Booking, email string) {
	if h.TemporalClient == nil {
		return
	}

	input := models.OrderInput{
		OrderID:   uuid.New().String(),
		BookingID: booking.ID,
		Email:     email,
		Amount:    rand.Intn(1000) + 1,
	}
	options := client.StartWorkflowOptions{
		ID:        input.OrderID,
		TaskQueue: workflows.OrderTaskQueue,
	}

	if _, err := h.TemporalClient.ExecuteWorkflow(r.Context(), options, workflows.OrderWorkflow, input); err != nil {
		log.Printf("failed to start order workflow for booking %s: %v", booking.ID, err)
	}
}

// GetUserBookings lists a user's bookings, newest first.
func (h *Handler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if _, err := h.DB.GetUser(r.Context(), userID); err != nil {
		respondFailure(w, err)
		return
	}

	bookings, err := h.DB.GetUserBookings(r.Context(), userID)
	if err != nil {
		respondFailure(w, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	respond(w, http.StatusOK, bookings)
}

// CancelBooking flips a booking to CANCELLED. Cancelling twice is an error.
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	booking, err := h.DB.GetBooking(r.Context(), id)
	if err != nil {
		respondFailure(w, err)
		return
	}
	if booking.Status == models.BookingCancelled {
		respondError(w, http.StatusBadRequest, "booking is already cancelled")
		return
	}

	if err := h.DB.UpdateBookingStatus(r.Context(), id, models.BookingCancelled); err != nil {
		respondFailure(w, err)
		return
	}

	booking.Status = models.BookingCancelled
	booking.UpdatedAt = time.Now()
	respond(w, http.StatusOK, booking)
}
