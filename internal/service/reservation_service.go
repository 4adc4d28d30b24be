package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tastyhub/internal/middleware"
	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/reservation"
)

// ReservationService books and cancels the caller's table reservations.
type ReservationService struct {
	reservations *reservation.Service
}

// NewReservationService creates a ReservationService.
func NewReservationService(reservations *reservation.Service) *ReservationService {
	return &ReservationService{reservations: reservations}
}

// CreateReservation books a table.
func (s *ReservationService) CreateReservation(ctx context.Context, req *connect.Request[CreateReservationRequest]) (*connect.Response[ReservationResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("CreateReservation request received",
		"user_id", userID,
		"location_id", req.Msg.Reservation.LocationID,
		"party_size", req.Msg.Reservation.PartySize,
	)

	r, err := s.reservations.Create(ctx, userID, req.Msg.Reservation)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ReservationResponse{Reservation: r}), nil
}

// ListReservations returns the caller's reservations, newest booking first.
func (s *ReservationService) ListReservations(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListReservationsResponse], error) {
	list, err := s.reservations.List(ctx, middleware.GetUserID(ctx))
	if err != nil {
		return nil, toConnectError(err)
	}
	if list == nil {
		list = []*models.Reservation{}
	}
	return connect.NewResponse(&ListReservationsResponse{Reservations: list}), nil
}

// CancelReservation cancels one of the caller's reservations.
func (s *ReservationService) CancelReservation(ctx context.Context, req *connect.Request[CancelReservationRequest]) (*connect.Response[ReservationResponse], error) {
	if req.Msg.ID == "" {
		return nil, toConnectError(errMissingField)
	}
	r, err := s.reservations.Cancel(ctx, middleware.GetUserID(ctx), req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ReservationResponse{Reservation: r}), nil
}
