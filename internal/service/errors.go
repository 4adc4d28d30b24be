package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/tastyhub/internal/auth"
	"github.com/mmynk/tastyhub/internal/cart"
	"github.com/mmynk/tastyhub/internal/preferences"
	"github.com/mmynk/tastyhub/internal/redemption"
	"github.com/mmynk/tastyhub/internal/reservation"
	"github.com/mmynk/tastyhub/internal/storage"
)

var (
	errUnknownItem     = errors.New("unknown menu item")
	errUnknownLocation = errors.New("unknown location")
	errMissingField    = errors.New("required field is empty")
	errInvalidPrice    = errors.New("invalid price")
)

var errorCodes = []struct {
	err  error
	code connect.Code
}{
	{redemption.ErrNotEligible, connect.CodeInvalidArgument},
	{redemption.ErrEmptySelection, connect.CodeInvalidArgument},
	{redemption.ErrIncomplete, connect.CodeInvalidArgument},
	{cart.ErrInvalidItem, connect.CodeInvalidArgument},
	{reservation.ErrInvalidPartySize, connect.CodeInvalidArgument},
	{reservation.ErrPastTime, connect.CodeInvalidArgument},
	{reservation.ErrMissingContact, connect.CodeInvalidArgument},
	{preferences.ErrInvalidTheme, connect.CodeInvalidArgument},
	{preferences.ErrInvalidFontSize, connect.CodeInvalidArgument},
	{errMissingField, connect.CodeInvalidArgument},
	{errInvalidPrice, connect.CodeInvalidArgument},

	{cart.ErrDealAlreadyApplied, connect.CodeFailedPrecondition},
	{cart.ErrEmptyCart, connect.CodeFailedPrecondition},
	{cart.ErrDealQuantity, connect.CodeFailedPrecondition},
	{redemption.ErrSessionClosed, connect.CodeFailedPrecondition},
	{redemption.ErrDealExpired, connect.CodeFailedPrecondition},
	{redemption.ErrNoActiveDeal, connect.CodeFailedPrecondition},

	{redemption.ErrUnknownDeal, connect.CodeNotFound},
	{reservation.ErrUnknownLocation, connect.CodeNotFound},
	{storage.ErrNotFound, connect.CodeNotFound},
	{errUnknownItem, connect.CodeNotFound},
	{errUnknownLocation, connect.CodeNotFound},

	{reservation.ErrNotOwner, connect.CodePermissionDenied},
	{auth.ErrMissingToken, connect.CodeUnauthenticated},
	{auth.ErrInvalidToken, connect.CodeUnauthenticated},
	{auth.ErrRevokedToken, connect.CodeUnauthenticated},
}

// toConnectError maps a domain error to a Connect error code. Unknown
// errors become CodeInternal.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return connect.NewError(ec.code, err)
		}
	}
	return connect.NewError(connect.CodeInternal, err)
}
