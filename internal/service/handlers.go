package service

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Fully-qualified service names.
const (
	MenuServiceName        = "tastyhub.v1.MenuService"
	DealServiceName        = "tastyhub.v1.DealService"
	CartServiceName        = "tastyhub.v1.CartService"
	AuthServiceName        = "tastyhub.v1.AuthService"
	ProfileServiceName     = "tastyhub.v1.ProfileService"
	ReservationServiceName = "tastyhub.v1.ReservationService"
)

// Procedure returns the URL path of method on service.
func Procedure(service, method string) string {
	return "/" + service + "/" + method
}

// routes collects the unary procedures of one service.
type routes struct {
	service string
	mux     *http.ServeMux
	opts    []connect.HandlerOption
}

func newRoutes(service string, opts []connect.HandlerOption) *routes {
	return &routes{
		service: service,
		mux:     http.NewServeMux(),
		opts:    append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...),
	}
}

func unary[Req, Res any](r *routes, method string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error)) {
	procedure := Procedure(r.service, method)
	r.mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, r.opts...))
}

func (r *routes) handler() (string, http.Handler) {
	return "/" + r.service + "/", r.mux
}

// NewMenuServiceHandler returns the mount path and handler for svc.
func NewMenuServiceHandler(svc *MenuService, opts ...connect.HandlerOption) (string, http.Handler) {
	r := newRoutes(MenuServiceName, opts)
	unary(r, "ListMenu", svc.ListMenu)
	unary(r, "GetMenuItem", svc.GetMenuItem)
	unary(r, "ListLocations", svc.ListLocations)
	return r.handler()
}

// NewDealServiceHandler returns the mount path and handler for svc.
func NewDealServiceHandler(svc *DealService, opts ...connect.HandlerOption) (string, http.Handler) {
	r := newRoutes(DealServiceName, opts)
	unary(r, "ListDeals", svc.ListDeals)
	unary(r, "GetDeal", svc.GetDeal)
	unary(r, "ActivateDeal", svc.ActivateDeal)
	unary(r, "GetRedemption", svc.GetRedemption)
	unary(r, "ToggleItem", svc.ToggleItem)
	unary(r, "CommitDeal", svc.CommitDeal)
	unary(r, "AbandonDeal", svc.AbandonDeal)
	return r.handler()
}

// NewCartServiceHandler returns the mount path and handler for svc.
func NewCartServiceHandler(svc *CartService, opts ...connect.HandlerOption) (string, http.Handler) {
	r := newRoutes(CartServiceName, opts)
	unary(r, "GetCart", svc.GetCart)
	unary(r, "AddItem", svc.AddItem)
	unary(r, "RemoveItem", svc.RemoveItem)
	unary(r, "UpdateQuantity", svc.UpdateQuantity)
	unary(r, "ClearCart", svc.ClearCart)
	unary(r, "Checkout", svc.Checkout)
	unary(r, "ListOrders", svc.ListOrders)
	return r.handler()
}

// NewAuthServiceHandler returns the mount path and handler for svc.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	r := newRoutes(AuthServiceName, opts)
	unary(r, "SignUp", svc.SignUp)
	unary(r, "SignIn", svc.SignIn)
	unary(r, "SignOut", svc.SignOut)
	unary(r, "GetSession", svc.GetSession)
	return r.handler()
}

// NewProfileServiceHandler returns the mount path and handler for svc.
func NewProfileServiceHandler(svc *ProfileService, opts ...connect.HandlerOption) (string, http.Handler) {
	r := newRoutes(ProfileServiceName, opts)
	unary(r, "GetProfile", svc.GetProfile)
	unary(r, "UpdateProfile", svc.UpdateProfile)
	unary(r, "GetPreferences", svc.GetPreferences)
	unary(r, "UpdatePreferences", svc.UpdatePreferences)
	unary(r, "ListFavorites", svc.ListFavorites)
	unary(r, "ToggleFavoriteLocation", svc.ToggleFavoriteLocation)
	unary(r, "ToggleFavoriteMeal", svc.ToggleFavoriteMeal)
	return r.handler()
}

// NewReservationServiceHandler returns the mount path and handler for svc.
func NewReservationServiceHandler(svc *ReservationService, opts ...connect.HandlerOption) (string, http.Handler) {
	r := newRoutes(ReservationServiceName, opts)
	unary(r, "CreateReservation", svc.CreateReservation)
	unary(r, "ListReservations", svc.ListReservations)
	unary(r, "CancelReservation", svc.CancelReservation)
	return r.handler()
}
