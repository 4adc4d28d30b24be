package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/money"
)

// MenuService serves the public menu and location catalogs.
type MenuService struct {
	menu      *catalog.Catalog
	locations *catalog.Locations
}

// NewMenuService creates a MenuService.
func NewMenuService(menu *catalog.Catalog, locations *catalog.Locations) *MenuService {
	return &MenuService{menu: menu, locations: locations}
}

// ListMenu returns the menu items matching the request filters.
func (s *MenuService) ListMenu(ctx context.Context, req *connect.Request[ListMenuRequest]) (*connect.Response[ListMenuResponse], error) {
	slog.Debug("ListMenu request received", "category", req.Msg.Category, "tag", req.Msg.Tag, "query", req.Msg.Query)

	filter := catalog.MenuFilter{
		Category:   req.Msg.Category,
		Tag:        req.Msg.Tag,
		Query:      req.Msg.Query,
		Vegetarian: req.Msg.Vegetarian,
		Vegan:      req.Msg.Vegan,
		GlutenFree: req.Msg.GlutenFree,
	}
	if req.Msg.MaxPrice != "" {
		limit, err := money.Parse(req.Msg.MaxPrice)
		if err != nil {
			return nil, toConnectError(fmt.Errorf("%w: %q", errInvalidPrice, req.Msg.MaxPrice))
		}
		filter.MaxPrice = limit
	}

	return connect.NewResponse(&ListMenuResponse{
		Items:      s.menu.Filter(filter),
		Categories: s.menu.Categories(),
	}), nil
}

// GetMenuItem returns one item by ID.
func (s *MenuService) GetMenuItem(ctx context.Context, req *connect.Request[GetMenuItemRequest]) (*connect.Response[GetMenuItemResponse], error) {
	item, ok := s.menu.ByID(req.Msg.ID)
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", errUnknownItem, req.Msg.ID))
	}
	return connect.NewResponse(&GetMenuItemResponse{Item: item}), nil
}

// ListLocations returns every location, or those matching the query by
// name, city or zip.
func (s *MenuService) ListLocations(ctx context.Context, req *connect.Request[ListLocationsRequest]) (*connect.Response[ListLocationsResponse], error) {
	list := s.locations.All()
	if req.Msg.Query != "" {
		list = s.locations.Search(req.Msg.Query)
	}
	return connect.NewResponse(&ListLocationsResponse{Locations: list}), nil
}
