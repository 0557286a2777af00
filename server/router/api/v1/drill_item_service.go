package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/store"
)

// ListDrillItems returns catalog items, optionally filtered by unit and type.
// GET /api/v1/items
func (s *APIV1Service) ListDrillItems(c echo.Context) error {
	ctx := c.Request().Context()
	find := &store.FindDrillItem{}

	if v := c.QueryParam("unit"); v != "" {
		unit, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid unit").SetInternal(err)
		}
		find.Unit = &unit
	}
	if v := c.QueryParam("type"); v != "" {
		itemType := catalog.ItemType(v)
		switch itemType {
		case catalog.TypeTranslation, catalog.TypeRepeat, catalog.TypeDialogue:
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid item type")
		}
		find.Type = &itemType
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		find.Limit = &limit
		if v := c.QueryParam("offset"); v != "" {
			offset, err := strconv.Atoi(v)
			if err != nil || offset < 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
			}
			find.Offset = &offset
		}
	}

	items, err := s.Store.ListDrillItems(ctx, find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list items").SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
