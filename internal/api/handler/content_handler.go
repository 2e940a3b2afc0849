package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

type ContentHandler struct {
	contentService ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Create publishes a new content record. The creator is the authenticated
// user.
//
// @Summary      Create content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      createContentRequest  true  "Content record"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /content [post]
func (h *ContentHandler) Create(c echo.Context) error {
	var req createContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	creatorID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid user identity")
	}

	categoryIDs := make([]primitive.ObjectID, 0, len(req.CategoryIDs))
	for _, raw := range req.CategoryIDs {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
		}
		categoryIDs = append(categoryIDs, oid)
	}

	content, err := h.contentService.Create(c.Request().Context(), &domain.Content{
		Title:       req.Title,
		Kind:        domain.ContentKind(req.Kind),
		Theme:       req.Theme,
		CreatorID:   creatorID,
		URL:         req.URL,
		Text:        req.Text,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"data": content})
}

// List returns content records matching the optional query filters, with
// creator and categories expanded.
//
// @Summary      List content
// @Tags         content
// @Produce      json
// @Param        kind   query  string  false  "Filter by content kind"
// @Param        theme  query  string  false  "Filter by theme"
// @Success      200  {object}  map[string]any
// @Router       /content/list [get]
func (h *ContentHandler) List(c echo.Context) error {
	filter := ports.Filter{}
	if kind := c.QueryParam("kind"); kind != "" {
		filter["kind"] = kind
	}
	if theme := c.QueryParam("theme"); theme != "" {
		filter["theme"] = theme
	}

	contents, err := h.contentService.Find(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": contents})
}

// Detail returns a single content record by id.
//
// @Summary      Get content
// @Tags         content
// @Produce      json
// @Param        id  path  string  true  "Content id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /content/{id} [get]
func (h *ContentHandler) Detail(c echo.Context) error {
	content, err := h.contentService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": content})
}

// Update applies a partial field set to a content record.
//
// @Summary      Update content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Content id"
// @Param        body  body  updateContentRequest  true  "Fields to update"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /content/{id} [put]
func (h *ContentHandler) Update(c echo.Context) error {
	var req updateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.Filter{}
	if req.Title != "" {
		patch["title"] = req.Title
	}
	if req.Theme != "" {
		patch["theme"] = req.Theme
	}
	if req.URL != "" {
		patch["url"] = req.URL
	}
	if req.Text != "" {
		patch["text"] = req.Text
	}
	if len(patch) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	content, err := h.contentService.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": content})
}

// Delete removes a content record. Deleting an unknown id succeeds.
//
// @Summary      Delete content
// @Tags         content
// @Param        id  path  string  true  "Content id"
// @Success      204  "No Content"
// @Router       /content/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	if err := h.contentService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
