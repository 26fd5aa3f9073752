package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	taggingapp "github.com/storefront/backend/internal/application/tagging"
	"github.com/storefront/backend/internal/domain/tagging"
)

// TagHandler handles tags and their attachment to catalog, customer and
// order records
type TagHandler struct {
	BaseHandler
	tagService *taggingapp.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService *taggingapp.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List godoc
// @ID           listTags
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200 {object} APIResponse[[]taggingapp.TagResponse]
// @Router       /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tags)
}

// Create godoc
// @ID           createTag
// @Summary      Create a tag
// @Description  Returns the existing tag with 200 when the label is taken
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        request body taggingapp.CreateTagRequest true "Tag"
// @Success      200 {object} APIResponse[taggingapp.TagResponse]
// @Success      201 {object} APIResponse[taggingapp.TagResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	var req taggingapp.CreateTagRequest
	if !bindJSON(c, &req) {
		return
	}
	tag, created, err := h.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if created {
		h.Created(c, tag)
		return
	}
	h.Success(c, tag)
}

// ListFor godoc
// @ID           listTagsForObject
// @Summary      Tags attached to a record
// @Tags         tags
// @Produce      json
// @Param        kind path string true "product, category, customer, order or promotion"
// @Param        object_id path string true "Record ID"
// @Success      200 {object} APIResponse[[]taggingapp.TagResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /tags/{kind}/{object_id} [get]
func (h *TagHandler) ListFor(c *gin.Context) {
	kind, objectID, ok := h.target(c)
	if !ok {
		return
	}
	tags, err := h.tagService.TagsFor(c.Request.Context(), kind, objectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tags)
}

// Attach godoc
// @ID           tagObject
// @Summary      Tag a record
// @Description  Creates the tag when the label is new. Tagging twice is a no-op.
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        kind path string true "product, category, customer, order or promotion"
// @Param        object_id path string true "Record ID"
// @Param        request body taggingapp.TagEntityRequest true "Label"
// @Success      201 {object} APIResponse[taggingapp.TaggedItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/{kind}/{object_id} [post]
func (h *TagHandler) Attach(c *gin.Context) {
	kind, objectID, ok := h.target(c)
	if !ok {
		return
	}
	var req taggingapp.TagEntityRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.tagService.TagEntity(c.Request.Context(), kind, objectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Detach godoc
// @ID           untagObject
// @Summary      Remove a tag from a record
// @Tags         tags
// @Param        kind path string true "product, category, customer, order or promotion"
// @Param        object_id path string true "Record ID"
// @Param        tag_id path string true "Tag ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tags/{kind}/{object_id}/{tag_id} [delete]
func (h *TagHandler) Detach(c *gin.Context) {
	kind, objectID, ok := h.target(c)
	if !ok {
		return
	}
	tagID, ok := uuidParam(c, "tag_id")
	if !ok {
		return
	}
	if err := h.tagService.UntagEntity(c.Request.Context(), kind, objectID, tagID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *TagHandler) target(c *gin.Context) (tagging.EntityKind, uuid.UUID, bool) {
	kind, err := tagging.ParseEntityKind(c.Param("kind"))
	if err != nil {
		h.HandleError(c, err)
		return "", uuid.Nil, false
	}
	objectID, ok := uuidParam(c, "object_id")
	if !ok {
		return "", uuid.Nil, false
	}
	return kind, objectID, true
}
