package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"notebase/internal/model"
	"notebase/internal/service"
)

// TopicHandler handles topic endpoints. All routes require a validated
// bearer token; the principal is injected by the router's JWT middleware.
type TopicHandler struct {
	topicService service.TopicService
}

// NewTopicHandler creates a new topic handler.
func NewTopicHandler(topicService service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// TopicRequest carries a topic name for create and rename.
type TopicRequest struct {
	TopicName string `json:"topic_name" validate:"required,max=255"`
}

func principal(c echo.Context) (*model.Principal, error) {
	p, ok := c.Get("user").(*model.Principal)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return p, nil
}

// ListTopics godoc
// @Summary List the caller's topics
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Topic
// @Failure 401 {object} errors.ErrorResponse
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	topics, err := h.topicService.ListTopics(c.Request().Context(), p.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, topics)
}

// CreateTopic godoc
// @Summary Create a topic
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TopicRequest true "Topic name"
// @Success 201 {object} model.Topic
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /topics [post]
func (h *TopicHandler) CreateTopic(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req TopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	topic, err := h.topicService.CreateTopic(c.Request().Context(), p.UserID, req.TopicName)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, topic)
}

// RenameTopic godoc
// @Summary Rename a topic
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param request body TopicRequest true "New topic name"
// @Success 200 {object} model.Topic
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /topics/{id} [put]
func (h *TopicHandler) RenameTopic(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	topicID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid topic id")
	}

	var req TopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	topic, err := h.topicService.RenameTopic(c.Request().Context(), p.UserID, topicID, req.TopicName)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, topic)
}

// DeleteTopic godoc
// @Summary Delete a topic
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	topicID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid topic id")
	}

	if err := h.topicService.DeleteTopic(c.Request().Context(), p.UserID, topicID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "topic deleted",
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
