package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ievolvetecnologia/maturidadeqa/internal/api/metrics"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// ActionPlanHandler exposes the action-plan endpoints.
type ActionPlanHandler struct {
	planService ports.ActionPlanService
}

func NewActionPlanHandler(planService ports.ActionPlanService) *ActionPlanHandler {
	return &ActionPlanHandler{planService: planService}
}

type createPlanRequest struct {
	AssessmentID  string     `json:"assessmentId" validate:"required"`
	PracticeID    string     `json:"practiceId" validate:"required"`
	CategoryName  string     `json:"categoryName"`
	PracticeName  string     `json:"practiceName"`
	MaturityScore int        `json:"maturityScore"`
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	Responsible   string     `json:"responsible"`
	Priority      string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate       *time.Time `json:"dueDate"`
	Status        string     `json:"status" validate:"omitempty,oneof=todo in-progress done"`
}

type updatePlanRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Responsible string     `json:"responsible"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in-progress done"`
}

// Create registers a plan for a low-maturity practice. The maturity score is
// snapshotted as sent and never recomputed.
//
// @Summary      Create action plan
// @Tags         action-plans
// @Accept       json
// @Produce      json
// @Param        body  body      createPlanRequest  true  "New plan"
// @Success      201   {object}  domain.ActionPlan
// @Failure      400   {object}  map[string]string
// @Router       /api/action-plans [post]
func (h *ActionPlanHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.planService.Create(c.Request().Context(), ports.CreateActionPlanInput{
		UserID:        user.ID,
		UserName:      user.Name,
		AssessmentID:  req.AssessmentID,
		PracticeID:    req.PracticeID,
		CategoryName:  req.CategoryName,
		PracticeName:  req.PracticeName,
		MaturityScore: req.MaturityScore,
		Title:         req.Title,
		Description:   req.Description,
		Responsible:   req.Responsible,
		Priority:      domain.PlanPriority(req.Priority),
		DueDate:       req.DueDate,
		Status:        domain.PlanStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.ActionPlansTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, plan)
}

// Update changes the mutable fields of one of the user's plans.
func (h *ActionPlanHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updatePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.planService.Update(c.Request().Context(), ports.UpdateActionPlanInput{
		ID:          c.Param("id"),
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Responsible: req.Responsible,
		Priority:    domain.PlanPriority(req.Priority),
		DueDate:     req.DueDate,
		Status:      domain.PlanStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.ActionPlansTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, plan)
}

// Delete removes one of the user's plans.
func (h *ActionPlanHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.planService.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}

	metrics.ActionPlansTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

// List returns the user's plans, optionally narrowed by ?squad= and
// ?valueStream= joined through each plan's originating assessment.
func (h *ActionPlanHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	plans, err := h.planService.List(c.Request().Context(), ports.ActionPlanFilter{
		UserID:      user.ID,
		SquadName:   c.QueryParam("squad"),
		ValueStream: c.QueryParam("valueStream"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}
