package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ievolvetecnologia/maturidadeqa/internal/api/metrics"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// AssessmentHandler exposes the questionnaire endpoints. Every operation is
// scoped to the authenticated user.
type AssessmentHandler struct {
	assessmentService ports.AssessmentService
}

func NewAssessmentHandler(assessmentService ports.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

type submitAssessmentRequest struct {
	SquadName    string            `json:"squadName" validate:"required"`
	ValueStream  string            `json:"valueStream"`
	Answers      domain.AnswerMap  `json:"answers" validate:"required"`
	Observations map[string]string `json:"observations"`
}

type saveDraftRequest struct {
	SquadName    string            `json:"squadName"`
	ValueStream  string            `json:"valueStream"`
	Answers      domain.AnswerMap  `json:"answers"`
	Observations map[string]string `json:"observations"`
}

// Submit stores a finished questionnaire and clears the draft.
//
// @Summary      Submit assessment
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        body  body      submitAssessmentRequest  true  "Completed questionnaire"
// @Success      201   {object}  domain.Assessment
// @Failure      400   {object}  map[string]string
// @Router       /api/assessments [post]
func (h *AssessmentHandler) Submit(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req submitAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assessment, err := h.assessmentService.Submit(c.Request().Context(), ports.SubmitAssessmentInput{
		UserID:       user.ID,
		UserName:     user.Name,
		SquadName:    req.SquadName,
		ValueStream:  req.ValueStream,
		Answers:      req.Answers,
		Observations: req.Observations,
	})
	if err != nil {
		return err
	}

	metrics.AssessmentsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, assessment)
}

// List returns the user's assessments, most recent first, optionally
// filtered by ?squad= and ?valueStream=.
func (h *AssessmentHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	assessments, err := h.assessmentService.List(c.Request().Context(), ports.ListAssessmentsInput{
		UserID:      user.ID,
		IncludeAll:  user.Role == domain.RoleAdmin && c.QueryParam("all") == "true",
		SquadName:   c.QueryParam("squad"),
		ValueStream: c.QueryParam("valueStream"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessments)
}

// Get returns one of the user's assessments.
func (h *AssessmentHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	assessment, err := h.assessmentService.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessment)
}

// Delete removes one of the user's assessments.
func (h *AssessmentHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.assessmentService.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Summary returns the computed scores, maturity band, and low-maturity
// practices of one assessment.
//
// @Summary      Assessment summary
// @Tags         assessments
// @Produce      json
// @Param        id  path      string  true  "Assessment id"
// @Success      200  {object}  ports.AssessmentSummary
// @Failure      404  {object}  map[string]string
// @Router       /api/assessments/{id}/summary [get]
func (h *AssessmentHandler) Summary(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	summary, err := h.assessmentService.Summary(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Filters returns the distinct squads and value streams across the user's
// assessments.
func (h *AssessmentHandler) Filters(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	filters, err := h.assessmentService.Filters(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, filters)
}

// Draft returns the user's in-progress questionnaire, empty when none is
// saved.
func (h *AssessmentHandler) Draft(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	draft, err := h.assessmentService.Draft(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// SaveDraft stores the user's in-progress questionnaire.
func (h *AssessmentHandler) SaveDraft(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req saveDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	draft := &domain.AssessmentDraft{
		SquadName:    req.SquadName,
		ValueStream:  req.ValueStream,
		Answers:      req.Answers,
		Observations: req.Observations,
	}
	if err := h.assessmentService.SaveDraft(c.Request().Context(), user.ID, draft); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// ClearDraft discards the user's in-progress questionnaire.
func (h *AssessmentHandler) ClearDraft(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.assessmentService.ClearDraft(c.Request().Context(), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
