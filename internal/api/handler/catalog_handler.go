package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// CatalogHandler serves the merged question catalog and manages custom
// practices.
type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type savePracticeRequest struct {
	CategoryID string   `json:"categoryId" validate:"required"`
	ID         int      `json:"id"`
	Name       string   `json:"name" validate:"required"`
	Questions  []string `json:"questions" validate:"required,min=1,dive,required"`
}

// Catalog returns the default catalog merged with custom practices.
//
// @Summary      Question catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/catalog [get]
func (h *CatalogHandler) Catalog(c echo.Context) error {
	catalog, err := h.catalogService.Catalog(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalog)
}

// SavePractice appends a custom practice to a category.
//
// @Summary      Save custom practice
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      savePracticeRequest  true  "Practice"
// @Success      201   {object}  domain.Practice
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/catalog/practices [post]
func (h *CatalogHandler) SavePractice(c echo.Context) error {
	var req savePracticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	questions := make([]domain.Question, 0, len(req.Questions))
	for _, text := range req.Questions {
		questions = append(questions, domain.Question{Text: text})
	}

	practice, err := h.catalogService.SaveCustomPractice(c.Request().Context(), req.CategoryID, domain.Practice{
		ID:        req.ID,
		Name:      req.Name,
		Questions: questions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, practice)
}

// DeletePractice removes a custom practice. Default practices cannot be
// removed.
//
// @Summary      Delete custom practice
// @Tags         catalog
// @Produce      json
// @Param        categoryId  path  string  true  "Category id"
// @Param        practiceId  path  int     true  "Practice id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/catalog/practices/{categoryId}/{practiceId} [delete]
func (h *CatalogHandler) DeletePractice(c echo.Context) error {
	practiceID, err := strconv.Atoi(c.Param("practiceId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid practice id")
	}

	if err := h.catalogService.DeleteCustomPractice(c.Request().Context(), c.Param("categoryId"), practiceID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
