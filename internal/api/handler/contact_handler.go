package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ievolvetecnologia/maturidadeqa/internal/api/metrics"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// ContactHandler receives demonstration requests from the public landing
// form. Response messages are part of the public contract consumed by the
// frontend and stay in Portuguese.
type ContactHandler struct {
	notificationService ports.NotificationService
}

func NewContactHandler(notificationService ports.NotificationService) *ContactHandler {
	return &ContactHandler{notificationService: notificationService}
}

type demoRequestBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type demoRequestResponse struct {
	Message   string `json:"message"`
	Success   bool   `json:"success,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SendDemoRequest validates the form and dispatches the notification email.
//
// @Summary      Request a demonstration
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      demoRequestBody  true  "Contact details"
// @Success      200   {object}  demoRequestResponse
// @Failure      400   {object}  demoRequestResponse
// @Failure      500   {object}  demoRequestResponse
// @Router       /api/contact [post]
func (h *ContactHandler) SendDemoRequest(c echo.Context) error {
	var req demoRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, demoRequestResponse{
			Message: "Nome, email e telefone são obrigatórios",
		})
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, demoRequestResponse{
			Message: "Nome, email e telefone são obrigatórios",
		})
	}

	messageID, err := h.notificationService.SendDemoRequest(c.Request().Context(), ports.DemoRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		metrics.DemoRequestsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, demoRequestResponse{
			Message: "Erro ao processar a solicitação",
			Error:   err.Error(),
		})
	}

	metrics.DemoRequestsTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusOK, demoRequestResponse{
		Message:   "Email enviado com sucesso",
		Success:   true,
		MessageID: messageID,
	})
}
