package v1

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"inboxops-contact-api/internal/delivery/http/response"
	"inboxops-contact-api/internal/domain"
	"inboxops-contact-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errNullPayload = errors.New("payload is null")

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact form submission, notifies the InboxOps inbox and sends the submitter a confirmation.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      405      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := bindContactRequest(c, &req); err != nil {
		// Unparseable bodies are reported like any other unexpected failure
		c.Error(fmt.Errorf("failed to parse contact payload: %w", err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		c.Error(contactError(err))
		return
	}

	response.Success(c, http.StatusOK, "Message sent successfully", nil)
}

// bindContactRequest decodes the body as a JSON object. A literal null decodes
// cleanly into the zero struct, so it is rejected here as malformed.
func bindContactRequest(c *gin.Context, req *domain.ContactRequest) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return errNullPayload
	}
	return binding.JSON.BindBody(body, req)
}

// contactError maps usecase failures to their client-facing status and message.
// Unknown errors pass through and end up as the generic 500.
func contactError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return apperror.BadRequest("Missing required fields", err)
	case errors.Is(err, domain.ErrInvalidEmail):
		return apperror.BadRequest("Invalid email address", err)
	case errors.Is(err, domain.ErrNotConfigured):
		return apperror.Internal("Server configuration error", err)
	case errors.Is(err, domain.ErrLeadDelivery):
		return apperror.Internal(response.GenericErrorMessage, err)
	default:
		return err
	}
}
