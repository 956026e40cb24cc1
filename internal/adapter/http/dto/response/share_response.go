package response

import "salon_campeche/internal/domain/entities"

// ShareLinkResponse carries the WhatsApp handoff: the raw message for
// preview and the wa.me deep link the browser opens.
type ShareLinkResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// InvalidFormResponse is returned when a submitted form fails validation:
// the standard error envelope plus the per-field rule messages.
type InvalidFormResponse struct {
	Code    string                    `json:"code"`
	Message string                    `json:"message"`
	Errors  []ValidationErrorResponse `json:"errors"`
}

func FromShareLink(link entities.ShareLink) ShareLinkResponse {
	return ShareLinkResponse{URL: link.URL, Message: link.Message}
}

func NewInvalidFormResponse(code, message string, errs []entities.ValidationError) InvalidFormResponse {
	return InvalidFormResponse{Code: code, Message: message, Errors: fromValidationErrors(errs)}
}
