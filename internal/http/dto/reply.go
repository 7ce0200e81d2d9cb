package dto

// ReplyRequest carries the customer email to answer. A missing or empty body
// is rejected by the reply service with service.ErrEmptyBody.
type ReplyRequest struct {
	Body string `json:"body"`
}

type ReplyResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	Kind   string `json:"kind,omitempty"`
}
