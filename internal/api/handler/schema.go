package handler

// errorResponse is the standard envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// messageResponse is the envelope for confirmations that carry no record.
type messageResponse struct {
	Message string `json:"message"`
}
