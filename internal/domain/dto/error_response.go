package dto

import "time"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message      string    `json:"message" example:"item not found"`
	ErrorDetails string    `json:"error,omitempty" example:"item \"A1\" not found in sales data"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
