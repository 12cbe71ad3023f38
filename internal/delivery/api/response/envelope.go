package response

// Problem is the error member of a failed response.
// Code is the business code, e.g. "STORE_NOT_FOUND".
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta travels with every response
type Meta struct {
	RequestID string `json:"request_id"`
}

type successBody struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta"`
}

type errorBody struct {
	Error *Problem `json:"error"`
	Meta  *Meta    `json:"meta"`
}
