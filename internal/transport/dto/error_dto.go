package dto

// CustomErrorDTO is the body of every error response.
type CustomErrorDTO struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// NewCustomError builds an error body. A nil field map is sent as an empty object.
func NewCustomError(status int, message string, fields map[string]string) CustomErrorDTO {
	if fields == nil {
		fields = map[string]string{}
	}
	return CustomErrorDTO{Status: status, Message: message, Errors: fields}
}
