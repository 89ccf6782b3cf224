package dto

// Response is the uniform JSON envelope for all API routes.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
