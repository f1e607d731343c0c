package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	publicHandler    publicHandler
	authHandler      authHandler
	dashboardHandler dashboardHandler
	blogPostHandler  blogPostHandler
	faqHandler       faqHandler
	categoryHandler  categoryHandler
	productHandler   productHandler
	modelHandler     modelHandler
	messageHandler   messageHandler
	uploadHandler    uploadHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// nullable converts a form value to its stored representation: empty string
// means absent.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
