package greeting

// Message is the fixed greeting returned by the root route.
const Message = "Hello World"

// Data models the response payload for the root route.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello World"`
}

// GetOutput is the response for GET /.
type GetOutput struct {
	Body Data
}
