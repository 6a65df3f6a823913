package apistrings

const (
	/// Request Decoding Strings
	ContentTypeJSON     = "Content-Type must be application/json"
	NoJSONData          = "No JSON data provided"
	MissingFieldsPrefix = "Missing required fields: "

	/// Routing Strings
	EndpointNotFound = "Endpoint not found"
	MethodNotAllowed = "Method not allowed"

	/// Core Functionality Error
	ServerError = "Internal server error occurred"
)
