package models

// Notice is the banner or toast a front end shows after an operation.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
