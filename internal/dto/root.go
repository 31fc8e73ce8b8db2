package dto

// RootResponse is served at GET /.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
