// Package handlers implements the HTTP operations of the amadolibros API:
// read-side catalog endpoints for the storefront, the admin sync trigger,
// MercadoLibre webhooks and health checks.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
