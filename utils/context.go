package utils

import (
	"fmt"
	"net/http"

	"github.com/quotelane/quotelane-backend/models"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
	ContextKeyOpenTelemetryTracer
)

// OrganizationIdFromRequest resolves the tenant of the call. Authentication
// and tenant isolation are enforced by a collaborator upstream; by the time a
// request reaches a handler it carries the organization id in a header (set by
// the auth middleware) or, for local tooling, as a query parameter.
func OrganizationIdFromRequest(request *http.Request) (string, error) {
	if organizationId := request.Header.Get("X-Organization-Id"); organizationId != "" {
		return organizationId, nil
	}
	if organizationId := request.URL.Query().Get("organization-id"); organizationId != "" {
		return organizationId, nil
	}
	return "", fmt.Errorf("no organization id on request: %w", models.BadParameterError)
}
