package api

import (
	echo "github.com/labstack/echo/v5"
)

// identityHeaders are checked in order for the operator identity forwarded
// by the authenticating reverse proxy: oauth2-proxy sets the first two,
// kube-rbac-proxy the third.
var identityHeaders = []string{
	"X-Forwarded-User",
	"X-Forwarded-Email",
	"X-Remote-User",
}

// anonymousActor attributes requests that carry a valid API key but no
// proxy identity (service-to-service callers).
const anonymousActor = "api-client"

// extractAuthor returns the operator identity recorded on approvals,
// merges, corrections and other attributed actions.
func extractAuthor(c *echo.Context) string {
	for _, h := range identityHeaders {
		if v := c.Request().Header.Get(h); v != "" {
			return v
		}
	}
	return anonymousActor
}
