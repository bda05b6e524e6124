package di

import (
	"reception/internal/sweeper"
	"reception/transport/http"
)

// App bundles the long-running components of the service. The HTTP server
// and the background sweeper share one dependency graph.
type App struct {
	HTTP    *http.HTTP
	Sweeper *sweeper.Sweeper
}
