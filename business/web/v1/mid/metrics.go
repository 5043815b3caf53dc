package mid

import (
	"context"
	"net/http"

	"github.com/AryaStark201/last-classroom/business/sys/metrics"
	"github.com/AryaStark201/last-classroom/foundation/web"
)

// Metrics updates the Prometheus counters for requests and errors.
func Metrics() web.Middleware {

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			metrics.AddRequest()

			err := handler(ctx, w, r)

			if err != nil {
				metrics.AddError()
			}

			return err
		}

		return h
	}

	return m
}
