package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry is a no-op when dsn is empty. The returned func flushes pending events.
func InitSentry(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

func CaptureErr(err error) {
	if err != nil {
		sentry.CaptureException(err)
	}
}

// CaptureRequestErr tags the event with the request id and route before sending.
func CaptureRequestErr(err error, requestID, method, path string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", requestID)
		scope.SetTag("method", method)
		scope.SetTag("path", path)
		sentry.CaptureException(err)
	})
}
