package telemetry

import (
	"fmt"
	"toolbox/internal/components/assert"
)

// API is how components report what happened to them. Components take an API
// instead of logging directly so tests can assert on what was reported.
type API interface {
	// ReportBroken reports a component that failed in a way a user should know about.
	//
	// The `id` names the component and method that broke, like `client.fetch-page`,
	// never the specific line. Put extra detail in params or wrap the error.
	//
	// Formatting rules for ids:
	// 1) all lowercase
	// 2) underscores for components
	// 3) dashes for methods of a component
	ReportBroken(id string, params ...any)

	// ReportWarning reports something that is not broken but is worth a look.
	ReportWarning(id string, params ...any)

	// ReportDebug reports information that is only shown with --verbose.
	ReportDebug(msg string, params ...any)

	// ReportCount reports a count observed at this point in time.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a namespace before passing it on.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	assert.NotEmptyStr(namespace)
	assert.NotNil(inner)
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}
