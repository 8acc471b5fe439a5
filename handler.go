package panicfmt

import "net/http"

// RecoverHandler is HTTP middleware that renders panics raised while serving
// a request through a profile and replies 500 when no response was written yet.
type RecoverHandler struct {
	next        http.Handler
	profile     *Profile
	exposePanic bool
}

// NewRecoverHandler wraps next. Panics are rendered through the installed
// profile unless WithProfile pins one.
func NewRecoverHandler(next http.Handler) RecoverHandler {
	return RecoverHandler{next: next}
}

// WithProfile pins the profile used by this handler, independent of Install.
func (h RecoverHandler) WithProfile(p Profile) RecoverHandler {
	h.profile = &p
	return h
}

// WithExposePanic also writes the rendered payload text into the 500
// response body. Default is false: clients get an empty error response.
func (h RecoverHandler) WithExposePanic(expose bool) RecoverHandler {
	h.exposePanic = expose
	return h
}

// ServeHTTP implements http.Handler.
func (h RecoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sw := &statusRecorder{ResponseWriter: w}
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		info := Recovered(v)
		h.activeProfile().Print(info)
		if sw.wroteHeader {
			return
		}
		sw.WriteHeader(http.StatusInternalServerError)
		if h.exposePanic {
			_, _ = sw.Write([]byte(RenderPayload(info.Payload, AsString, AsError, AsStringer) + "\n"))
		}
	}()
	h.next.ServeHTTP(sw, r)
}

func (h RecoverHandler) activeProfile() Profile {
	if h.profile != nil {
		return *h.profile
	}
	return Active()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(c int) {
	s.statusCode = c
	s.wroteHeader = true
	s.ResponseWriter.WriteHeader(c)
}

func (s *statusRecorder) Write(p []byte) (int, error) {
	if !s.wroteHeader {
		s.statusCode = http.StatusOK
		s.wroteHeader = true
	}
	return s.ResponseWriter.Write(p)
}
