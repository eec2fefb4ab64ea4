// Package callable serves lookups over the callable-function HTTP protocol:
// a POSTed {"data": ...} envelope answered with {"result": ...} or
// {"error": {"status", "message"}}.
package callable

import (
	"context"
	"io"
	"mime"
	"net/http"
	"time"
	"userlookup/internal/lookup"
	"userlookup/pkg/logger"
	"userlookup/pkg/metrics"
	"userlookup/pkg/serrors"

	"go.uber.org/zap"
)

// GetUserIDByEmail is the name, and path, of the lookup function.
const GetUserIDByEmail = "getUserIdByEmail"

const (
	maxBodyBytes  = 1 << 20
	statusOK      = "OK"
	msgBadRequest = "Bad Request"
)

// Deps holds the collaborators of Handler. Calls may be nil.
type Deps struct {
	Lookup lookup.Lookup
	Calls  *metrics.Calls
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts every callable function on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/"+GetUserIDByEmail, h.GetUserIDByEmail)
}

// GetUserIDByEmail answers {"data": {"email": "..."}} with
// {"result": {"userId": "..."}}.
func (h *Handler) GetUserIDByEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	if r.Method != http.MethodPost || !isJSON(r.Header.Get("Content-Type")) {
		h.fail(ctx, w, GetUserIDByEmail, start, serrors.With(serrors.ErrInvalidArgument, msgBadRequest))

		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		logger.Debug(ctx, "could not read callable body", zap.Error(err))
		h.fail(ctx, w, GetUserIDByEmail, start, serrors.With(serrors.ErrInvalidArgument, msgBadRequest))

		return
	}

	req, err := DecodeLookupRequest(body)
	if err != nil {
		logger.Debug(ctx, "could not decode callable request", zap.Error(err))
		h.fail(ctx, w, GetUserIDByEmail, start, serrors.With(serrors.ErrInvalidArgument, msgBadRequest))

		return
	}

	userID, err := h.deps.Lookup.UserIDByEmail(ctx, req.Email)
	if err != nil {
		h.fail(ctx, w, GetUserIDByEmail, start, err)

		return
	}

	h.record(ctx, GetUserIDByEmail, statusOK, start)
	writeJSON(ctx, w, http.StatusOK, EncodeLookupResult(userID))
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, function string, start time.Time, err error) {
	kind := serrors.KindOf(err)
	code := HTTPStatus(kind)
	if code >= http.StatusInternalServerError {
		logger.Error(ctx, "callable failed", zap.String("function", function), zap.Error(err))
	}

	h.record(ctx, function, kind.Error(), start)
	writeJSON(ctx, w, code, EncodeError(kind, err.Error()))
}

func (h *Handler) record(ctx context.Context, function, status string, start time.Time) {
	if h.deps.Calls != nil {
		h.deps.Calls.Record(ctx, function, status, time.Since(start))
	}
}

// isJSON reports whether contentType is application/json, ignoring parameters
// such as charset.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)

	return err == nil && mediaType == "application/json"
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logger.Warn(ctx, "could not write callable response", zap.Error(err))
	}
}

// HTTPStatus maps an error kind to the HTTP status the callable protocol uses
// for it. Unrecognised kinds map to 500.
func HTTPStatus(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrInvalidArgument:
		return http.StatusBadRequest
	case serrors.ErrUnauthenticated:
		return http.StatusUnauthorized
	case serrors.ErrPermissionDenied:
		return http.StatusForbidden
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	case serrors.ErrDeadlineExceeded:
		return http.StatusGatewayTimeout
	case serrors.ErrInternal, serrors.ErrUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
