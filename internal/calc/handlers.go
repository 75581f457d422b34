package calc

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/Turab-IE/Calcu-App/internal/engine"
	"github.com/Turab-IE/Calcu-App/internal/handlers"
	"github.com/Turab-IE/Calcu-App/internal/history"
	"github.com/Turab-IE/Calcu-App/internal/observability"
	"github.com/Turab-IE/Calcu-App/internal/session"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calc")

// sessionHeader carries the caller's session ID in and the resolved session
// ID back out, mirroring the X-Request-ID idiom one layer down.
const sessionHeader = "X-Session-ID"

// timeLayout is the history timestamp rendering, second resolution.
const timeLayout = "2006-01-02 15:04:05"

// API is the HTTP boundary around the evaluator and the session store. It
// holds no domain state of its own: every ledger lives inside its session.
type API struct {
	store            *session.Store
	defaultPrecision int
}

// New builds the API around an existing session store.
func New(store *session.Store, defaultPrecision int) *API {
	return &API{store: store, defaultPrecision: defaultPrecision}
}

// resolveSession maps the request's session header onto a live session,
// minting one when the header is absent or names a session that no longer
// exists. The resolved ID is echoed back so the caller can adopt it.
func (a *API) resolveSession(w http.ResponseWriter, r *http.Request) *session.Session {
	sess := a.store.GetOrCreate(r.Header.Get(sessionHeader))
	w.Header().Set(sessionHeader, sess.ID)
	return sess
}

// ---------------------------------------------------------------------------
// Handler — evaluation attempts
// ---------------------------------------------------------------------------

// Calculate handles POST /calculate: one evaluation attempt. Transport
// violations (malformed body, non-finite operands, bad enums, precision out
// of range) are rejected with 400 before the engine runs and are NOT
// recorded. Everything that reaches the engine — success or domain failure —
// is appended to the session history before the response is written.
func (a *API) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	// --- 1. Custom child span ---
	ctx, span := tracer.Start(ctx, "calc.evaluate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	// --- 2. Decode and check the transport contract ---
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, failureCounter, "calculate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if bad, name := nonFiniteOperand(req); bad {
		observability.RecordError(ctx, span, logger, failureCounter, "calculate", "operands must be finite numbers", fmt.Errorf("non-finite operand %s", name), http.StatusBadRequest, w)
		return
	}

	mode, ok := engine.ParseAngleMode(req.AngleMode)
	if !ok {
		observability.RecordError(ctx, span, logger, failureCounter, "calculate", "angle_mode must be Degrees or Radians", fmt.Errorf("angle_mode=%q", req.AngleMode), http.StatusBadRequest, w)
		return
	}

	precision := a.defaultPrecision
	if req.Precision != nil {
		precision = *req.Precision
		if precision < 0 || precision > engine.MaxPrecision {
			observability.RecordError(ctx, span, logger, failureCounter, "calculate", fmt.Sprintf("precision must be between 0 and %d", engine.MaxPrecision), fmt.Errorf("precision=%d", precision), http.StatusBadRequest, w)
			return
		}
	}

	span.SetAttributes(
		attribute.String("calc.category", req.Category),
		attribute.String("calc.operation", req.Operation),
		attribute.String("calc.angle_mode", string(mode)),
		attribute.Float64("calc.operand.x", req.X),
	)

	// --- 3. Resolve the session owning this attempt's ledger ---
	sess := a.resolveSession(w, r)
	span.SetAttributes(attribute.String("calc.session_id", sess.ID))
	sessionsGauge.Record(ctx, int64(a.store.Len()))

	// --- 4. Evaluate (timed for the histogram) ---
	operands := engine.Operands{X: req.X, Y: req.Y, Base: req.Base}

	start := time.Now()
	outcome := engine.Evaluate(engine.Category(req.Category), req.Operation, operands, mode)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	// --- 5. Record the attempt, success or failure, before responding ---
	label := fmt.Sprintf("%s → %s", req.Category, req.Operation)
	sess.Ledger.Record(label, history.Inputs{
		X:         req.X,
		Y:         req.Y,
		Base:      req.Base,
		AngleMode: string(mode),
	}, outcome)

	// --- 6. Record metrics ---
	outcomeName := "success"
	if !outcome.OK {
		outcomeName = "failure"
	}
	attrs := metric.WithAttributes(
		attribute.String("category", req.Category),
		attribute.String("operation", req.Operation),
		attribute.String("outcome", outcomeName),
	)
	attemptsCounter.Add(ctx, 1, attrs)
	evalHistogram.Record(ctx, elapsed, attrs)
	historyGauge.Record(ctx, int64(sess.Ledger.Len()))

	// --- 7. Domain failure: recorded above, reported as 422 ---
	if !outcome.OK {
		failureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", req.Operation)))

		span.AddEvent("evaluation.failed", trace.WithAttributes(
			attribute.String("failure.message", outcome.Message),
		))
		span.SetStatus(codes.Ok, "")

		logger.Info("evaluation attempt failed validation",
			zap.String("operation", label),
			zap.String("message", outcome.Message),
			zap.String("session_id", sess.ID),
			zap.String("request_id", requestID),
		)

		writeJSON(w, http.StatusUnprocessableEntity, FailureResponse{
			Error:     outcome.Message,
			SessionID: sess.ID,
		})
		return
	}

	resultGauge.Record(ctx, outcome.Result.Float64(), attrs)

	// --- 8. Span event with the result ---
	span.AddEvent("evaluation.complete", trace.WithAttributes(
		attribute.String("result", outcome.Result.String()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	// --- 9. Structured log with trace correlation ---
	logger.Info("evaluation attempt completed",
		zap.String("operation", label),
		zap.Float64("x", req.X),
		zap.String("result", outcome.Result.String()),
		zap.String("session_id", sess.ID),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	// --- 10. Write JSON response ---
	writeJSON(w, http.StatusOK, CalculateResponse{
		Category:  req.Category,
		Operation: req.Operation,
		Result:    outcome.Result,
		Formatted: engine.Format(outcome.Result, precision),
		AngleMode: string(mode),
		Precision: precision,
		SessionID: sess.ID,
	})
}

// ---------------------------------------------------------------------------
// Handlers — session history
// ---------------------------------------------------------------------------

// GetHistory handles GET /history: the session's audit trail, newest first.
// Storage order is untouched; only the rendering is reversed.
func (a *API) GetHistory(w http.ResponseWriter, r *http.Request) {
	sess := a.resolveSession(w, r)

	entries := sess.Ledger.Entries()
	rendered := make([]HistoryEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		rendered = append(rendered, renderEntry(entries[i]))
	}

	writeJSON(w, http.StatusOK, HistoryResponse{
		SessionID: sess.ID,
		Count:     len(rendered),
		Entries:   rendered,
	})
}

// ClearHistory handles DELETE /history: irreversible bulk clear.
func (a *API) ClearHistory(w http.ResponseWriter, r *http.Request) {
	sess := a.resolveSession(w, r)

	cleared := sess.Ledger.Len()
	sess.Ledger.Clear()

	observability.LoggerWithTrace(r.Context()).Info("History cleared.",
		zap.String("session_id", sess.ID),
		zap.Int("cleared", cleared),
	)

	writeJSON(w, http.StatusOK, ClearResponse{
		SessionID: sess.ID,
		Cleared:   cleared,
	})
}

// LastResult handles GET /history/last: the copy-last-result feature. Only
// a successful outcome has a result to copy; a trailing failure is reported
// as a conflict rather than exposing a phantom value.
func (a *API) LastResult(w http.ResponseWriter, r *http.Request) {
	sess := a.resolveSession(w, r)

	last, ok := sess.Ledger.Last()
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "No history yet.")
		return
	}
	if !last.Outcome.OK {
		handlers.WriteError(w, http.StatusConflict, "Last entry has no result to copy.")
		return
	}

	writeJSON(w, http.StatusOK, LastResultResponse{
		Result:    last.Outcome.Result.String(),
		SessionID: sess.ID,
	})
}

// ---------------------------------------------------------------------------
// Handlers — static catalogs
// ---------------------------------------------------------------------------

// Operations handles GET /operations: the full category and operation
// catalog in presentation order, for the caller's pickers.
func (a *API) Operations(w http.ResponseWriter, r *http.Request) {
	catalog := engine.Catalog()

	categories := make([]CategoryInfo, 0, len(catalog))
	for _, group := range catalog {
		ops := make([]OperationInfo, 0, len(group.Operations))
		for _, op := range group.Operations {
			ops = append(ops, OperationInfo{
				Name:       op.Name,
				Operands:   op.Slots(),
				AngleAware: group.Category.AngleAware(),
			})
		}
		categories = append(categories, CategoryInfo{
			Category:   string(group.Category),
			Operations: ops,
		})
	}

	writeJSON(w, http.StatusOK, OperationsResponse{Categories: categories})
}

// Constants handles GET /constants: the quick constants a caller can paste
// into an operand field.
func (a *API) Constants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ConstantsResponse{Constants: []Constant{
		{Name: "pi", Symbol: "π", Value: math.Pi},
		{Name: "e", Symbol: "e", Value: math.E},
		{Name: "tau", Symbol: "τ", Value: 2 * math.Pi},
	}})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func renderEntry(e history.Entry) HistoryEntry {
	out := HistoryEntry{
		Time:      e.Time.Format(timeLayout),
		Operation: e.Operation,
		Inputs:    e.Inputs,
	}
	if e.Outcome.OK {
		result := e.Outcome.Result
		out.Result = &result
	} else {
		out.Error = e.Outcome.Message
	}
	return out
}

// nonFiniteOperand reports whether any supplied operand is NaN or infinite,
// naming the first offender.
func nonFiniteOperand(req CalculateRequest) (bool, string) {
	if math.IsNaN(req.X) || math.IsInf(req.X, 0) {
		return true, "x"
	}
	if req.Y != nil && (math.IsNaN(*req.Y) || math.IsInf(*req.Y, 0)) {
		return true, "y"
	}
	if req.Base != nil && (math.IsNaN(*req.Base) || math.IsInf(*req.Base, 0)) {
		return true, "base"
	}
	return false, ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
