package formcheck

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/acquire"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/results"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/middleware"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/telemetry/metrics"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/telemetry/tracing"
	"github.com/Surya-Kukkapalli/Spot-sub001/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=formcheck_test

type videoAnalyzer interface {
	Analyze(ctx context.Context, videoID string) (*Analysis, error)
}

type analysisRepo interface {
	Add(ctx context.Context, analysis results.Analysis) (*results.Analysis, error)
	Get(ctx context.Context, id int) (*results.Analysis, error)
	List(ctx context.Context, params results.ListParams) (_ []results.Analysis, total int, err error)
	Delete(ctx context.Context, id int) error
}

type AnalyzeRequest struct {
	VideoID  string `json:"videoId"`
	ClientID string `json:"clientId"`
}

type AnalyzeResponse struct {
	ID             int             `json:"id,omitempty"`
	VideoID        string          `json:"videoId"`
	Frames         int             `json:"frames"`
	DetectionRatio float64         `json:"detectionRatio"`
	Feedback       []feedback.Item `json:"feedback"`
}

type ListResponse struct {
	Analyses []results.Analysis `json:"analyses"`
	Total    int                `json:"total"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	analyzer       videoAnalyzer
	repo           analysisRepo
	source         acquire.VideoSource
	sessions       *SessionStore
	metricsManager *metrics.Manager
}

func NewHandler(
	analyzer videoAnalyzer,
	repo analysisRepo,
	source acquire.VideoSource,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		analyzer:       analyzer,
		repo:           repo,
		source:         source,
		sessions:       NewSessionStore(),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	analyzeAllowedPerMin int,
) {
	analyzeSubrouter := mainRouter.PathPrefix("/formcheck/analyze").Subrouter()
	analyzeSubrouter.HandleFunc("", handler.HandleAnalyze).Methods("POST", "OPTIONS").Name("analyze")
	// analysis is expensive, keep abusive clients off it
	analyzeSubrouter.Use(middleware.RateLimit(rateLimiter, "formcheck-analyze", analyzeAllowedPerMin, handler.metricsManager))

	mainRouter.HandleFunc("/formcheck/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-analyses")
	mainRouter.HandleFunc("/formcheck/frame/{clientId}", handler.HandleGetFrame).Methods("GET", "OPTIONS").Name("evidence-frame")
	mainRouter.HandleFunc("/formcheck/session/{clientId}", handler.HandleReleaseSession).Methods("DELETE", "OPTIONS").Name("release-session")
	mainRouter.HandleFunc("/formcheck/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-analysis")
	mainRouter.HandleFunc("/formcheck/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-analysis")
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.formcheck.analyze")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("analyze, unmarshal json params: %s", err)
		http.Error(w, "analyze failed", http.StatusBadRequest)
		return
	}
	if req.VideoID == "" || req.ClientID == "" {
		http.Error(w, "error, video id or client id empty", http.StatusBadRequest)
		return
	}

	// the analysis must outlive this request's context only through
	// the session's cancel; a new analyze for the same client cancels
	// the previous run
	analysisCtx, cancel := context.WithCancel(ctx)
	session := NewSession(req.VideoID, handler.source, cancel)
	handler.sessions.Put(req.ClientID, session)
	handler.metricsManager.GaugeOpenSessions.Set(float64(handler.sessions.Len()))

	analysis, err := handler.analyzer.Analyze(analysisCtx, req.VideoID)
	if err != nil {
		handler.sessions.Remove(req.ClientID)
		handler.metricsManager.GaugeOpenSessions.Set(float64(handler.sessions.Len()))
		handler.respondAnalyzeError(w, req, err)
		return
	}

	resp := AnalyzeResponse{
		VideoID:        analysis.VideoID,
		Frames:         analysis.Frames,
		DetectionRatio: analysis.DetectionRatio,
		Feedback:       analysis.Feedback,
	}

	stored, err := handler.repo.Add(ctx, results.Analysis{
		VideoID:        analysis.VideoID,
		ClientID:       req.ClientID,
		DetectionRatio: analysis.DetectionRatio,
		Frames:         analysis.Frames,
		Feedback:       analysis.Feedback,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		// the user still gets their feedback, history just has a gap
		log.Errorf("failed to store analysis of video [%s]: %s", req.VideoID, err)
	} else {
		resp.ID = stored.ID
	}

	feedback.AttachDetails(resp.Feedback)

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal analyze response: %s", err)
		http.Error(w, "error, failed to analyze video", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) respondAnalyzeError(w http.ResponseWriter, req AnalyzeRequest, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		log.Debugf("analysis of video [%s] cancelled", req.VideoID)
		http.Error(w, "analysis cancelled", http.StatusConflict)
	case errors.Is(err, acquire.ErrNoVideoTrack):
		http.Error(w, "error, video has no video track", http.StatusUnprocessableEntity)
	case errors.Is(err, acquire.ErrEmptyVideo):
		http.Error(w, "error, no frames could be read from video", http.StatusUnprocessableEntity)
	case errors.Is(err, acquire.ErrDecodeFailed):
		log.Errorf("failed to decode video [%s]: %s", req.VideoID, err)
		http.Error(w, "error, video could not be decoded", http.StatusUnprocessableEntity)
	default:
		log.Errorf("failed to analyze video [%s]: %s", req.VideoID, err)
		http.Error(w, "error, failed to analyze video", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.formcheck.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid analysis id", http.StatusBadRequest)
		return
	}

	analysis, err := handler.repo.Get(ctx, id)
	if errors.Is(err, results.ErrAnalysisNotFound) {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get analysis [%d]: %s", id, err)
		http.Error(w, "error, failed to get analysis", http.StatusInternalServerError)
		return
	}

	feedback.AttachDetails(analysis.Feedback)

	analysisJson, err := json.Marshal(analysis)
	if err != nil {
		log.Errorf("failed to marshal analysis [%d]: %s", id, err)
		http.Error(w, "error, failed to get analysis", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, analysisJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.formcheck.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "error, invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 {
		http.Error(w, "error, invalid size", http.StatusBadRequest)
		return
	}

	analyses, total, err := handler.repo.List(ctx, results.ListParams{
		ClientID: r.URL.Query().Get("clientId"),
		Page:     page,
		Size:     size,
	})
	if err != nil {
		log.Errorf("failed to list analyses: %s", err)
		http.Error(w, "error, failed to list analyses", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListResponse{
		Analyses: analyses,
		Total:    total,
	})
	if err != nil {
		log.Errorf("failed to marshal analyses list: %s", err)
		http.Error(w, "error, failed to list analyses", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.formcheck.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid analysis id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, results.ErrAnalysisNotFound) {
			http.Error(w, "analysis not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete analysis [%d]: %s", id, err)
		http.Error(w, "error, failed to delete analysis", http.StatusInternalServerError)
		return
	}

	deletedJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "error, failed to delete analysis", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deletedJson, http.StatusOK)
}

// HandleGetFrame serves the evidence frame behind a feedback item. The
// timestamp comes from the item's evidence, in milliseconds. Lookup
// problems are a 404, never a 5xx - evidence display is best effort.
func (handler *Handler) HandleGetFrame(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.formcheck.getFrame")
	defer span.End()

	vars := mux.Vars(r)
	clientID := vars["clientId"]

	atMs, err := strconv.ParseInt(r.URL.Query().Get("t"), 10, 64)
	if err != nil || atMs < 0 {
		http.Error(w, "error, invalid frame timestamp", http.StatusBadRequest)
		return
	}

	session, ok := handler.sessions.Get(clientID)
	if !ok {
		handler.metricsManager.CounterFrameLookups.WithLabelValues("no_session").Inc()
		http.Error(w, "no open analysis session", http.StatusNotFound)
		return
	}

	frameBytes := session.FrameAt(ctx, time.Duration(atMs)*time.Millisecond)
	if frameBytes == nil {
		handler.metricsManager.CounterFrameLookups.WithLabelValues("miss").Inc()
		http.Error(w, "frame not available", http.StatusNotFound)
		return
	}

	handler.metricsManager.CounterFrameLookups.WithLabelValues("ok").Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JPEG, frameBytes, http.StatusOK)
}

func (handler *Handler) HandleReleaseSession(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.formcheck.releaseSession")
	defer span.End()

	vars := mux.Vars(r)
	clientID := vars["clientId"]

	removed := handler.sessions.Remove(clientID)
	handler.metricsManager.GaugeOpenSessions.Set(float64(handler.sessions.Len()))
	if !removed {
		http.Error(w, "no open analysis session", http.StatusNotFound)
		return
	}

	pkg.WriteTextResponseOK(w, "session released")
}

// ReleaseAllSessions is called on server shutdown.
func (handler *Handler) ReleaseAllSessions() {
	handler.sessions.ReleaseAll()
	handler.metricsManager.GaugeOpenSessions.Set(0)
}
