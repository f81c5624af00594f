package formcheck

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/acquire"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/feedback"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/rules"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/telemetry/metrics"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/telemetry/tracing"
)

// Analysis is the outcome of one full form-check run.
type Analysis struct {
	VideoID        string          `json:"videoId"`
	Frames         int             `json:"frames"`
	DetectionRatio float64         `json:"detectionRatio"`
	Feedback       []feedback.Item `json:"feedback"`
}

// Analyzer runs the whole pipeline for one video: frame/pose
// acquisition, then the pure rule evaluation over the resulting
// timeline.
type Analyzer struct {
	acquirer       *acquire.Acquirer
	thresholds     rules.Thresholds
	metricsManager *metrics.Manager
}

func NewAnalyzer(
	source acquire.VideoSource,
	estimator acquire.PoseEstimator,
	thresholds rules.Thresholds,
	metricsManager *metrics.Manager,
) *Analyzer {
	return &Analyzer{
		acquirer:       acquire.NewAcquirer(source, estimator),
		thresholds:     thresholds,
		metricsManager: metricsManager,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, videoID string) (_ *Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.formcheck.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("video.id", videoID))

	defer func(begin time.Time) {
		a.metricsManager.HistAnalysisDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())

	timeline, err := a.acquirer.Timeline(ctx, videoID)
	if err != nil {
		a.metricsManager.CounterAnalyses.WithLabelValues("error").Inc()
		return nil, err
	}

	items := rules.Evaluate(timeline, a.thresholds)

	a.metricsManager.CounterAnalyses.WithLabelValues("ok").Inc()
	for _, item := range items {
		a.metricsManager.CounterFeedbackItems.WithLabelValues(string(item.Kind)).Inc()
	}

	log.Debugf("analyzed video [%s]: %d frames, %d feedback items", videoID, timeline.Len(), len(items))

	return &Analysis{
		VideoID:        videoID,
		Frames:         timeline.Len(),
		DetectionRatio: timeline.DetectionRatio(),
		Feedback:       items,
	}, nil
}
