package decision

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/rfp-advisor/internal/ai"
	"github.com/spigell/rfp-advisor/internal/catalog"
	"github.com/spigell/rfp-advisor/internal/extract"
	"github.com/spigell/rfp-advisor/internal/logger"
	"github.com/spigell/rfp-advisor/internal/prompt"
)

// Config holds tunables of the pipeline.
type Config struct {
	TopK int
}

// Deps are the collaborators of the pipeline. A nil Backend means the
// reasoning service is not configured and every decision takes the mock path.
type Deps struct {
	Catalog  *catalog.Catalog
	Selector catalog.Selector
	Backend  ai.Backend
	Logger   *zap.Logger
}

// Pipeline turns extracted RFP documents into decisions. It keeps no mutable
// state, so one pipeline serves concurrent callers.
type Pipeline struct {
	topK     int
	catalog  *catalog.Catalog
	selector catalog.Selector
	backend  ai.Backend
	logger   *zap.Logger
}

// Result is the outcome of one decision request.
type Result struct {
	RequestID   string               `json:"request_id"`
	Mode        Mode                 `json:"mode"`
	Decision    ai.Decision          `json:"ai_decision"`
	Comparables []catalog.Engagement `json:"similar_projects"`
}

// Status describes the pipeline configuration for health reporting.
type Status struct {
	BackendEnabled bool   `json:"backend_enabled"`
	Provider       string `json:"provider,omitempty"`
	Model          string `json:"model,omitempty"`
	CatalogSize    int    `json:"catalog_size"`
	TopK           int    `json:"top_k"`
}

func NewPipeline(cfg *Config, deps *Deps) *Pipeline {
	p := &Pipeline{topK: catalog.DefaultTopK, selector: catalog.ScoreSelector{}, logger: zap.NewNop()}

	if cfg != nil && cfg.TopK > 0 {
		p.topK = cfg.TopK
	}

	if deps != nil {
		p.catalog = deps.Catalog
		p.backend = deps.Backend
		if deps.Selector != nil {
			p.selector = deps.Selector
		}
		if deps.Logger != nil {
			p.logger = deps.Logger
		}
	}

	return p
}

// Decide runs the whole pipeline for one document and always returns a valid decision.
// A started backend call is never abandoned: ctx is handed to the backend as is.
func (p *Pipeline) Decide(ctx context.Context, doc extract.Document) (result Result) {
	result.RequestID = uuid.NewString()
	log := logger.WithRequest(p.logger, result.RequestID, doc.Name, string(doc.Format))

	defer func() {
		if r := recover(); r != nil {
			log.Error("decision pipeline panicked", zap.Any("panic", r))
			result.Mode = ModeFailure
			result.Decision = Failed(fmt.Sprintf("internal error: %v", r))
		}
	}()

	if doc.Failed() {
		log.Warn("document text could not be extracted", zap.String("diagnostic", doc.Text))
	}

	entries := p.catalog.All()
	result.Comparables = p.selector.Select(ctx, entries, doc.Text, p.topK)

	if p.backend == nil {
		result.Mode = ModeMock
		// the cost range covers every reference engagement, not only the selected ones
		result.Decision = Mock(entries)
		log.Info("reasoning backend is not configured, returning mock decision",
			logger.Mode(string(result.Mode)),
			zap.Int("comparables", len(result.Comparables)),
		)
		return result
	}

	log = logger.WithBackend(log, p.backend.Provider(), p.backend.Model())

	assembled := prompt.Assemble(ai.Request{DocumentText: doc.Text, Comparables: result.Comparables})
	outcome := p.backend.Generate(ctx, assembled)

	result.Decision, result.Mode = validate(outcome)

	fields := []zap.Field{
		logger.Mode(string(result.Mode)),
		zap.String("recommendation", string(result.Decision.Recommendation)),
		zap.Float64("confidence_score", result.Decision.ConfidenceScore),
	}
	if result.Mode == ModeFailure {
		log.Warn("decision generated on failure path", append(fields, zap.String("reason", failureReason(outcome)))...)
	} else {
		log.Info("decision generated", fields...)
	}

	return result
}

// Status reports whether the backend is configured along with catalog details.
func (p *Pipeline) Status() Status {
	status := Status{
		BackendEnabled: p.backend != nil,
		CatalogSize:    p.catalog.Len(),
		TopK:           p.topK,
	}
	if p.backend != nil {
		status.Provider = p.backend.Provider()
		status.Model = p.backend.Model()
	}
	return status
}

func failureReason(outcome ai.Outcome) string {
	if candidate, ok := outcome.Candidate(); ok {
		return fmt.Sprintf("missing fields: %v", candidate.Missing)
	}
	return outcome.Reason()
}
