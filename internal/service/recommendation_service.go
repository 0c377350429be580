package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/logger"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/embedding"
	"mobile-order-be/pkg/recommend/behavior"
	"mobile-order-be/pkg/recommend/customization"
	"mobile-order-be/pkg/recommend/experiment"
	"mobile-order-be/pkg/recommend/pipeline"
)

const (
	// retrievalFanout widens the vector search so the ranking stage has more
	// candidates than it will return.
	retrievalFanout = 3

	// fallbackBaseScore is the flat retrieval score when vector search is
	// unavailable and ranking runs on rules alone.
	fallbackBaseScore = 0.5

	// fallbackCategoryCap limits how many items one category contributes to a
	// fallback result, since flat base scores would otherwise let one
	// category sweep the list.
	fallbackCategoryCap = 2
)

type IRecommendationService interface {
	Recommend(ctx context.Context, req *dto.RecommendRequest) (*dto.RecommendResponse, error)
}

type recommendationService struct {
	uowFactory   unitofwork.RepositoryFactory
	behaviors    IBehaviorService
	sessions     ISessionService
	experiments  IExperimentService
	contexts     IContextService
	explanations IExplanationService
	feedbacks    IFeedbackService
	embedder     embedding.Provider
	engine       *pipeline.Engine
	defaultTopK  int
	logger       logger.ILogger
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	behaviors IBehaviorService,
	sessions ISessionService,
	experiments IExperimentService,
	contexts IContextService,
	explanations IExplanationService,
	feedbacks IFeedbackService,
	embedder embedding.Provider,
	engine *pipeline.Engine,
	defaultTopK int,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		uowFactory:   uowFactory,
		behaviors:    behaviors,
		sessions:     sessions,
		experiments:  experiments,
		contexts:     contexts,
		explanations: explanations,
		feedbacks:    feedbacks,
		embedder:     embedder,
		engine:       engine,
		defaultTopK:  defaultTopK,
		logger:       log,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, req *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	assignment, err := s.experiments.Assign(ctx, constant.RankingExperimentID, req.UserID)
	if err != nil {
		return nil, err
	}
	variant := assignment.Assignment.Variant

	rc := s.contexts.At(time.Now(), req.Weather)

	// A broken profile store must not take recommendations down; rank cold
	// instead.
	var profile *behavior.Profile
	if profileResp, err := s.behaviors.GetProfile(ctx, req.UserID); err != nil {
		s.logger.Warn("recommendation", "profile unavailable, ranking cold", map[string]interface{}{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
	} else {
		profile = profileResp.Profile
	}

	sessionState := s.sessions.State(req.SessionID)

	preset, err := s.loadPreset(ctx, req.PresetID, req.UserID)
	if err != nil {
		return nil, err
	}

	excludeSKUs := s.dislikedSKUs(ctx, req.UserID)

	topK := resolveTopK(req.TopK, s.defaultTopK)

	candidates, fallback := s.retrieve(ctx, req, profile, topK, excludeSKUs)

	pipeReq := pipeline.Request{
		UserID:        req.UserID,
		Variant:       variant,
		TopK:          topK,
		Context:       rc,
		AvoidKeywords: req.AvoidKeywords,
		Profile:       profile,
		Session:       sessionState,
		Preset:        preset,
	}
	if fallback {
		// Rank wide, then apply the category cap before trimming.
		pipeReq.TopK = len(candidates)
	}

	ranked := s.engine.Rank(pipeReq, candidates)
	if fallback {
		ranked = capPerCategory(ranked, fallbackCategoryCap, topK)
	}

	s.experiments.RecordExposure(ctx, constant.RankingExperimentID, req.UserID, variant)

	explVariant := experiment.VariantControl
	if expl, err := s.experiments.Assign(ctx, constant.ExplanationExperimentID, req.UserID); err == nil {
		explVariant = expl.Assignment.Variant
	}

	resp := &dto.RecommendResponse{
		UserID:       req.UserID,
		ExperimentID: constant.RankingExperimentID,
		Variant:      variant,
		Context:      rc,
		Items:        make([]dto.RecommendedItem, 0, len(ranked)),
		Fallback:     fallback,
	}
	for _, r := range ranked {
		resp.Items = append(resp.Items, dto.RecommendedItem{
			SKU:         r.Item.SKU,
			Name:        r.Item.Name,
			Category:    string(r.Item.Category),
			BasePrice:   r.Item.BasePrice,
			Score:       r.Score,
			Explanation: s.explanations.Phrase(ctx, r.Item.Name, r.Explanation, explVariant),
			Factors:     r.Factors,
			Suggested:   r.Suggested,
		})
	}
	return resp, nil
}

// retrieve produces the candidate set, preferring vector search and falling
// back to the full catalog with flat base scores.
func (s *recommendationService) retrieve(ctx context.Context, req *dto.RecommendRequest, profile *behavior.Profile, topK int, excludeSKUs []string) ([]pipeline.Candidate, bool) {
	if s.embedder != nil {
		if candidates := s.vectorCandidates(ctx, req, profile, topK, excludeSKUs); len(candidates) > 0 {
			return candidates, false
		}
	}
	return s.fallbackCandidates(ctx, excludeSKUs), true
}

func (s *recommendationService) vectorCandidates(ctx context.Context, req *dto.RecommendRequest, profile *behavior.Profile, topK int, excludeSKUs []string) []pipeline.Candidate {
	queryText := req.Query
	if queryText == "" {
		queryText = profileQueryText(profile)
	}

	result, err := s.embedder.Generate(ctx, queryText, "RETRIEVAL_QUERY")
	if err != nil {
		s.logger.Warn("recommendation", "query embedding failed, using fallback retrieval", map[string]interface{}{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.MenuItemRepository().SearchSimilar(ctx, result.Values, topK*retrievalFanout, excludeSKUs)
	if err != nil {
		s.logger.Warn("recommendation", "vector search failed, using fallback retrieval", map[string]interface{}{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return nil
	}

	candidates := make([]pipeline.Candidate, 0, len(scored))
	for _, sc := range scored {
		candidates = append(candidates, pipeline.Candidate{
			Item:      sc.Item.ToCatalogItem(),
			BaseScore: sc.Similarity,
		})
	}
	return candidates
}

func (s *recommendationService) fallbackCandidates(ctx context.Context, excludeSKUs []string) []pipeline.Candidate {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.MenuItemRepository().FindAll(ctx)
	if err != nil {
		s.logger.Error("recommendation", "fallback catalog load failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	excluded := make(map[string]bool, len(excludeSKUs))
	for _, sku := range excludeSKUs {
		excluded[sku] = true
	}

	candidates := make([]pipeline.Candidate, 0, len(items))
	for _, it := range items {
		if excluded[it.SKU] {
			continue
		}
		candidates = append(candidates, pipeline.Candidate{
			Item:      it.ToCatalogItem(),
			BaseScore: fallbackBaseScore,
		})
	}
	return candidates
}

func (s *recommendationService) loadPreset(ctx context.Context, presetID, userID string) (*customization.Preset, error) {
	if presetID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(presetID)
	if err != nil {
		return nil, fmt.Errorf("%w: preset id %q is not a uuid", constant.ErrInvalidInput, presetID)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	preset, err := uow.PresetRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if preset == nil {
		return nil, fmt.Errorf("%w: preset %s", constant.ErrNotFound, presetID)
	}
	if preset.UserId != userID {
		return nil, fmt.Errorf("%w: preset belongs to another user", constant.ErrInvalidInput)
	}
	return preset.ToCustomizationPreset(), nil
}

// dislikedSKUs returns explicit thumbs-down items to keep out of retrieval.
// Feedback store failures are logged and skipped.
func (s *recommendationService) dislikedSKUs(ctx context.Context, userID string) []string {
	list, err := s.feedbacks.List(ctx, userID)
	if err != nil {
		s.logger.Warn("recommendation", "feedback lookup failed, not excluding dislikes", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil
	}
	return list.Dislikes
}

// profileQueryText composes a retrieval query from the profile's strongest
// tags and categories, or a generic one for cold users.
func profileQueryText(p *behavior.Profile) string {
	if p == nil || p.IsNewUser {
		return "popular coffee and tea drinks"
	}

	parts := append(topScored(p.TagScores, 3), topScored(p.CategoryScores, 2)...)
	if len(parts) == 0 {
		return "popular coffee and tea drinks"
	}
	return strings.Join(parts, " ")
}

func topScored(scores map[string]float64, n int) []string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if scores[keys[i]] != scores[keys[j]] {
			return scores[keys[i]] > scores[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// resolveTopK picks the result size: the request wins, then the configured
// default, then the pipeline's built-in default.
func resolveTopK(requested, configured int) int {
	if requested > 0 {
		return requested
	}
	if configured > 0 {
		return configured
	}
	return pipeline.DefaultTopK
}

// capPerCategory trims a ranked list so no category exceeds the cap, keeping
// at most topK items. Overflow items are dropped, not reordered.
func capPerCategory(ranked []pipeline.ScoredItem, perCategoryLimit, topK int) []pipeline.ScoredItem {
	perCategory := make(map[catalog.Category]int)
	out := make([]pipeline.ScoredItem, 0, topK)
	for _, r := range ranked {
		if perCategory[r.Item.Category] >= perCategoryLimit {
			continue
		}
		perCategory[r.Item.Category]++
		out = append(out, r)
		if len(out) == topK {
			break
		}
	}
	return out
}
