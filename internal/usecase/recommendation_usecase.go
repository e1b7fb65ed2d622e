package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/match"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// jobPoolSize bounds how many active postings a single ranking request
// pulls from the store.
const jobPoolSize = 500

// historyWindow bounds how many recent interactions are attached to the
// profile before scoring; confidence only cares whether there are more
// than ten.
const historyWindow = 50

// signalTTL keeps feedback counters from accumulating forever when no
// learning system drains them.
const signalTTL = 30 * 24 * time.Hour

type recommendationUsecase struct {
	profileRepo     domain.ProfileRepository
	jobRepo         domain.JobRepository
	interactionRepo domain.InteractionRepository
	engine          *match.Engine
	signals         *redis.Client // nil when the signal sink is not configured
	validate        *validator.Validate
}

func NewRecommendationUsecase(
	profileRepo domain.ProfileRepository,
	jobRepo domain.JobRepository,
	interactionRepo domain.InteractionRepository,
	engine *match.Engine,
	signals *redis.Client,
	validate *validator.Validate,
) domain.RecommendationUsecase {
	return &recommendationUsecase{
		profileRepo:     profileRepo,
		jobRepo:         jobRepo,
		interactionRepo: interactionRepo,
		engine:          engine,
		signals:         signals,
		validate:        validate,
	}
}

func (u *recommendationUsecase) GetRecommendations(ctx context.Context, userID string, limit int) ([]domain.JobRecommendation, error) {
	if limit <= 0 {
		return nil, apperror.BadRequest("limit must be positive")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("User profile not found")
	}

	// Attach recent behavior so confidence scoring sees it even when the
	// stored profile carries no inline history.
	if len(profile.InteractionHistory) == 0 {
		history, err := u.interactionRepo.RecentByUser(ctx, userID, historyWindow)
		if err != nil {
			logger.Log.Warn("Failed to load interaction history", "user_id", userID, "error", err)
		} else {
			profile.InteractionHistory = history
		}
	}

	jobs, err := u.jobRepo.FetchActive(ctx, jobPoolSize, 0)
	if err != nil {
		return nil, err
	}

	recs, err := u.engine.Recommend(profile, jobs, limit)
	if err != nil {
		return nil, u.mapEngineErr(err)
	}
	return recs, nil
}

// PreviewRecommendations ranks a caller-supplied profile and job pool
// without touching the store. This is the pure library call shape for
// callers that own their own data.
func (u *recommendationUsecase) PreviewRecommendations(ctx context.Context, profile *domain.UserProfile, jobs []domain.Job, limit int) ([]domain.JobRecommendation, error) {
	recs, err := u.engine.Recommend(profile, jobs, limit)
	if err != nil {
		return nil, u.mapEngineErr(err)
	}
	return recs, nil
}

func (u *recommendationUsecase) GetTrending(ctx context.Context) []domain.TrendingJobInsight {
	return u.engine.Trending()
}

// RecordInteraction validates the event, then persists it and publishes
// its signal off the request path. Sink failures are logged, never
// returned: interaction recording must not fail or slow down a ranking
// request.
func (u *recommendationUsecase) RecordInteraction(ctx context.Context, userID string, interaction *domain.JobInteraction, job *domain.Job) error {
	if userID == "" {
		return apperror.BadRequest("userId is required")
	}
	if interaction == nil {
		return apperror.BadRequest("interaction is required")
	}
	if err := u.validate.Struct(interaction); err != nil {
		return apperror.BadRequest(fmt.Sprintf("Invalid interaction: %v", err))
	}

	if interaction.ID == "" {
		interaction.ID = uuid.NewString()
	}
	if interaction.Timestamp.IsZero() {
		interaction.Timestamp = time.Now()
	}

	signal := match.ClassifySignal(interaction)
	if job != nil {
		switch signal {
		case match.SignalPositive:
			logger.Log.Info("User showed interest in job",
				"user_id", userID, "job_id", interaction.JobID, "title", job.Title, "company", job.Company)
		case match.SignalNegative:
			logger.Log.Info("User quickly skipped job",
				"user_id", userID, "job_id", interaction.JobID, "title", job.Title)
		}
	}

	// Fire-and-forget: detach from the request context so a slow sink
	// never blocks the caller's response cycle.
	event := *interaction
	go u.persistInteraction(userID, &event, signal)

	return nil
}

func (u *recommendationUsecase) persistInteraction(userID string, interaction *domain.JobInteraction, signal match.Signal) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := u.interactionRepo.Append(ctx, userID, interaction); err != nil {
		logger.Log.Warn("Failed to persist interaction", "user_id", userID, "error", err)
	}

	if u.signals == nil || signal == match.SignalNeutral {
		return
	}
	key := fmt.Sprintf("jobmatch:signal:%s:%s", userID, signal)
	pipe := u.signals.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, signalTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.Log.Warn("Failed to publish interaction signal", "user_id", userID, "error", err)
	}
}

func (u *recommendationUsecase) mapEngineErr(err error) error {
	if errors.Is(err, match.ErrInvalidLimit) || errors.Is(err, match.ErrNilProfile) {
		return apperror.BadRequest(err.Error())
	}
	return err
}
