package service

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/packsmart/packsmart-service/internal/catalog"
	"github.com/packsmart/packsmart-service/internal/domain/dto"
	"github.com/packsmart/packsmart-service/internal/domain/model"
	"github.com/packsmart/packsmart-service/internal/metrics"
	"github.com/packsmart/packsmart-service/internal/repository"
)

// Base XP awarded per event, before achievement bonuses.
var eventXP = map[model.XPEvent]int{
	model.EventTripCreated:      25,
	model.EventTemplateImported: 15,
	model.EventItemPacked:       5,
	model.EventTripFullyPacked:  50,
}

// xpPerLevel is the quadratic level curve factor. Level n starts at
// (n-1)^2 * xpPerLevel XP.
const xpPerLevel = 100

// ProgressService tracks XP, levels, and achievements.
type ProgressService interface {
	Award(ctx context.Context, userID primitive.ObjectID, event model.XPEvent) (*model.UserProgress, error)
	GetProgress(ctx context.Context, userID primitive.ObjectID) (*dto.ProgressResponse, error)
}

// ProgressServiceImpl implements ProgressService over the progress repository
// and the static achievement catalogue.
type ProgressServiceImpl struct {
	repo    repository.ProgressRepositoryInterface
	catalog *catalog.Catalog
}

// NewProgressService creates a new gamification service.
func NewProgressService(repo repository.ProgressRepositoryInterface, cat *catalog.Catalog) ProgressService {
	return &ProgressServiceImpl{repo: repo, catalog: cat}
}

// Award records an XP event: increments the event counter, adds the event's
// base XP plus any newly unlocked achievement bonuses, and recomputes the
// level. The updated progress is persisted and returned.
func (s *ProgressServiceImpl) Award(ctx context.Context, userID primitive.ObjectID, event model.XPEvent) (*model.UserProgress, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	progress, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &model.UserProgress{
			UserID:      userID,
			Level:       1,
			EventCounts: make(map[string]int),
		}
	}
	if progress.EventCounts == nil {
		progress.EventCounts = make(map[string]int)
	}

	progress.EventCounts[string(event)]++
	progress.XP += eventXP[event]

	count := progress.EventCounts[string(event)]
	for _, ach := range s.catalog.AchievementsForEvent(event) {
		if count >= ach.Threshold && !progress.HasAchievement(ach.ID) {
			progress.Achievements = append(progress.Achievements, ach.ID)
			progress.XP += ach.BonusXP
		}
	}

	progress.Level = levelForXP(progress.XP)

	if err := s.repo.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	metrics.RecordXPAward(string(event))
	return progress, nil
}

// GetProgress returns the user's gamification state with unlocked
// achievements resolved against the catalogue. Users with no recorded
// activity get a zeroed level-1 response.
func (s *ProgressServiceImpl) GetProgress(ctx context.Context, userID primitive.ObjectID) (*dto.ProgressResponse, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	progress, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return &dto.ProgressResponse{
			Level:        1,
			NextLevelXP:  nextLevelXP(1),
			Achievements: []model.Achievement{},
		}, nil
	}

	unlocked := make([]model.Achievement, 0, len(progress.Achievements))
	for _, ach := range s.catalog.Achievements() {
		if progress.HasAchievement(ach.ID) {
			unlocked = append(unlocked, ach)
		}
	}

	return &dto.ProgressResponse{
		XP:           progress.XP,
		Level:        progress.Level,
		NextLevelXP:  nextLevelXP(progress.Level),
		Achievements: unlocked,
	}, nil
}

// levelForXP maps total XP onto the quadratic level curve. Levels start at 1.
func levelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return int(math.Sqrt(float64(xp)/xpPerLevel)) + 1
}

// nextLevelXP returns the total XP required to reach the next level.
func nextLevelXP(level int) int {
	return level * level * xpPerLevel
}
