package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ModuleSummary 某模块的历史作答数与平均分
type ModuleSummary struct {
	Count    int64    `json:"count"`
	AvgScore *float64 `json:"avgScore"` // 无记录时为 null
}

// DashboardStats 仪表盘总览，覆盖全部历史而非单月
type DashboardStats struct {
	Listening      ModuleSummary `json:"listening"`
	Reading        ModuleSummary `json:"reading"`
	Writing        ModuleSummary `json:"writing"`
	Speaking       ModuleSummary `json:"speaking"`
	TotalExercises int64         `json:"totalExercises"`
	TotalStudyTime int           `json:"totalStudyTime"` // 分钟
	CurrentStreak  int           `json:"currentStreak"`
	LongestStreak  int           `json:"longestStreak"`
	TargetScore    float64       `json:"targetScore"`
}

// ActivityItem 最近作答条目，四个模块合并后按时间倒序
type ActivityItem struct {
	AttemptID string    `json:"attemptId"`
	Module    string    `json:"module"`
	Title     string    `json:"title"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardResponse 仪表盘响应
type DashboardResponse struct {
	Stats          *DashboardStats `json:"stats"`
	RecentActivity []ActivityItem  `json:"recentActivity"`
}

const dashboardCacheTTL = 5 * time.Minute

// DashboardCache 仪表盘聚合的 Redis 缓存
// 键内嵌每用户版本号，提交作答后递增版本即整体失效，
// 无需按 limit 枚举删除；旧版本条目靠 TTL 过期
type DashboardCache struct {
	Redis *redis.Client
}

func NewDashboardCache(redisClient *redis.Client) *DashboardCache {
	return &DashboardCache{Redis: redisClient}
}

func dashboardVersionKey(userID uint) string {
	return fmt.Sprintf("dashboard:ver:%d", userID)
}

func dashboardCacheKey(userID uint, version string, limit int) string {
	return fmt.Sprintf("dashboard:%d:%s:%d", userID, version, limit)
}

func (c *DashboardCache) key(ctx context.Context, userID uint, limit int) (string, error) {
	version, err := c.Redis.Get(ctx, dashboardVersionKey(userID)).Result()
	if err == redis.Nil {
		version = "0"
	} else if err != nil {
		return "", err
	}
	return dashboardCacheKey(userID, version, limit), nil
}

// Get 读取缓存的仪表盘，未命中或未配置 Redis 时返回 false
func (c *DashboardCache) Get(ctx context.Context, userID uint, limit int) (*DashboardResponse, bool) {
	if c == nil || c.Redis == nil {
		return nil, false
	}
	key, err := c.key(ctx, userID, limit)
	if err != nil {
		return nil, false
	}
	cached, err := c.Redis.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var resp DashboardResponse
	if err := json.Unmarshal([]byte(cached), &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *DashboardCache) Set(ctx context.Context, userID uint, limit int, resp *DashboardResponse) error {
	if c == nil || c.Redis == nil {
		return nil
	}
	key, err := c.key(ctx, userID, limit)
	if err != nil {
		return err
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, key, data, dashboardCacheTTL).Err()
}

// Invalidate 递增版本号，使该用户所有 limit 下的缓存立即失效
func (c *DashboardCache) Invalidate(ctx context.Context, userID uint) error {
	if c == nil || c.Redis == nil {
		return nil
	}
	return c.Redis.Incr(ctx, dashboardVersionKey(userID)).Err()
}

type DashboardService struct {
	UserRepo    *repository.UserRepository
	AttemptRepo *repository.AttemptRepository
	Progress    *ProgressService
	Cache       *DashboardCache
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	attemptRepo *repository.AttemptRepository,
	progress *ProgressService,
	cache *DashboardCache,
) *DashboardService {
	return &DashboardService{
		UserRepo:    userRepo,
		AttemptRepo: attemptRepo,
		Progress:    progress,
		Cache:       cache,
	}
}

// GetDashboard 返回仪表盘总览，短期缓存于 Redis
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint, activityLimit int) (*DashboardResponse, error) {
	if cached, ok := s.Cache.Get(ctx, userID, activityLimit); ok {
		return cached, nil
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// 打卡中断超过一天则读取时归零
	if err := s.Progress.CorrectStaleStreak(user, time.Now()); err != nil {
		logger.Log.Warn("Failed to correct stale streak",
			zap.Uint("user_id", userID), zap.Error(err))
	}

	stats := &DashboardStats{
		TotalStudyTime: user.TotalStudyTime,
		CurrentStreak:  user.CurrentStreak,
		LongestStreak:  user.LongestStreak,
		TargetScore:    user.TargetScore,
	}

	modules := map[model.ModuleType]*ModuleSummary{
		model.ModuleListening: &stats.Listening,
		model.ModuleReading:   &stats.Reading,
		model.ModuleWriting:   &stats.Writing,
		model.ModuleSpeaking:  &stats.Speaking,
	}
	for module, summary := range modules {
		moduleStats, err := s.AttemptRepo.ModuleStatsAllTime(module, userID)
		if err != nil {
			return nil, err
		}
		summary.Count = moduleStats.Count
		summary.AvgScore = moduleStats.AvgScore
		stats.TotalExercises += moduleStats.Count
	}

	activity, err := s.recentActivity(userID, activityLimit)
	if err != nil {
		return nil, err
	}

	resp := &DashboardResponse{
		Stats:          stats,
		RecentActivity: activity,
	}

	if err := s.Cache.Set(ctx, userID, activityLimit, resp); err != nil {
		logger.Log.Warn("Failed to cache dashboard", zap.Error(err))
	}

	return resp, nil
}

// recentActivity 合并四个模块的最近作答并截取前 limit 条
func (s *DashboardService) recentActivity(userID uint, limit int) ([]ActivityItem, error) {
	items := make([]ActivityItem, 0, limit*4)

	listening, err := s.AttemptRepo.RecentListening(userID, limit)
	if err != nil {
		return nil, err
	}
	for _, a := range listening {
		items = append(items, ActivityItem{
			AttemptID: a.ID,
			Module:    string(model.ModuleListening),
			Title:     a.Exercise.Title,
			Score:     a.Score,
			CreatedAt: a.CreatedAt,
		})
	}

	reading, err := s.AttemptRepo.RecentReading(userID, limit)
	if err != nil {
		return nil, err
	}
	for _, a := range reading {
		items = append(items, ActivityItem{
			AttemptID: a.ID,
			Module:    string(model.ModuleReading),
			Title:     a.Exercise.Title,
			Score:     a.Score,
			CreatedAt: a.CreatedAt,
		})
	}

	writing, err := s.AttemptRepo.RecentWriting(userID, limit)
	if err != nil {
		return nil, err
	}
	for _, a := range writing {
		items = append(items, ActivityItem{
			AttemptID: a.ID,
			Module:    string(model.ModuleWriting),
			Title:     a.Task.Title,
			Score:     a.Score,
			CreatedAt: a.CreatedAt,
		})
	}

	speaking, err := s.AttemptRepo.RecentSpeaking(userID, limit)
	if err != nil {
		return nil, err
	}
	for _, a := range speaking {
		items = append(items, ActivityItem{
			AttemptID: a.ID,
			Module:    string(model.ModuleSpeaking),
			Title:     a.Exercise.Title,
			Score:     a.Score,
			CreatedAt: a.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
