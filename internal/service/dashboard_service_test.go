package service

import (
	"context"
	"testing"
	"time"

	"ielts_prep_backend/internal/model"
)

func TestDashboardCacheKeyEmbedsVersion(t *testing.T) {
	if got := dashboardCacheKey(7, "0", 10); got != "dashboard:7:0:10" {
		t.Errorf("cache key = %s, want dashboard:7:0:10", got)
	}
	// 提交作答后版本号递增，旧键整体失效
	if got := dashboardCacheKey(7, "3", 10); got != "dashboard:7:3:10" {
		t.Errorf("cache key = %s, want dashboard:7:3:10", got)
	}
	if dashboardVersionKey(7) != "dashboard:ver:7" {
		t.Errorf("version key = %s, want dashboard:ver:7", dashboardVersionKey(7))
	}
}

func TestDashboardCacheNilSafe(t *testing.T) {
	var cache *DashboardCache

	if _, ok := cache.Get(context.Background(), 1, 10); ok {
		t.Error("nil cache must miss")
	}
	if err := cache.Set(context.Background(), 1, 10, &DashboardResponse{}); err != nil {
		t.Errorf("nil cache Set must be a no-op, got %v", err)
	}
	if err := cache.Invalidate(context.Background(), 1); err != nil {
		t.Errorf("nil cache Invalidate must be a no-op, got %v", err)
	}
}

func TestGetDashboardAggregatesAllTime(t *testing.T) {
	db, userRepo, attemptRepo, analyticsRepo := newTestRepos(t)
	user := createTestUser(t, db)

	analytics := NewAnalyticsService(analyticsRepo, attemptRepo)
	progress := NewProgressService(userRepo)
	svc := NewDashboardService(userRepo, attemptRepo, progress, nil)

	// 跨两个月的历史记录都计入仪表盘
	january := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	seedAttemptAt(t, analytics, user.ID, model.ModuleListening, 6.0, 300, january)
	seedAttemptAt(t, analytics, user.ID, model.ModuleListening, 7.0, 300, june)
	seedAttemptAt(t, analytics, user.ID, model.ModuleWriting, 6.5, 1800, june)

	if err := userRepo.AddStudyTime(user.ID, 40); err != nil {
		t.Fatalf("AddStudyTime: %v", err)
	}

	resp, err := svc.GetDashboard(context.Background(), user.ID, 10)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	stats := resp.Stats
	if stats.Listening.Count != 2 || !floatPtrEq(stats.Listening.AvgScore, 6.5) {
		t.Errorf("listening = %d attempts avg %v, want 2 / 6.5", stats.Listening.Count, stats.Listening.AvgScore)
	}
	if stats.Writing.Count != 1 || !floatPtrEq(stats.Writing.AvgScore, 6.5) {
		t.Errorf("writing = %d attempts avg %v, want 1 / 6.5", stats.Writing.Count, stats.Writing.AvgScore)
	}
	if stats.Reading.Count != 0 || stats.Reading.AvgScore != nil {
		t.Errorf("reading should be empty, got %d / %v", stats.Reading.Count, stats.Reading.AvgScore)
	}
	if stats.TotalExercises != 3 {
		t.Errorf("totalExercises = %d, want 3", stats.TotalExercises)
	}
	if stats.TotalStudyTime != 40 {
		t.Errorf("totalStudyTime = %d, want 40", stats.TotalStudyTime)
	}
}

func TestGetDashboardRecentActivityMergedAndSorted(t *testing.T) {
	db, userRepo, attemptRepo, analyticsRepo := newTestRepos(t)
	user := createTestUser(t, db)

	analytics := NewAnalyticsService(analyticsRepo, attemptRepo)
	progress := NewProgressService(userRepo)
	svc := NewDashboardService(userRepo, attemptRepo, progress, nil)

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	seedAttemptAt(t, analytics, user.ID, model.ModuleListening, 6.0, 60, base)
	seedAttemptAt(t, analytics, user.ID, model.ModuleReading, 7.0, 60, base.Add(1*time.Hour))
	seedAttemptAt(t, analytics, user.ID, model.ModuleWriting, 6.5, 60, base.Add(2*time.Hour))
	seedAttemptAt(t, analytics, user.ID, model.ModuleSpeaking, 5.5, 60, base.Add(3*time.Hour))

	resp, err := svc.GetDashboard(context.Background(), user.ID, 3)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	activity := resp.RecentActivity
	if len(activity) != 3 {
		t.Fatalf("recent activity length = %d, want 3", len(activity))
	}

	wantModules := []string{"speaking", "writing", "reading"}
	for i, want := range wantModules {
		if activity[i].Module != want {
			t.Errorf("activity[%d].Module = %s, want %s", i, activity[i].Module, want)
		}
	}
	for i := 1; i < len(activity); i++ {
		if activity[i].CreatedAt.After(activity[i-1].CreatedAt) {
			t.Errorf("activity not sorted desc at index %d", i)
		}
	}
}

func TestGetDashboardResetsStaleStreak(t *testing.T) {
	db, userRepo, attemptRepo, _ := newTestRepos(t)
	user := createTestUser(t, db)

	progress := NewProgressService(userRepo)
	svc := NewDashboardService(userRepo, attemptRepo, progress, nil)

	// 五天前学习过，打卡应在读取时归零
	if _, err := progress.RecordStudyActivity(user.ID, 0, time.Now().AddDate(0, 0, -5)); err != nil {
		t.Fatalf("RecordStudyActivity: %v", err)
	}

	resp, err := svc.GetDashboard(context.Background(), user.ID, 5)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if resp.Stats.CurrentStreak != 0 {
		t.Errorf("stale streak on dashboard = %d, want 0", resp.Stats.CurrentStreak)
	}
	if resp.Stats.LongestStreak != 1 {
		t.Errorf("longest streak = %d, want 1", resp.Stats.LongestStreak)
	}
}
