package service

import (
	"testing"
	"time"
)

func TestRecordStudyActivityFirstTime(t *testing.T) {
	db, userRepo, _, _ := newTestRepos(t)
	user := createTestUser(t, db)

	progress := NewProgressService(userRepo)
	now := time.Now()

	updated, err := progress.RecordStudyActivity(user.ID, 30, now)
	if err != nil {
		t.Fatalf("RecordStudyActivity: %v", err)
	}
	if updated.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", updated.CurrentStreak)
	}
	if updated.LongestStreak != 1 {
		t.Errorf("longest streak = %d, want 1", updated.LongestStreak)
	}

	stored, err := userRepo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.CurrentStreak != 1 || stored.LastStudyDate == nil {
		t.Errorf("streak not persisted: streak=%d lastStudyDate=%v", stored.CurrentStreak, stored.LastStudyDate)
	}
	if stored.TotalStudyTime != 30 {
		t.Errorf("total study time = %d, want 30", stored.TotalStudyTime)
	}
}

func TestRecordStudyActivitySameDayIsIdempotentForStreak(t *testing.T) {
	db, userRepo, _, _ := newTestRepos(t)
	user := createTestUser(t, db)

	progress := NewProgressService(userRepo)
	now := time.Now()

	if _, err := progress.RecordStudyActivity(user.ID, 10, now); err != nil {
		t.Fatalf("first activity: %v", err)
	}
	if _, err := progress.RecordStudyActivity(user.ID, 20, now.Add(2*time.Hour)); err != nil {
		t.Fatalf("second activity: %v", err)
	}

	stored, _ := userRepo.FindByID(user.ID)
	if stored.CurrentStreak != 1 {
		t.Errorf("same-day streak = %d, want 1", stored.CurrentStreak)
	}
	if stored.TotalStudyTime != 30 {
		t.Errorf("study time should accumulate: got %d, want 30", stored.TotalStudyTime)
	}
}

func TestRecordStudyActivityConsecutiveDays(t *testing.T) {
	db, userRepo, _, _ := newTestRepos(t)
	user := createTestUser(t, db)

	progress := NewProgressService(userRepo)
	day1 := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := progress.RecordStudyActivity(user.ID, 0, day1.AddDate(0, 0, i)); err != nil {
			t.Fatalf("day %d: %v", i+1, err)
		}
	}

	stored, _ := userRepo.FindByID(user.ID)
	if stored.CurrentStreak != 3 {
		t.Errorf("streak after 3 consecutive days = %d, want 3", stored.CurrentStreak)
	}
	if stored.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", stored.LongestStreak)
	}

	// 中断两天后重置，最长纪录保留
	if _, err := progress.RecordStudyActivity(user.ID, 0, day1.AddDate(0, 0, 5)); err != nil {
		t.Fatalf("after gap: %v", err)
	}
	stored, _ = userRepo.FindByID(user.ID)
	if stored.CurrentStreak != 1 {
		t.Errorf("streak after gap = %d, want 1", stored.CurrentStreak)
	}
	if stored.LongestStreak != 3 {
		t.Errorf("longest streak after gap = %d, want 3", stored.LongestStreak)
	}
}

func TestCorrectStaleStreak(t *testing.T) {
	db, userRepo, _, _ := newTestRepos(t)
	user := createTestUser(t, db)

	progress := NewProgressService(userRepo)
	threeDaysAgo := time.Now().AddDate(0, 0, -3)

	if _, err := progress.RecordStudyActivity(user.ID, 0, threeDaysAgo); err != nil {
		t.Fatalf("RecordStudyActivity: %v", err)
	}

	stored, _ := userRepo.FindByID(user.ID)
	if err := progress.CorrectStaleStreak(stored, time.Now()); err != nil {
		t.Fatalf("CorrectStaleStreak: %v", err)
	}
	if stored.CurrentStreak != 0 {
		t.Errorf("stale streak = %d, want 0", stored.CurrentStreak)
	}

	persisted, _ := userRepo.FindByID(user.ID)
	if persisted.CurrentStreak != 0 {
		t.Errorf("stale streak not persisted: %d", persisted.CurrentStreak)
	}
	if persisted.LongestStreak != 1 {
		t.Errorf("longest streak should survive reset: %d", persisted.LongestStreak)
	}
}

func TestCorrectStaleStreakKeepsFreshStreak(t *testing.T) {
	db, userRepo, _, _ := newTestRepos(t)
	user := createTestUser(t, db)

	progress := NewProgressService(userRepo)
	if _, err := progress.RecordStudyActivity(user.ID, 0, time.Now().AddDate(0, 0, -1)); err != nil {
		t.Fatalf("RecordStudyActivity: %v", err)
	}

	stored, _ := userRepo.FindByID(user.ID)
	if err := progress.CorrectStaleStreak(stored, time.Now()); err != nil {
		t.Fatalf("CorrectStaleStreak: %v", err)
	}
	if stored.CurrentStreak != 1 {
		t.Errorf("fresh streak should be kept, got %d", stored.CurrentStreak)
	}
}
