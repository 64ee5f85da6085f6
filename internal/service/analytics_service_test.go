package service

import (
	"testing"
	"time"

	"ielts_prep_backend/internal/model"
)

func seedAttemptAt(t *testing.T, svc *AnalyticsService, userID uint, module model.ModuleType, score float64, timeSpent int, at time.Time) {
	t.Helper()

	var err error
	switch module {
	case model.ModuleListening:
		err = svc.AttemptRepo.CreateListening(&model.ListeningAttempt{
			UUIDBase:   model.UUIDBase{CreatedAt: at},
			UserID:     userID,
			ExerciseID: "ex-l",
			Score:      score,
			Correct:    1,
			Total:      2,
			TimeSpent:  timeSpent,
			Completed:  true,
		})
	case model.ModuleReading:
		err = svc.AttemptRepo.CreateReading(&model.ReadingAttempt{
			UUIDBase:   model.UUIDBase{CreatedAt: at},
			UserID:     userID,
			ExerciseID: "ex-r",
			Score:      score,
			Correct:    1,
			Total:      2,
			TimeSpent:  timeSpent,
			Completed:  true,
		})
	case model.ModuleWriting:
		err = svc.AttemptRepo.CreateWriting(&model.WritingAttempt{
			UUIDBase:  model.UUIDBase{CreatedAt: at},
			UserID:    userID,
			TaskID:    "task-w",
			Content:   "essay",
			WordCount: 260,
			Score:     score,
			TimeSpent: timeSpent,
			Completed: true,
		})
	case model.ModuleSpeaking:
		err = svc.AttemptRepo.CreateSpeaking(&model.SpeakingAttempt{
			UUIDBase:   model.UUIDBase{CreatedAt: at},
			UserID:     userID,
			ExerciseID: "ex-s",
			Transcript: "spoken answer",
			Score:      score,
			TimeSpent:  timeSpent,
			Completed:  true,
		})
	}
	if err != nil {
		t.Fatalf("seed %s attempt: %v", module, err)
	}
}

func TestUpdateMonthlyAnalyticsRecomputesAverages(t *testing.T) {
	db, _, attemptRepo, analyticsRepo := newTestRepos(t)
	user := createTestUser(t, db)
	svc := NewAnalyticsService(analyticsRepo, attemptRepo)

	march := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	seedAttemptAt(t, svc, user.ID, model.ModuleListening, 6.0, 600, march)
	seedAttemptAt(t, svc, user.ID, model.ModuleListening, 8.0, 600, march.AddDate(0, 0, 1))
	seedAttemptAt(t, svc, user.ID, model.ModuleReading, 7.5, 1200, march.AddDate(0, 0, 2))

	if err := svc.UpdateMonthlyAnalytics(user.ID, march); err != nil {
		t.Fatalf("UpdateMonthlyAnalytics: %v", err)
	}

	analytics, err := analyticsRepo.FindByUserMonth(user.ID, 3, 2026)
	if err != nil {
		t.Fatalf("FindByUserMonth: %v", err)
	}

	if analytics.ExercisesDone != 3 {
		t.Errorf("exercisesDone = %d, want 3", analytics.ExercisesDone)
	}
	if !floatPtrEq(analytics.ListeningAvg, 7.0) {
		t.Errorf("listeningAvg = %v, want 7.0", analytics.ListeningAvg)
	}
	if !floatPtrEq(analytics.ReadingAvg, 7.5) {
		t.Errorf("readingAvg = %v, want 7.5", analytics.ReadingAvg)
	}
	if analytics.WritingAvg != nil || analytics.SpeakingAvg != nil {
		t.Errorf("modules without attempts must stay null: writing=%v speaking=%v", analytics.WritingAvg, analytics.SpeakingAvg)
	}
	// 600+600+1200 秒 = 40 分钟
	if analytics.StudyTime != 40 {
		t.Errorf("studyTime = %d, want 40", analytics.StudyTime)
	}
}

func TestUpdateMonthlyAnalyticsIsIdempotent(t *testing.T) {
	db, _, attemptRepo, analyticsRepo := newTestRepos(t)
	user := createTestUser(t, db)
	svc := NewAnalyticsService(analyticsRepo, attemptRepo)

	march := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	seedAttemptAt(t, svc, user.ID, model.ModuleWriting, 6.5, 1800, march)

	// 重算两次结果一致，不产生增量漂移
	for i := 0; i < 2; i++ {
		if err := svc.UpdateMonthlyAnalytics(user.ID, march); err != nil {
			t.Fatalf("UpdateMonthlyAnalytics run %d: %v", i+1, err)
		}
	}

	var count int64
	db.Model(&model.MonthlyAnalytics{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("monthly rows = %d, want 1", count)
	}

	analytics, _ := analyticsRepo.FindByUserMonth(user.ID, 3, 2026)
	if analytics.ExercisesDone != 1 {
		t.Errorf("exercisesDone after recompute = %d, want 1", analytics.ExercisesDone)
	}
	if !floatPtrEq(analytics.WritingAvg, 6.5) {
		t.Errorf("writingAvg = %v, want 6.5", analytics.WritingAvg)
	}
}

func TestUpdateMonthlyAnalyticsScopesToCalendarMonth(t *testing.T) {
	db, _, attemptRepo, analyticsRepo := newTestRepos(t)
	user := createTestUser(t, db)
	svc := NewAnalyticsService(analyticsRepo, attemptRepo)

	february := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	march := time.Date(2026, 3, 1, 0, 30, 0, 0, time.UTC)

	seedAttemptAt(t, svc, user.ID, model.ModuleSpeaking, 5.5, 300, february)
	seedAttemptAt(t, svc, user.ID, model.ModuleSpeaking, 7.5, 300, march)

	if err := svc.UpdateMonthlyAnalytics(user.ID, march); err != nil {
		t.Fatalf("UpdateMonthlyAnalytics: %v", err)
	}

	analytics, _ := analyticsRepo.FindByUserMonth(user.ID, 3, 2026)
	if analytics.ExercisesDone != 1 {
		t.Errorf("march exercisesDone = %d, want 1", analytics.ExercisesDone)
	}
	if !floatPtrEq(analytics.SpeakingAvg, 7.5) {
		t.Errorf("march speakingAvg = %v, want 7.5 (february attempt must be excluded)", analytics.SpeakingAvg)
	}
}

func TestGetMonthlyAnalyticsEmptyMonth(t *testing.T) {
	db, _, attemptRepo, analyticsRepo := newTestRepos(t)
	user := createTestUser(t, db)
	svc := NewAnalyticsService(analyticsRepo, attemptRepo)

	analytics, err := svc.GetMonthlyAnalytics(user.ID, 1, 2026)
	if err != nil {
		t.Fatalf("GetMonthlyAnalytics: %v", err)
	}
	if analytics.ExercisesDone != 0 || analytics.StudyTime != 0 {
		t.Errorf("empty month must be all zero, got %+v", analytics)
	}
	if analytics.ListeningAvg != nil {
		t.Errorf("empty month listeningAvg must be null")
	}
}
