package service

import (
	"errors"
	"testing"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"

	"gorm.io/gorm"
)

func newListeningService(t *testing.T) (*ListeningService, *gorm.DB, *model.User) {
	t.Helper()
	db, userRepo, attemptRepo, analyticsRepo := newTestRepos(t)
	user := createTestUser(t, db)

	progress := NewProgressService(userRepo)
	analytics := NewAnalyticsService(analyticsRepo, attemptRepo)
	svc := NewListeningService(repository.NewListeningRepository(db), attemptRepo, progress, analytics, nil)
	return svc, db, user
}

func seedListeningExercise(t *testing.T, db *gorm.DB, published bool) *model.ListeningExercise {
	t.Helper()
	exercise := &model.ListeningExercise{
		Title:       "University Accommodation",
		Difficulty:  model.DifficultyMedium,
		Category:    "academic",
		AudioURL:    "/uploads/listening/accommodation.mp3",
		Duration:    240,
		IsPublished: published,
		Questions: []model.ListeningQuestion{
			{QuestionNumber: 1, QuestionType: model.QuestionFillBlank, QuestionText: "The student hall is on ___ street.", CorrectAnswer: "Green"},
			{QuestionNumber: 2, QuestionType: model.QuestionMultipleChoice, QuestionText: "What is included in the rent?", CorrectAnswer: "B"},
			{QuestionNumber: 3, QuestionType: model.QuestionTrueFalseNG, QuestionText: "Meals are provided on weekends.", CorrectAnswer: "Not Given"},
			{QuestionNumber: 4, QuestionType: model.QuestionFillBlank, QuestionText: "The deposit is ___ pounds.", CorrectAnswer: "250"},
		},
	}
	if err := db.Create(exercise).Error; err != nil {
		t.Fatalf("seed exercise: %v", err)
	}
	return exercise
}

func TestSubmitAnswersScoresAndPersists(t *testing.T) {
	svc, db, user := newListeningService(t)
	exercise := seedListeningExercise(t, db, true)

	// 大小写与空白不影响判分
	answers := map[string]string{
		exercise.Questions[0].ID: "  green ",
		exercise.Questions[1].ID: "b",
		exercise.Questions[2].ID: "NOT GIVEN",
		exercise.Questions[3].ID: "300", // 错误答案
	}

	result, err := svc.SubmitAnswers(user.ID, exercise.ID, &SubmitAnswersRequest{Answers: answers, TimeSpent: 240})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	if result.Correct != 3 || result.Total != 4 {
		t.Errorf("correct/total = %d/%d, want 3/4", result.Correct, result.Total)
	}
	// 75% 对应 8.0 分档
	if result.Score != 8.0 {
		t.Errorf("score = %v, want 8.0", result.Score)
	}
	if len(result.Results) != 4 {
		t.Fatalf("results length = %d, want 4", len(result.Results))
	}

	var attempt model.ListeningAttempt
	if err := db.First(&attempt, "id = ?", result.AttemptID).Error; err != nil {
		t.Fatalf("attempt not persisted: %v", err)
	}
	if attempt.UserID != user.ID || attempt.Score != 8.0 {
		t.Errorf("persisted attempt = user %d score %v", attempt.UserID, attempt.Score)
	}
	if !attempt.Completed {
		t.Error("submitted attempt must be marked completed")
	}

	// 提交成功后打卡与月度聚合同步更新
	var stored model.User
	db.First(&stored, user.ID)
	if stored.CurrentStreak != 1 {
		t.Errorf("streak after submit = %d, want 1", stored.CurrentStreak)
	}

	var analytics model.MonthlyAnalytics
	if err := db.Where("user_id = ?", user.ID).First(&analytics).Error; err != nil {
		t.Fatalf("monthly analytics missing: %v", err)
	}
	if analytics.ExercisesDone != 1 {
		t.Errorf("exercisesDone = %d, want 1", analytics.ExercisesDone)
	}
	if !floatPtrEq(analytics.ListeningAvg, 8.0) {
		t.Errorf("listeningAvg = %v, want 8.0", analytics.ListeningAvg)
	}
}

func TestSubmitAnswersCountMismatch(t *testing.T) {
	svc, db, user := newListeningService(t)
	exercise := seedListeningExercise(t, db, true)

	answers := map[string]string{
		exercise.Questions[0].ID: "green",
	}

	_, err := svc.SubmitAnswers(user.ID, exercise.ID, &SubmitAnswersRequest{Answers: answers, TimeSpent: 240})
	if !util.IsValidationError(err) {
		t.Fatalf("want validation error for count mismatch, got %v", err)
	}

	var count int64
	db.Model(&model.ListeningAttempt{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected submission must not persist, found %d attempts", count)
	}
}

func TestSubmitAnswersForeignQuestionID(t *testing.T) {
	svc, db, user := newListeningService(t)
	exercise := seedListeningExercise(t, db, true)

	answers := map[string]string{
		exercise.Questions[0].ID: "green",
		exercise.Questions[1].ID: "b",
		exercise.Questions[2].ID: "not given",
		"not-a-question-id":      "250",
	}

	_, err := svc.SubmitAnswers(user.ID, exercise.ID, &SubmitAnswersRequest{Answers: answers, TimeSpent: 240})
	if !util.IsValidationError(err) {
		t.Fatalf("want validation error for foreign question id, got %v", err)
	}
}

func TestSubmitAnswersRejectsNonPositiveTimeSpent(t *testing.T) {
	svc, db, user := newListeningService(t)
	exercise := seedListeningExercise(t, db, true)

	answers := map[string]string{
		exercise.Questions[0].ID: "green",
		exercise.Questions[1].ID: "b",
		exercise.Questions[2].ID: "not given",
		exercise.Questions[3].ID: "250",
	}

	for _, timeSpent := range []int{0, -600} {
		_, err := svc.SubmitAnswers(user.ID, exercise.ID, &SubmitAnswersRequest{Answers: answers, TimeSpent: timeSpent})
		if !util.IsValidationError(err) {
			t.Fatalf("timeSpent=%d: want validation error, got %v", timeSpent, err)
		}
	}

	var count int64
	db.Model(&model.ListeningAttempt{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected submission must not persist, found %d attempts", count)
	}
}

func TestSubmitAnswersRoundsStudyMinutes(t *testing.T) {
	svc, db, user := newListeningService(t)
	exercise := seedListeningExercise(t, db, true)

	answers := map[string]string{
		exercise.Questions[0].ID: "green",
		exercise.Questions[1].ID: "b",
		exercise.Questions[2].ID: "not given",
		exercise.Questions[3].ID: "250",
	}

	// 90 秒按四舍五入计 2 分钟
	if _, err := svc.SubmitAnswers(user.ID, exercise.ID, &SubmitAnswersRequest{Answers: answers, TimeSpent: 90}); err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	var stored model.User
	db.First(&stored, user.ID)
	if stored.TotalStudyTime != 2 {
		t.Errorf("totalStudyTime = %d, want 2", stored.TotalStudyTime)
	}

	var analytics model.MonthlyAnalytics
	if err := db.Where("user_id = ?", user.ID).First(&analytics).Error; err != nil {
		t.Fatalf("monthly analytics missing: %v", err)
	}
	if analytics.StudyTime != 2 {
		t.Errorf("monthly studyTime = %d, want 2", analytics.StudyTime)
	}
}

func TestListExercisesRejectsUnknownFilters(t *testing.T) {
	svc, db, _ := newListeningService(t)
	seedListeningExercise(t, db, true)

	if _, _, err := svc.ListExercises("impossible", "", 1, 20); !util.IsValidationError(err) {
		t.Fatalf("want validation error for unknown difficulty, got %v", err)
	}
	if _, _, err := svc.ListExercises("", "business", 1, 20); !util.IsValidationError(err) {
		t.Fatalf("want validation error for unknown category, got %v", err)
	}
	if _, _, err := svc.ListExercises(string(model.DifficultyMedium), model.CategoryAcademic, 1, 20); err != nil {
		t.Fatalf("valid filters must pass: %v", err)
	}
}

func TestSubmitAnswersExerciseNotFound(t *testing.T) {
	svc, _, user := newListeningService(t)

	_, err := svc.SubmitAnswers(user.ID, "missing-id", &SubmitAnswersRequest{Answers: map[string]string{"q": "a"}})
	if !errors.Is(err, util.ErrExerciseNotFound) {
		t.Fatalf("want ErrExerciseNotFound, got %v", err)
	}
}

func TestGetExerciseHidesUnpublished(t *testing.T) {
	svc, db, _ := newListeningService(t)
	exercise := seedListeningExercise(t, db, false)

	_, err := svc.GetExercise(exercise.ID)
	if !errors.Is(err, util.ErrExerciseNotFound) {
		t.Fatalf("unpublished exercise must look missing, got %v", err)
	}
}

func TestGetAttemptScopedToOwner(t *testing.T) {
	svc, db, user := newListeningService(t)
	exercise := seedListeningExercise(t, db, true)

	answers := map[string]string{
		exercise.Questions[0].ID: "green",
		exercise.Questions[1].ID: "b",
		exercise.Questions[2].ID: "not given",
		exercise.Questions[3].ID: "250",
	}
	result, err := svc.SubmitAnswers(user.ID, exercise.ID, &SubmitAnswersRequest{Answers: answers, TimeSpent: 240})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	if _, err := svc.GetAttempt(user.ID, result.AttemptID); err != nil {
		t.Fatalf("owner should read own attempt: %v", err)
	}

	other := &model.User{Name: "Li Na", Email: "li.na@example.com", Password: "hashed", Role: model.Student}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("create other user: %v", err)
	}

	if _, err := svc.GetAttempt(other.ID, result.AttemptID); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("foreign attempt must look missing, got %v", err)
	}
}
