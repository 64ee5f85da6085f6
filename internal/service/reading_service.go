package service

import (
	"encoding/json"
	"time"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
	"ielts_prep_backend/pkg/monitoring"
)

type ReadingService struct {
	Repo        *repository.ReadingRepository
	AttemptRepo *repository.AttemptRepository
	Progress    *ProgressService
	Analytics   *AnalyticsService
	Cache       *DashboardCache
}

func NewReadingService(
	repo *repository.ReadingRepository,
	attemptRepo *repository.AttemptRepository,
	progress *ProgressService,
	analytics *AnalyticsService,
	cache *DashboardCache,
) *ReadingService {
	return &ReadingService{
		Repo:        repo,
		AttemptRepo: attemptRepo,
		Progress:    progress,
		Analytics:   analytics,
		Cache:       cache,
	}
}

func (s *ReadingService) ListExercises(difficulty, category string, page, limit int) ([]model.ReadingExercise, int64, error) {
	if err := validateDifficultyFilter(difficulty); err != nil {
		return nil, 0, err
	}
	if err := validateCategoryFilter(category); err != nil {
		return nil, 0, err
	}
	return s.Repo.ListPublished(difficulty, category, page, limit)
}

func (s *ReadingService) GetExercise(id string) (*model.ReadingExercise, error) {
	exercise, err := s.Repo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, util.ErrExerciseNotFound
		}
		return nil, err
	}
	if !exercise.IsPublished {
		return nil, util.ErrExerciseNotFound
	}
	return exercise, nil
}

// SubmitAnswers 判分并保存一次阅读作答
func (s *ReadingService) SubmitAnswers(userID uint, exerciseID string, req *SubmitAnswersRequest) (*ObjectiveResult, error) {
	exercise, err := s.GetExercise(exerciseID)
	if err != nil {
		return nil, err
	}
	if err := validateTimeSpent(req.TimeSpent); err != nil {
		return nil, err
	}

	total := len(exercise.Questions)
	if total == 0 {
		return nil, util.NewValidationError("exercise", "练习不含任何题目")
	}
	if len(req.Answers) != total {
		return nil, util.NewValidationError("answers", "答案数量与题目数量不一致")
	}

	correct := 0
	results := make([]QuestionResult, 0, total)
	for _, question := range exercise.Questions {
		answer, ok := req.Answers[question.ID]
		if !ok {
			return nil, util.NewValidationError("answers", "存在不属于该练习的题目标识")
		}

		isCorrect := normalizeAnswer(answer) == normalizeAnswer(question.CorrectAnswer)
		if isCorrect {
			correct++
		}
		results = append(results, QuestionResult{
			QuestionID:    question.ID,
			IsCorrect:     isCorrect,
			UserAnswer:    answer,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
		})
	}

	score := BandScore(correct, total)

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, err
	}

	attempt := &model.ReadingAttempt{
		UserID:     userID,
		ExerciseID: exerciseID,
		Answers:    answersJSON,
		Score:      score,
		Correct:    correct,
		Total:      total,
		TimeSpent:  req.TimeSpent,
		Completed:  true,
	}
	if err := s.AttemptRepo.CreateReading(attempt); err != nil {
		return nil, err
	}

	monitoring.RecordAttemptSubmission(string(model.ModuleReading))
	recordAfterAttempt(s.Progress, s.Analytics, s.Cache, userID, req.TimeSpent, time.Now())

	return &ObjectiveResult{
		AttemptID: attempt.ID,
		Score:     score,
		Correct:   correct,
		Total:     total,
		Results:   results,
	}, nil
}

func (s *ReadingService) GetAttempt(userID uint, attemptID string) (*model.ReadingAttempt, error) {
	attempt, err := s.AttemptRepo.FindReadingByID(attemptID, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return attempt, nil
}
