package service

import (
	"encoding/json"
	"strings"
	"time"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
	"ielts_prep_backend/pkg/monitoring"
)

// minEssayChars 作文最短字符数，短于此长度无法给出有效评阅
const minEssayChars = 100

// SubmitEssayRequest 作文提交
type SubmitEssayRequest struct {
	Content   string `json:"content" binding:"required"`
	TimeSpent int    `json:"timeSpent"` // 秒
}

// EssayResult 作文评阅结果
type EssayResult struct {
	AttemptID string           `json:"attemptId"`
	Score     float64          `json:"score"`
	WordCount int              `json:"wordCount"`
	Feedback  *WritingFeedback `json:"feedback"`
}

type WritingService struct {
	Repo        *repository.WritingRepository
	AttemptRepo *repository.AttemptRepository
	Feedback    *FeedbackService
	Progress    *ProgressService
	Analytics   *AnalyticsService
	Cache       *DashboardCache
}

func NewWritingService(
	repo *repository.WritingRepository,
	attemptRepo *repository.AttemptRepository,
	feedback *FeedbackService,
	progress *ProgressService,
	analytics *AnalyticsService,
	cache *DashboardCache,
) *WritingService {
	return &WritingService{
		Repo:        repo,
		AttemptRepo: attemptRepo,
		Feedback:    feedback,
		Progress:    progress,
		Analytics:   analytics,
		Cache:       cache,
	}
}

func (s *WritingService) ListTasks(taskType int, difficulty string, page, limit int) ([]model.WritingTask, int64, error) {
	if err := validateTaskTypeFilter(taskType); err != nil {
		return nil, 0, err
	}
	if err := validateDifficultyFilter(difficulty); err != nil {
		return nil, 0, err
	}
	return s.Repo.ListPublished(taskType, difficulty, page, limit)
}

func (s *WritingService) GetTask(id string) (*model.WritingTask, error) {
	task, err := s.Repo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, util.ErrTaskNotFound
		}
		return nil, err
	}
	if !task.IsPublished {
		return nil, util.ErrTaskNotFound
	}
	return task, nil
}

// SubmitEssay 提交作文并触发 AI 评阅
// AI 评阅失败不报错，保存全零反馈供前端提示稍后重试
func (s *WritingService) SubmitEssay(userID uint, taskID string, req *SubmitEssayRequest) (*EssayResult, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := validateTimeSpent(req.TimeSpent); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	wordCount := countWords(content)
	if wordCount == 0 {
		return nil, util.NewValidationError("content", "作文内容不能为空")
	}
	if len(content) < minEssayChars {
		return nil, util.NewValidationError("content", "作文内容不少于 100 个字符")
	}
	if task.MinWords > 0 && wordCount < task.MinWords {
		return nil, util.NewValidationError("content", "作文字数未达到该任务的最低要求")
	}

	feedback := s.Feedback.EvaluateWriting(task.Prompt, req.Content, task.TaskType)

	feedbackJSON, err := json.Marshal(feedback)
	if err != nil {
		return nil, err
	}

	attempt := &model.WritingAttempt{
		UserID:    userID,
		TaskID:    taskID,
		Content:   req.Content,
		WordCount: wordCount,
		Score:     feedback.OverallScore,
		Feedback:  feedbackJSON,
		TimeSpent: req.TimeSpent,
		Completed: true,
	}
	if err := s.AttemptRepo.CreateWriting(attempt); err != nil {
		return nil, err
	}

	monitoring.RecordAttemptSubmission(string(model.ModuleWriting))
	recordAfterAttempt(s.Progress, s.Analytics, s.Cache, userID, req.TimeSpent, time.Now())

	return &EssayResult{
		AttemptID: attempt.ID,
		Score:     feedback.OverallScore,
		WordCount: wordCount,
		Feedback:  feedback,
	}, nil
}

func (s *WritingService) GetAttempt(userID uint, attemptID string) (*model.WritingAttempt, error) {
	attempt, err := s.AttemptRepo.FindWritingByID(attemptID, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return attempt, nil
}
