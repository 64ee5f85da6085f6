package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
	"ielts_prep_backend/pkg/monitoring"
)

// SubmitSpeakingRequest 口语提交，音频文件另行通过 multipart 上传
type SubmitSpeakingRequest struct {
	Transcript string `json:"transcript" binding:"required"` // 客户端语音转写文本
	TimeSpent  int    `json:"timeSpent"`                     // 秒
}

// SpeakingResult 口语评阅结果
type SpeakingResult struct {
	AttemptID string            `json:"attemptId"`
	Score     float64           `json:"score"`
	AudioURL  string            `json:"audioUrl,omitempty"`
	Feedback  *SpeakingFeedback `json:"feedback"`
}

type SpeakingService struct {
	Repo        *repository.SpeakingRepository
	AttemptRepo *repository.AttemptRepository
	Feedback    *FeedbackService
	Storage     *StorageService
	Progress    *ProgressService
	Analytics   *AnalyticsService
	Cache       *DashboardCache
}

func NewSpeakingService(
	repo *repository.SpeakingRepository,
	attemptRepo *repository.AttemptRepository,
	feedback *FeedbackService,
	storage *StorageService,
	progress *ProgressService,
	analytics *AnalyticsService,
	cache *DashboardCache,
) *SpeakingService {
	return &SpeakingService{
		Repo:        repo,
		AttemptRepo: attemptRepo,
		Feedback:    feedback,
		Storage:     storage,
		Progress:    progress,
		Analytics:   analytics,
		Cache:       cache,
	}
}

func (s *SpeakingService) ListExercises(part int, topic string, page, limit int) ([]model.SpeakingExercise, int64, error) {
	if err := validatePartFilter(part); err != nil {
		return nil, 0, err
	}
	return s.Repo.ListPublished(part, topic, page, limit)
}

func (s *SpeakingService) GetExercise(id string) (*model.SpeakingExercise, error) {
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

// UploadAudio 保存口语录音，返回可访问的音频地址
func (s *SpeakingService) UploadAudio(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".webm"
	}
	objectName := fmt.Sprintf("speaking/%d/%s%s", userID, model.GenerateUUID(), ext)
	return s.Storage.Upload(ctx, objectName, reader, size, contentType)
}

// SubmitResponse 提交口语作答并触发 AI 评阅
func (s *SpeakingService) SubmitResponse(userID uint, exerciseID string, audioURL string, req *SubmitSpeakingRequest) (*SpeakingResult, error) {
	exercise, err := s.GetExercise(exerciseID)
	if err != nil {
		return nil, err
	}
	if err := validateTimeSpent(req.TimeSpent); err != nil {
		return nil, err
	}

	if countWords(req.Transcript) == 0 {
		return nil, util.NewValidationError("transcript", "转写文本不能为空")
	}

	questions := exercise.CueCard
	if len(exercise.Questions) > 0 {
		var list []string
		if err := json.Unmarshal(exercise.Questions, &list); err == nil && len(list) > 0 {
			questions = ""
			for i, q := range list {
				if i > 0 {
					questions += "\n"
				}
				questions += q
			}
		}
	}

	feedback := s.Feedback.EvaluateSpeaking(questions, req.Transcript, exercise.Part)

	feedbackJSON, err := json.Marshal(feedback)
	if err != nil {
		return nil, err
	}

	attempt := &model.SpeakingAttempt{
		UserID:     userID,
		ExerciseID: exerciseID,
		AudioURL:   audioURL,
		Transcript: req.Transcript,
		Score:      feedback.OverallScore,
		Feedback:   feedbackJSON,
		TimeSpent:  req.TimeSpent,
		Completed:  true,
	}
	if err := s.AttemptRepo.CreateSpeaking(attempt); err != nil {
		return nil, err
	}

	monitoring.RecordAttemptSubmission(string(model.ModuleSpeaking))
	recordAfterAttempt(s.Progress, s.Analytics, s.Cache, userID, req.TimeSpent, time.Now())

	return &SpeakingResult{
		AttemptID: attempt.ID,
		Score:     feedback.OverallScore,
		AudioURL:  audioURL,
		Feedback:  feedback,
	}, nil
}

func (s *SpeakingService) GetAttempt(userID uint, attemptID string) (*model.SpeakingAttempt, error) {
	attempt, err := s.AttemptRepo.FindSpeakingByID(attemptID, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return attempt, nil
}
