package service

import (
	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
)

// ContentService 管理员维护练习题库
type ContentService struct {
	ListeningRepo *repository.ListeningRepository
	ReadingRepo   *repository.ReadingRepository
	WritingRepo   *repository.WritingRepository
	SpeakingRepo  *repository.SpeakingRepository
}

func NewContentService(
	listeningRepo *repository.ListeningRepository,
	readingRepo *repository.ReadingRepository,
	writingRepo *repository.WritingRepository,
	speakingRepo *repository.SpeakingRepository,
) *ContentService {
	return &ContentService{
		ListeningRepo: listeningRepo,
		ReadingRepo:   readingRepo,
		WritingRepo:   writingRepo,
		SpeakingRepo:  speakingRepo,
	}
}

func (s *ContentService) CreateListeningExercise(exercise *model.ListeningExercise) error {
	if len(exercise.Questions) == 0 {
		return util.NewValidationError("questions", "练习必须至少包含一道题目")
	}
	for i := range exercise.Questions {
		if exercise.Questions[i].QuestionNumber == 0 {
			exercise.Questions[i].QuestionNumber = i + 1
		}
	}
	return s.ListeningRepo.Create(exercise)
}

func (s *ContentService) UpdateListeningExercise(exercise *model.ListeningExercise) error {
	if _, err := s.ListeningRepo.FindByID(exercise.ID); err != nil {
		if isRecordNotFound(err) {
			return util.ErrExerciseNotFound
		}
		return err
	}
	return s.ListeningRepo.Update(exercise)
}

func (s *ContentService) DeleteListeningExercise(id string) error {
	return s.ListeningRepo.Delete(id)
}

func (s *ContentService) CreateReadingExercise(exercise *model.ReadingExercise) error {
	if len(exercise.Questions) == 0 {
		return util.NewValidationError("questions", "练习必须至少包含一道题目")
	}
	if exercise.WordCount == 0 {
		exercise.WordCount = countWords(exercise.Passage)
	}
	for i := range exercise.Questions {
		if exercise.Questions[i].QuestionNumber == 0 {
			exercise.Questions[i].QuestionNumber = i + 1
		}
	}
	return s.ReadingRepo.Create(exercise)
}

func (s *ContentService) UpdateReadingExercise(exercise *model.ReadingExercise) error {
	if _, err := s.ReadingRepo.FindByID(exercise.ID); err != nil {
		if isRecordNotFound(err) {
			return util.ErrExerciseNotFound
		}
		return err
	}
	return s.ReadingRepo.Update(exercise)
}

func (s *ContentService) DeleteReadingExercise(id string) error {
	return s.ReadingRepo.Delete(id)
}

func (s *ContentService) CreateWritingTask(task *model.WritingTask) error {
	if task.TaskType != 1 && task.TaskType != 2 {
		return util.NewValidationError("taskType", "写作任务类型只能是 1 或 2")
	}
	if task.MinWords == 0 {
		if task.TaskType == 1 {
			task.MinWords = 150
		} else {
			task.MinWords = 250
		}
	}
	return s.WritingRepo.Create(task)
}

func (s *ContentService) UpdateWritingTask(task *model.WritingTask) error {
	if _, err := s.WritingRepo.FindByID(task.ID); err != nil {
		if isRecordNotFound(err) {
			return util.ErrTaskNotFound
		}
		return err
	}
	return s.WritingRepo.Update(task)
}

func (s *ContentService) DeleteWritingTask(id string) error {
	return s.WritingRepo.Delete(id)
}

func (s *ContentService) CreateSpeakingExercise(exercise *model.SpeakingExercise) error {
	if exercise.Part < 1 || exercise.Part > 3 {
		return util.NewValidationError("part", "口语部分只能是 1、2 或 3")
	}
	return s.SpeakingRepo.Create(exercise)
}

func (s *ContentService) UpdateSpeakingExercise(exercise *model.SpeakingExercise) error {
	if _, err := s.SpeakingRepo.FindByID(exercise.ID); err != nil {
		if isRecordNotFound(err) {
			return util.ErrExerciseNotFound
		}
		return err
	}
	return s.SpeakingRepo.Update(exercise)
}

func (s *ContentService) DeleteSpeakingExercise(id string) error {
	return s.SpeakingRepo.Delete(id)
}
