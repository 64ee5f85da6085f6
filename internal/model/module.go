package model

// ModuleType 四个备考模块
type ModuleType string

const (
	ModuleListening ModuleType = "listening"
	ModuleReading   ModuleType = "reading"
	ModuleWriting   ModuleType = "writing"
	ModuleSpeaking  ModuleType = "speaking"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// 练习分类，与备考方向对应
const (
	CategoryAcademic = "academic"
	CategoryGeneral  = "general"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalseNG    QuestionType = "true_false_ng"
	QuestionFillBlank      QuestionType = "fill_blank"
)
