package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ielts_prep_backend/internal/config"
	"ielts_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

// WritingFeedback AI 写作评阅结果，评分维度与雅思官方标准一致
type WritingFeedback struct {
	OverallScore        float64  `json:"overallScore"`
	TaskAchievement     float64  `json:"taskAchievement"`
	CoherenceCohesion   float64  `json:"coherenceCohesion"`
	LexicalResource     float64  `json:"lexicalResource"`
	GrammaticalAccuracy float64  `json:"grammaticalAccuracy"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
}

// SpeakingFeedback AI 口语评阅结果
type SpeakingFeedback struct {
	OverallScore        float64  `json:"overallScore"`
	FluencyCoherence    float64  `json:"fluencyCoherence"`
	LexicalResource     float64  `json:"lexicalResource"`
	GrammaticalAccuracy float64  `json:"grammaticalAccuracy"`
	Pronunciation       float64  `json:"pronunciation"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// FeedbackService 调用 OpenAI 兼容接口评阅写作与口语
// AI 不可用时返回全零反馈并记录日志，绝不让评阅失败阻断提交
type FeedbackService struct {
	config config.AIConfig
	client *http.Client
}

func NewFeedbackService(cfg config.AIConfig) *FeedbackService {
	return &FeedbackService{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *FeedbackService) chat(system, prompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

// stripJSONFences 去掉模型输出外层的 Markdown 代码围栏
func stripJSONFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

const writingExaminerSystem = "You are a certified IELTS writing examiner. " +
	"Evaluate essays strictly according to the official IELTS writing band descriptors. " +
	"Respond with JSON only, no extra commentary."

const speakingExaminerSystem = "You are a certified IELTS speaking examiner. " +
	"Evaluate the candidate's response strictly according to the official IELTS speaking band descriptors. " +
	"Respond with JSON only, no extra commentary."

// EvaluateWriting 评阅一篇作文，失败时返回全零反馈
func (s *FeedbackService) EvaluateWriting(taskPrompt, essay string, taskType int) *WritingFeedback {
	prompt := fmt.Sprintf(`Evaluate the following IELTS Writing Task %d essay.

Task prompt:
%s

Candidate essay (%d words):
%s

Return a JSON object with exactly these fields:
{"overallScore": number, "taskAchievement": number, "coherenceCohesion": number, "lexicalResource": number, "grammaticalAccuracy": number, "strengths": [string], "improvements": [string]}
All scores are IELTS bands between 0 and 9 in half-band steps.`, taskType, taskPrompt, countWords(essay), essay)

	content, err := s.chat(writingExaminerSystem, prompt)
	if err != nil {
		logger.Log.Warn("Writing evaluation failed, returning empty feedback", zap.Error(err))
		return &WritingFeedback{Strengths: []string{}, Improvements: []string{}}
	}

	var feedback WritingFeedback
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &feedback); err != nil {
		logger.Log.Warn("Failed to parse writing feedback", zap.Error(err))
		return &WritingFeedback{Strengths: []string{}, Improvements: []string{}}
	}

	feedback.OverallScore = clampBand(feedback.OverallScore)
	feedback.TaskAchievement = clampBand(feedback.TaskAchievement)
	feedback.CoherenceCohesion = clampBand(feedback.CoherenceCohesion)
	feedback.LexicalResource = clampBand(feedback.LexicalResource)
	feedback.GrammaticalAccuracy = clampBand(feedback.GrammaticalAccuracy)
	if feedback.Strengths == nil {
		feedback.Strengths = []string{}
	}
	if feedback.Improvements == nil {
		feedback.Improvements = []string{}
	}
	return &feedback
}

// EvaluateSpeaking 评阅一段口语转写文本，失败时返回全零反馈
func (s *FeedbackService) EvaluateSpeaking(questions, transcript string, part int) *SpeakingFeedback {
	prompt := fmt.Sprintf(`Evaluate the following IELTS Speaking Part %d response.

Questions asked:
%s

Candidate response (transcribed):
%s

Return a JSON object with exactly these fields:
{"overallScore": number, "fluencyCoherence": number, "lexicalResource": number, "grammaticalAccuracy": number, "pronunciation": number, "strengths": [string], "improvements": [string]}
All scores are IELTS bands between 0 and 9 in half-band steps.`, part, questions, transcript)

	content, err := s.chat(speakingExaminerSystem, prompt)
	if err != nil {
		logger.Log.Warn("Speaking evaluation failed, returning empty feedback", zap.Error(err))
		return &SpeakingFeedback{Strengths: []string{}, Improvements: []string{}}
	}

	var feedback SpeakingFeedback
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &feedback); err != nil {
		logger.Log.Warn("Failed to parse speaking feedback", zap.Error(err))
		return &SpeakingFeedback{Strengths: []string{}, Improvements: []string{}}
	}

	feedback.OverallScore = clampBand(feedback.OverallScore)
	feedback.FluencyCoherence = clampBand(feedback.FluencyCoherence)
	feedback.LexicalResource = clampBand(feedback.LexicalResource)
	feedback.GrammaticalAccuracy = clampBand(feedback.GrammaticalAccuracy)
	feedback.Pronunciation = clampBand(feedback.Pronunciation)
	if feedback.Strengths == nil {
		feedback.Strengths = []string{}
	}
	if feedback.Improvements == nil {
		feedback.Improvements = []string{}
	}
	return &feedback
}

// clampBand 把分数限制在 0-9 区间
func clampBand(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 9 {
		return 9
	}
	return score
}
