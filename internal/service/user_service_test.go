package service

import (
	"errors"
	"testing"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
)

func TestUpdateProfileTargetScore(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		score   *float64
		wantErr bool
	}{
		{"valid half band", ptr(6.5), false},
		{"valid whole band", ptr(8.0), false},
		{"lower bound", ptr(5.0), false},
		{"upper bound", ptr(9.0), false},
		{"below range", ptr(4.5), true},
		{"above range", ptr(9.5), true},
		{"not a half step", ptr(6.3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, userRepo, _, _ := newTestRepos(t)
			user := createTestUser(t, db)
			svc := NewUserService(userRepo)

			updated, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{TargetScore: tt.score})
			if tt.wantErr {
				if !util.IsValidationError(err) {
					t.Fatalf("want validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateProfile: %v", err)
			}
			if updated.TargetScore != *tt.score {
				t.Errorf("targetScore = %v, want %v", updated.TargetScore, *tt.score)
			}
		})
	}
}

func TestUpdateProfileStudyGoal(t *testing.T) {
	db, userRepo, _, _ := newTestRepos(t)
	user := createTestUser(t, db)
	svc := NewUserService(userRepo)

	updated, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{StudyGoal: "general"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.StudyGoal != model.GoalGeneral {
		t.Errorf("studyGoal = %s, want general", updated.StudyGoal)
	}

	if _, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{StudyGoal: "business"}); !util.IsValidationError(err) {
		t.Fatalf("want validation error for unknown goal, got %v", err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.GetProfile(9999)
	if !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}
