package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	userID := uuid.New()
	deadline := time.Now().UTC().Add(24 * time.Hour)

	task, err := NewTask(userID, "Write report", "Quarterly numbers", TaskStatusPending, &deadline)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, task.UserID)
	}

	if task.Title != "Write report" {
		t.Errorf("Expected title %q, got %q", "Write report", task.Title)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status %q, got %q", TaskStatusPending, task.Status)
	}

	if task.Deadline == nil || !task.Deadline.Equal(deadline) {
		t.Errorf("Expected deadline %v, got %v", deadline, task.Deadline)
	}

	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}
}

func TestNewTaskDefaultsStatusToPending(t *testing.T) {
	task, err := NewTask(uuid.New(), "Untitled status", "", "", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status %q, got %q", TaskStatusPending, task.Status)
	}
}

func TestNewTaskValidationErrors(t *testing.T) {
	userID := uuid.New()

	_, err := NewTask(uuid.Nil, "Title", "", TaskStatusPending, nil)
	if err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}

	_, err = NewTask(userID, "", "", TaskStatusPending, nil)
	if err != ErrEmptyTaskTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskTitle, err)
	}

	_, err = NewTask(userID, "Title", "", TaskStatus("archived"), nil)
	if err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}
}

func TestTaskValidate(t *testing.T) {
	validTask := Task{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Valid task",
		Status: TaskStatusCompleted,
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	invalidTask = validTask
	invalidTask.Status = "unknown"
	if err := invalidTask.Validate(); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}
}

func TestTaskStatusIsValid(t *testing.T) {
	if !TaskStatusPending.IsValid() {
		t.Error("Expected pending to be valid")
	}
	if !TaskStatusCompleted.IsValid() {
		t.Error("Expected completed to be valid")
	}
	if TaskStatus("").IsValid() {
		t.Error("Expected empty status to be invalid")
	}
	if TaskStatus("done").IsValid() {
		t.Error("Expected unknown status to be invalid")
	}
}
