package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"task-tracker-api/internal/domain"
)

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc         func(ctx context.Context, task *domain.Task) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindBySprintIDFunc func(ctx context.Context, sprintID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc         func(ctx context.Context, task *domain.Task) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindBySprintID(ctx context.Context, sprintID uuid.UUID) ([]*domain.Task, error) {
	if m.FindBySprintIDFunc != nil {
		return m.FindBySprintIDFunc(ctx, sprintID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockLabelRepository is a mock implementation of LabelRepository
type MockLabelRepository struct {
	CreateFunc    func(ctx context.Context, label *domain.Label) error
	FindByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Label, error)
	FindByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.Label, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
}

func (m *MockLabelRepository) Create(ctx context.Context, label *domain.Label) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, label)
	}
	return nil
}

func (m *MockLabelRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockLabelRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Label, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockLabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTaskLabelRepository is a mock implementation of TaskLabelRepository
type MockTaskLabelRepository struct {
	CreateFunc       func(ctx context.Context, taskLabel *domain.TaskLabel) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.TaskLabel, error)
	FindByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLabel, error)
	UpdateFunc       func(ctx context.Context, taskLabel *domain.TaskLabel) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskLabelRepository) Create(ctx context.Context, taskLabel *domain.TaskLabel) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, taskLabel)
	}
	return nil
}

func (m *MockTaskLabelRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskLabel, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskLabelRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLabel, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockTaskLabelRepository) Update(ctx context.Context, taskLabel *domain.TaskLabel) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, taskLabel)
	}
	return nil
}

func (m *MockTaskLabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc       func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)
	UpdateFunc       func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	CreateFunc       func(ctx context.Context, attachment *domain.Attachment) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.Attachment, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockWorkTimeRepository is a mock implementation of WorkTimeRepository
type MockWorkTimeRepository struct {
	CreateFunc       func(ctx context.Context, workTime *domain.WorkTime) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.WorkTime, error)
	FindByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.WorkTime, error)
	UpdateFunc       func(ctx context.Context, workTime *domain.WorkTime) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockWorkTimeRepository) Create(ctx context.Context, workTime *domain.WorkTime) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, workTime)
	}
	return nil
}

func (m *MockWorkTimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkTime, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkTimeRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.WorkTime, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockWorkTimeRepository) Update(ctx context.Context, workTime *domain.WorkTime) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, workTime)
	}
	return nil
}

func (m *MockWorkTimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockReferenceRepository is a mock implementation of ReferenceRepository.
// Unset funcs report the reference as present.
type MockReferenceRepository struct {
	SprintExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)
	UserExistsFunc   func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockReferenceRepository) SprintExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.SprintExistsFunc != nil {
		return m.SprintExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockReferenceRepository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.UserExistsFunc != nil {
		return m.UserExistsFunc(ctx, id)
	}
	return true, nil
}

// MockAttachmentStorage is an in-memory AttachmentStorage
type MockAttachmentStorage struct {
	UploadFunc func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error

	Uploaded []string
	Deleted  []string
}

func (m *MockAttachmentStorage) GenerateFileKey(taskID uuid.UUID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s", domain.AttachmentKeyPrefix, taskID, fileName)
}

func (m *MockAttachmentStorage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFunc != nil {
		if _, err := m.UploadFunc(ctx, key, file, contentType); err != nil {
			return "", err
		}
	}
	m.Uploaded = append(m.Uploaded, key)
	return m.GetFileURL(key), nil
}

func (m *MockAttachmentStorage) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		if err := m.DeleteFunc(ctx, key); err != nil {
			return err
		}
	}
	m.Deleted = append(m.Deleted, key)
	return nil
}

func (m *MockAttachmentStorage) GetFileURL(key string) string {
	return "http://storage.local/" + key
}
