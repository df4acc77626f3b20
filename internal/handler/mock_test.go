package handler

import (
	"context"

	"github.com/google/uuid"

	"task-tracker-api/internal/dto"
)

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	CreateTaskFunc      func(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTaskFunc         func(ctx context.Context, taskID uuid.UUID) (*dto.TaskResponse, error)
	GetTaskDetailFunc   func(ctx context.Context, taskID uuid.UUID) (*dto.TaskDetailResponse, error)
	UpdateTaskFunc      func(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	ListSprintTasksFunc func(ctx context.Context, sprintID uuid.UUID) ([]dto.TaskResponse, error)
}

func (m *MockTaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, taskID uuid.UUID) (*dto.TaskResponse, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) GetTaskDetail(ctx context.Context, taskID uuid.UUID) (*dto.TaskDetailResponse, error) {
	if m.GetTaskDetailFunc != nil {
		return m.GetTaskDetailFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) ListSprintTasks(ctx context.Context, sprintID uuid.UUID) ([]dto.TaskResponse, error) {
	if m.ListSprintTasksFunc != nil {
		return m.ListSprintTasksFunc(ctx, sprintID)
	}
	return nil, nil
}

// MockLabelService is a mock implementation of LabelService
type MockLabelService struct {
	CreateLabelFunc func(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	GetLabelFunc    func(ctx context.Context, labelID uuid.UUID) (*dto.LabelResponse, error)
}

func (m *MockLabelService) CreateLabel(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	if m.CreateLabelFunc != nil {
		return m.CreateLabelFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockLabelService) GetLabel(ctx context.Context, labelID uuid.UUID) (*dto.LabelResponse, error) {
	if m.GetLabelFunc != nil {
		return m.GetLabelFunc(ctx, labelID)
	}
	return nil, nil
}

// MockTaskLabelService is a mock implementation of TaskLabelService
type MockTaskLabelService struct {
	CreateTaskLabelFunc func(ctx context.Context, req *dto.CreateTaskLabelRequest) (*dto.TaskLabelResponse, error)
	GetTaskLabelFunc    func(ctx context.Context, taskLabelID uuid.UUID) (*dto.TaskLabelResponse, error)
	UpdateTaskLabelFunc func(ctx context.Context, taskLabelID uuid.UUID, req *dto.UpdateTaskLabelRequest) (*dto.TaskLabelResponse, error)
}

func (m *MockTaskLabelService) CreateTaskLabel(ctx context.Context, req *dto.CreateTaskLabelRequest) (*dto.TaskLabelResponse, error) {
	if m.CreateTaskLabelFunc != nil {
		return m.CreateTaskLabelFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockTaskLabelService) GetTaskLabel(ctx context.Context, taskLabelID uuid.UUID) (*dto.TaskLabelResponse, error) {
	if m.GetTaskLabelFunc != nil {
		return m.GetTaskLabelFunc(ctx, taskLabelID)
	}
	return nil, nil
}

func (m *MockTaskLabelService) UpdateTaskLabel(ctx context.Context, taskLabelID uuid.UUID, req *dto.UpdateTaskLabelRequest) (*dto.TaskLabelResponse, error) {
	if m.UpdateTaskLabelFunc != nil {
		return m.UpdateTaskLabelFunc(ctx, taskLabelID, req)
	}
	return nil, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	CreateCommentFunc func(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetCommentFunc    func(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	UpdateCommentFunc func(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
}

func (m *MockCommentService) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCommentService) GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	if m.GetCommentFunc != nil {
		return m.GetCommentFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if m.UpdateCommentFunc != nil {
		return m.UpdateCommentFunc(ctx, commentID, req)
	}
	return nil, nil
}

// MockAttachmentService is a mock implementation of AttachmentService
type MockAttachmentService struct {
	CreateAttachmentFunc func(ctx context.Context, req *dto.CreateAttachmentRequest) (*dto.AttachmentResponse, error)
	UploadAttachmentFunc func(ctx context.Context, req *dto.UploadAttachmentRequest) (*dto.AttachmentResponse, error)
	GetAttachmentFunc    func(ctx context.Context, attachmentID uuid.UUID) (*dto.AttachmentResponse, error)
}

func (m *MockAttachmentService) CreateAttachment(ctx context.Context, req *dto.CreateAttachmentRequest) (*dto.AttachmentResponse, error) {
	if m.CreateAttachmentFunc != nil {
		return m.CreateAttachmentFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAttachmentService) UploadAttachment(ctx context.Context, req *dto.UploadAttachmentRequest) (*dto.AttachmentResponse, error) {
	if m.UploadAttachmentFunc != nil {
		return m.UploadAttachmentFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAttachmentService) GetAttachment(ctx context.Context, attachmentID uuid.UUID) (*dto.AttachmentResponse, error) {
	if m.GetAttachmentFunc != nil {
		return m.GetAttachmentFunc(ctx, attachmentID)
	}
	return nil, nil
}

// MockWorkTimeService is a mock implementation of WorkTimeService
type MockWorkTimeService struct {
	CreateWorkTimeFunc func(ctx context.Context, req *dto.CreateWorkTimeRequest) (*dto.WorkTimeResponse, error)
	GetWorkTimeFunc    func(ctx context.Context, workTimeID uuid.UUID) (*dto.WorkTimeResponse, error)
	UpdateWorkTimeFunc func(ctx context.Context, workTimeID uuid.UUID, req *dto.UpdateWorkTimeRequest) (*dto.WorkTimeResponse, error)
}

func (m *MockWorkTimeService) CreateWorkTime(ctx context.Context, req *dto.CreateWorkTimeRequest) (*dto.WorkTimeResponse, error) {
	if m.CreateWorkTimeFunc != nil {
		return m.CreateWorkTimeFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockWorkTimeService) GetWorkTime(ctx context.Context, workTimeID uuid.UUID) (*dto.WorkTimeResponse, error) {
	if m.GetWorkTimeFunc != nil {
		return m.GetWorkTimeFunc(ctx, workTimeID)
	}
	return nil, nil
}

func (m *MockWorkTimeService) UpdateWorkTime(ctx context.Context, workTimeID uuid.UUID, req *dto.UpdateWorkTimeRequest) (*dto.WorkTimeResponse, error) {
	if m.UpdateWorkTimeFunc != nil {
		return m.UpdateWorkTimeFunc(ctx, workTimeID, req)
	}
	return nil, nil
}
