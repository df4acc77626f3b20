package service

import (
	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/dto"
)

func toTaskResponse(task *domain.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
		Deadline:    task.Deadline,
		SprintID:    task.SprintID,
		UserID:      task.UserID,
		Status:      string(task.Status),
	}
}

func toLabelResponse(label *domain.Label) *dto.LabelResponse {
	return &dto.LabelResponse{
		LabelID: label.ID,
		Name:    label.Name,
	}
}

func toTaskLabelResponse(taskLabel *domain.TaskLabel) *dto.TaskLabelResponse {
	return &dto.TaskLabelResponse{
		TaskLabelID: taskLabel.ID,
		LabelID:     taskLabel.LabelID,
		TaskID:      taskLabel.TaskID,
	}
}

func toCommentResponse(comment *domain.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		CommentID: comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UserID:    comment.UserID,
		TaskID:    comment.TaskID,
	}
}

func toAttachmentResponse(attachment *domain.Attachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		AttachmentID: attachment.ID,
		Content:      attachment.Content,
		TaskID:       attachment.TaskID,
	}
}

func toWorkTimeResponse(workTime *domain.WorkTime) *dto.WorkTimeResponse {
	return &dto.WorkTimeResponse{
		WorkTimeID: workTime.ID,
		StartDate:  workTime.StartDate,
		EndDate:    workTime.EndDate,
		TaskID:     workTime.TaskID,
	}
}
