package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/tasks"
)

const (
	MsgTaskEnqueued      = "task enqueued"
	MsgTaskEnqueueFailed = "Error enqueuing task"
	MsgTaskStatusFailed  = "Error fetching task status"
	MsgAuditDisabled     = "audit logging is disabled"
)

// TaskQueue is the part of the task client the controller uses.
type TaskQueue interface {
	Enqueue(tasks ...backlite.Task) ([]string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// TasksController handles task queue management endpoints.
type TasksController struct {
	client        TaskQueue
	auditEnabled  bool
	retentionDays int
	logger        *zap.Logger
}

// NewTasksController exposes the task queue. With auditEnabled false the
// audit cleanup task is neither listed nor accepted.
func NewTasksController(client TaskQueue, auditEnabled bool, retentionDays int, logger *zap.Logger) *TasksController {
	return &TasksController{client: client, auditEnabled: auditEnabled, retentionDays: retentionDays, logger: logger}
}

// RunTaskRequest is the optional body of POST /tasks/:type/run.
type RunTaskRequest struct {
	DryRun        bool `json:"dryRun"`
	RetentionDays int  `json:"retentionDays"`
}

// TaskStatusResponse reports a task's state.
type TaskStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ListTaskTypes handles GET /tasks/types.
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	respondOK(c, "", tasks.Types(tc.auditEnabled))
}

// GetTaskStatus handles GET /tasks/:id.
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondError(c, tc.logger, err, MsgTaskStatusFailed)
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondError(c, tc.logger, apperrors.NotFoundf("task %s not found", taskID), MsgTaskStatusFailed)
		return
	}

	respondOK(c, "", TaskStatusResponse{ID: taskID, Status: taskStatusToString(status)})
}

// RunTask handles POST /tasks/:type/run.
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("type")

	var req RunTaskRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, tc.logger, err, MsgTaskEnqueueFailed)
		return
	}

	var task backlite.Task
	switch taskType {
	case tasks.QueueSweepOrphanBookmarks:
		task = tasks.SweepOrphanBookmarksTask{DryRun: req.DryRun}

	case tasks.QueueCleanupAuditEvents:
		if !tc.auditEnabled {
			respondError(c, tc.logger, apperrors.InvalidArgument(MsgAuditDisabled), MsgTaskEnqueueFailed)
			return
		}
		days := req.RetentionDays
		if days <= 0 {
			days = tc.retentionDays
		}
		task = tasks.CleanupAuditEventsTask{RetentionDays: days}

	default:
		respondError(c, tc.logger, apperrors.InvalidArgument(fmt.Sprintf("unknown task type: %s", taskType)), MsgTaskEnqueueFailed)
		return
	}

	ids, err := tc.client.Enqueue(task)
	if err != nil {
		respondError(c, tc.logger, err, MsgTaskEnqueueFailed)
		return
	}

	c.JSON(http.StatusAccepted, Envelope{
		Success: true,
		Message: MsgTaskEnqueued,
		Data:    gin.H{"taskId": ids[0], "type": taskType},
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
