package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Deleted  bool   `json:"deleted"`
}

type Task struct {
	ID            uint       `json:"id"`
	Deleted       bool       `json:"deleted"`
	DateDeleted   *time.Time `json:"date_deleted"`
	DeletedUserID *uint      `json:"deleted_user_id"`
	DateLastRan   *time.Time `json:"date_last_ran"`
	DateCreated   time.Time  `json:"date_created"`
	DateUpdated   time.Time  `json:"date_updated"`
}

type Worker struct {
	ID            uint `json:"id"`
	TasksComplete int  `json:"tasks_complete"`
}

type TaskResult struct {
	ID    uint `json:"id"`
	Score int  `json:"score"`
}

func TestTaskResultWorkflow(t *testing.T) {
	suffix := time.Now().UnixNano()

	// create User(username="alice")
	var alice User
	resp := postJSON(t, "/users", map[string]interface{}{
		"username": fmt.Sprintf("alice-%d", suffix),
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &alice)
	require.NotZero(t, alice.ID)

	// create Task owned by alice
	var task Task
	resp = postJSON(t, "/tasks", map[string]interface{}{
		"user_id":    alice.ID,
		"created_by": alice.ID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &task)
	require.NotZero(t, task.ID)
	assert.False(t, task.DateCreated.IsZero())
	assert.False(t, task.DateUpdated.Before(task.DateCreated))

	// create Worker pointing at that task
	var worker Worker
	resp = postJSON(t, "/workers", map[string]interface{}{
		"ip_address": "10.0.0.15",
		"user_id":    alice.ID,
		"task_id":    task.ID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &worker)
	require.NotZero(t, worker.ID)
	before := worker.TasksComplete

	// submit a result for one execution
	token := fmt.Sprintf("exec-%d", suffix)
	var result TaskResult
	resp = postJSON(t, fmt.Sprintf("/workers/%d/results", worker.ID), map[string]interface{}{
		"task_id":         task.ID,
		"execution_token": token,
		"succeeded":       true,
		"score":           87,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &result)
	assert.Equal(t, 87, result.Score)

	// Task.lastRun updated
	httpResp, err := http.Get(fmt.Sprintf("%s/tasks/%d", BaseURL, task.ID))
	require.NoError(t, err)
	var after Task
	decode(t, httpResp, &after)
	assert.NotNil(t, after.DateLastRan)

	// Worker.tasksComplete incremented by exactly 1
	httpResp, err = http.Get(fmt.Sprintf("%s/workers/%d", BaseURL, worker.ID))
	require.NoError(t, err)
	var workerAfter Worker
	decode(t, httpResp, &workerAfter)
	assert.Equal(t, before+1, workerAfter.TasksComplete)

	// a retried report with the same execution token must not double-count
	resp = postJSON(t, fmt.Sprintf("/workers/%d/results", worker.ID), map[string]interface{}{
		"task_id":         task.ID,
		"execution_token": token,
		"succeeded":       true,
		"score":           87,
	})
	resp.Body.Close()

	httpResp, err = http.Get(fmt.Sprintf("%s/workers/%d", BaseURL, worker.ID))
	require.NoError(t, err)
	var workerRetry Worker
	decode(t, httpResp, &workerRetry)
	assert.Equal(t, before+1, workerRetry.TasksComplete)
}

func TestSoftDeleteWorkflow(t *testing.T) {
	suffix := time.Now().UnixNano()

	var bob User
	resp := postJSON(t, "/users", map[string]interface{}{
		"username": fmt.Sprintf("bob-%d", suffix),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &bob)

	var task Task
	resp = postJSON(t, "/tasks", map[string]interface{}{
		"user_id":    bob.ID,
		"created_by": bob.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &task)

	// soft-delete the task as bob
	resp = deleteJSON(t, fmt.Sprintf("/tasks/%d", task.ID), map[string]interface{}{
		"deleted_by": bob.ID,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	httpResp, err := http.Get(fmt.Sprintf("%s/tasks/%d", BaseURL, task.ID))
	require.NoError(t, err)
	var deleted Task
	decode(t, httpResp, &deleted)
	assert.True(t, deleted.Deleted)
	assert.NotNil(t, deleted.DateDeleted)
	require.NotNil(t, deleted.DeletedUserID)
	assert.Equal(t, bob.ID, *deleted.DeletedUserID)

	// second delete attempt is a conflict, not a silent success
	resp = deleteJSON(t, fmt.Sprintf("/tasks/%d", task.ID), map[string]interface{}{
		"deleted_by": bob.ID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestWriteTimeValidation(t *testing.T) {
	suffix := time.Now().UnixNano()

	t.Run("Result with dangling references rejected", func(t *testing.T) {
		resp := postJSON(t, "/workers/999999999/results", map[string]interface{}{
			"task_id": 999999999,
			"score":   1,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Test kind outside declared set rejected", func(t *testing.T) {
		resp := postJSON(t, "/test-configs", map[string]interface{}{
			"test_type": "production",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Unregistered prediction kind rejected, no row persisted", func(t *testing.T) {
		var base struct {
			ID uint `json:"id"`
		}
		resp := postJSON(t, "/test-configs", map[string]interface{}{
			"test_type": "mock",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		decode(t, resp, &base)

		resp = postJSON(t, "/prediction-tests", map[string]interface{}{
			"base_id":         base.ID,
			"prediction_type": "made-up-kind",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		httpResp, err := http.Get(BaseURL + "/prediction-tests")
		require.NoError(t, err)
		var configs []struct {
			PredictionType string `json:"prediction_type"`
		}
		decode(t, httpResp, &configs)
		for _, cfg := range configs {
			assert.NotEqual(t, "made-up-kind", cfg.PredictionType)
		}
	})

	t.Run("Duplicate username rejected", func(t *testing.T) {
		username := fmt.Sprintf("carol-%d", suffix)
		resp := postJSON(t, "/users", map[string]interface{}{"username": username})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = postJSON(t, "/users", map[string]interface{}{"username": username})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestUserSecretRoundTrip(t *testing.T) {
	suffix := time.Now().UnixNano()

	var user User
	resp := postJSON(t, "/users", map[string]interface{}{
		"username":   fmt.Sprintf("dave-%d", suffix),
		"secret_key": "hunter2-but-longer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &user)

	httpResp, err := http.Get(fmt.Sprintf("%s/users/%d/secret", BaseURL, user.ID))
	require.NoError(t, err)
	defer httpResp.Body.Close()
	require.Equal(t, http.StatusOK, httpResp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&payload))
	assert.Equal(t, "hunter2-but-longer", payload["secret_key"])
}
