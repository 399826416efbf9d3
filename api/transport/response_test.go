package transport

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joinboard/backend/domain"
)

func TestSuccessEnvelopeShape(t *testing.T) {
	out, err := json.Marshal(Success(map[string]int{"id": 1}, "created"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, true, decoded["ok"])
	require.Equal(t, "created", decoded["message"])
	require.Contains(t, decoded, "data")
	require.NotContains(t, decoded, "errors")
	require.NotContains(t, decoded, "error")
}

func TestFailureEnvelopeShape(t *testing.T) {
	fields := map[string]string{"title": "title is required"}
	out, err := json.Marshal(Failure(fields, "validation failed"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, false, decoded["ok"])
	require.Equal(t, "validation failed", decoded["error"])
	require.Contains(t, decoded, "errors")
	require.NotContains(t, decoded, "data")
}

func TestNewTaskResponse(t *testing.T) {
	task := domain.Task{
		ID:       3,
		Title:    "Review backlog",
		Category: "planning",
		DueDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		State:    domain.TaskStateTodo,
	}
	contacts := []domain.Contact{
		{ID: 1, UserID: 7, FirstName: "Maya"},
		{ID: 2, UserID: 7, FirstName: "Niels"},
	}

	resp := NewTaskResponse(task, contacts)
	require.Equal(t, "2026-09-15", resp.DueDate)
	require.Len(t, resp.Contacts, 2)
	require.Equal(t, 2, resp.ContactsCount)
}

func TestNewTaskResponseZeroDueDate(t *testing.T) {
	resp := NewTaskResponse(domain.Task{ID: 3}, nil)
	require.Equal(t, "", resp.DueDate)
	require.NotNil(t, resp.Contacts)
	require.Zero(t, resp.ContactsCount)
}

func TestNewContactResponsesNeverNil(t *testing.T) {
	out, err := json.Marshal(NewContactResponses(nil))
	require.NoError(t, err)
	require.Equal(t, "[]", string(out))
}
