package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestListTasks(t *testing.T) {
	tests := []struct {
		name       string
		userID     int
		response   []Task
		statusCode int
		wantErr    bool
	}{
		{
			name:   "successful request",
			userID: 1,
			response: []Task{
				{
					ID:       10,
					Title:    "Pay rent",
					DueDate:  "2024-01-01",
					Priority: PriorityHigh,
					Status:   StatusPending,
					UserID:   1,
				},
			},
			statusCode: http.StatusOK,
			wantErr:    false,
		},
		{
			name:       "missing user",
			userID:     0,
			response:   nil,
			statusCode: http.StatusBadRequest,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET request, got %s", r.Method)
				}
				if r.URL.Path != "/api/tasks" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("userId"); tt.userID != 0 && got == "" {
					t.Error("expected userId in query")
				}

				w.WriteHeader(tt.statusCode)
				if tt.statusCode == http.StatusOK {
					json.NewEncoder(w).Encode(tt.response)
				} else {
					json.NewEncoder(w).Encode(map[string]string{"error": "User ID required"})
				}
			})
			defer server.Close()

			client := NewClient(server.URL)
			tasks, err := client.ListTasks(tt.userID)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tasks) != len(tt.response) {
				t.Errorf("expected %d tasks, got %d", len(tt.response), len(tasks))
			}
			if tasks[0].Title != "Pay rent" {
				t.Errorf("unexpected task title: %s", tasks[0].Title)
			}
		})
	}
}

func TestCreateTask(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST request, got %s", r.Method)
		}

		var draft Task
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if draft.Status != StatusPending {
			t.Errorf("expected status %q in request, got %q", StatusPending, draft.Status)
		}
		if draft.UserID != 1 {
			t.Errorf("expected userId 1 in request, got %d", draft.UserID)
		}

		draft.ID = 42
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(draft)
	})
	defer server.Close()

	client := NewClient(server.URL)
	task, err := client.CreateTask(Task{
		Title:    "Buy groceries",
		DueDate:  "2024-01-02",
		Priority: PriorityMedium,
		Status:   StatusPending,
		UserID:   1,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != 42 {
		t.Errorf("expected server-assigned id 42, got %d", task.ID)
	}
}

func TestUpdateTask(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT request, got %s", r.Method)
		}
		if r.URL.Path != "/api/tasks/7" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		// Full-replace semantics: the complete record must be present.
		var task Task
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if task.Title == "" || task.DueDate == "" || task.Priority == "" {
			t.Error("update request must carry the complete task record")
		}

		json.NewEncoder(w).Encode(task)
	})
	defer server.Close()

	client := NewClient(server.URL)
	updated, err := client.UpdateTask(7, Task{
		ID:       7,
		Title:    "Write report",
		DueDate:  "2024-01-05",
		Priority: PriorityLow,
		Status:   StatusCompleted,
		UserID:   1,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Errorf("expected status %q, got %q", StatusCompleted, updated.Status)
	}
}

func TestDeleteTask(t *testing.T) {
	called := false
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE request, got %s", r.Method)
		}
		if r.URL.Path != "/api/tasks/3" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Deleted"})
	})
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.DeleteTask(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected DELETE to be issued")
	}
}

func TestTaskDueHelpers(t *testing.T) {
	task := Task{DueDate: "2024-01-02"}

	if !task.IsDueOn("2024-01-02") {
		t.Error("expected IsDueOn to match exact date")
	}
	if task.IsDueOn("2024-01-03") {
		t.Error("IsDueOn must be strict string equality")
	}
	if !task.IsDueAfter("2024-01-01") {
		t.Error("expected IsDueAfter for earlier date")
	}
	if task.IsDueAfter("2024-01-02") {
		t.Error("IsDueAfter must be strictly after")
	}

	undated := Task{}
	if undated.IsDueOn("") || undated.IsDueAfter("") {
		t.Error("undated tasks never match due filters")
	}
}
