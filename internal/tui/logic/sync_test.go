package logic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/config"
	"github.com/daywise/daywise-tui/internal/tui/state"
)

func newTestHandler(t *testing.T, srv *httptest.Server) *Handler {
	t.Helper()

	client := api.NewClient(srv.URL)
	s := state.New(client, config.DefaultConfig())
	s.Session = &api.Session{ID: 1, Username: "alice"}
	s.Screen = state.ScreenApp
	return NewHandler(s)
}

// runCmd executes a command synchronously and feeds the resulting
// message back through Update, like the runtime would.
func runCmd(h *Handler, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	return h.Update(msg)
}

func TestRefreshReplacesCacheWholesale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tasks":
			json.NewEncoder(w).Encode([]api.Task{
				{ID: 7, Title: "fresh", Status: api.StatusPending, UserID: 1},
			})
		case "/api/projects":
			json.NewEncoder(w).Encode([]api.Project{
				{ID: 3, Name: "Home", Color: "#6366f1", UserID: 1},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Tasks = []api.Task{
		{ID: 1, Title: "stale one"},
		{ID: 2, Title: "stale two"},
	}

	runCmd(h, h.refresh())

	if len(h.Tasks) != 1 || h.Tasks[0].Title != "fresh" {
		t.Errorf("expected cache replaced with server tasks, got %+v", h.Tasks)
	}
	if len(h.Projects) != 1 || h.Projects[0].Name != "Home" {
		t.Errorf("expected cache replaced with server projects, got %+v", h.Projects)
	}
	if h.Loading {
		t.Error("loading flag still set after refresh resolved")
	}
}

func TestStaleFetchResponseDropped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]api.Task{{ID: 99, Title: "late arrival"}})
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Tasks = []api.Task{{ID: 1, Title: "current"}}

	cmd := h.refresh()

	// The issuing context goes away before the response lands.
	h.ClearCache()
	h.Tasks = []api.Task{{ID: 2, Title: "newer truth"}}

	runCmd(h, cmd)

	if len(h.Tasks) != 1 || h.Tasks[0].Title != "newer truth" {
		t.Errorf("stale response applied to cache: %+v", h.Tasks)
	}
}

func TestProjectFetchFailureStillLoadsTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tasks":
			json.NewEncoder(w).Encode([]api.Task{
				{ID: 1, Title: "survives", Status: api.StatusPending, UserID: 1},
			})
		case "/api/projects":
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "projects table locked"})
		}
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Projects = []api.Project{{ID: 3, Name: "stale", UserID: 1}}

	runCmd(h, h.refresh())

	if len(h.Tasks) != 1 || h.Tasks[0].Title != "survives" {
		t.Errorf("tasks dropped on project failure: %+v", h.Tasks)
	}
	if len(h.Projects) != 0 {
		t.Errorf("expected stale projects cleared, got %+v", h.Projects)
	}
	if h.StatusMsg != "Projects unavailable: projects table locked" {
		t.Errorf("unexpected status: %q", h.StatusMsg)
	}
}

func TestOverlappingRefreshesKeepNewest(t *testing.T) {
	var mu sync.Mutex
	var fetches int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/projects" {
			json.NewEncoder(w).Encode([]api.Project{})
			return
		}
		mu.Lock()
		fetches++
		title := "old snapshot"
		if fetches > 1 {
			title = "new snapshot"
		}
		mu.Unlock()
		json.NewEncoder(w).Encode([]api.Task{{ID: 1, Title: title, Status: api.StatusPending, UserID: 1}})
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)

	first := h.refresh()
	second := h.refresh()

	// The first refresh's response comes back only after the second
	// one has already landed.
	firstMsg := first()
	secondMsg := second()
	h.Update(secondMsg)
	h.Update(firstMsg)

	if len(h.Tasks) != 1 || h.Tasks[0].Title != "new snapshot" {
		t.Errorf("late response from a superseded refresh applied: %+v", h.Tasks)
	}
}

func TestToggleIsOptimistic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var task api.Task
		json.NewDecoder(r.Body).Decode(&task)
		json.NewEncoder(w).Encode(task)
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Tasks = []api.Task{{ID: 5, Title: "t", Status: api.StatusPending, UserID: 1}}

	cmd := h.toggleTask(5)

	// The cache flips before the request resolves.
	if h.Tasks[0].Status != api.StatusCompleted {
		t.Fatalf("expected optimistic flip to completed, got %s", h.Tasks[0].Status)
	}

	runCmd(h, cmd)

	if h.Tasks[0].Status != api.StatusCompleted {
		t.Errorf("successful toggle reverted: %s", h.Tasks[0].Status)
	}

	// Toggling again flips back.
	h.toggleTask(5)
	if h.Tasks[0].Status != api.StatusPending {
		t.Errorf("expected flip back to pending, got %s", h.Tasks[0].Status)
	}
}

func TestFailedToggleReconcilesToServerTruth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		case r.URL.Path == "/api/tasks":
			json.NewEncoder(w).Encode([]api.Task{
				{ID: 5, Title: "t", Status: api.StatusPending, UserID: 1},
			})
		case r.URL.Path == "/api/projects":
			json.NewEncoder(w).Encode([]api.Project{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Tasks = []api.Task{{ID: 5, Title: "t", Status: api.StatusPending, UserID: 1}}

	cmd := h.toggleTask(5)
	if h.Tasks[0].Status != api.StatusCompleted {
		t.Fatal("expected optimistic flip before the request resolves")
	}

	// The failed update triggers a refresh that restores server truth.
	refreshCmd := runCmd(h, cmd)
	runCmd(h, refreshCmd)

	if h.Tasks[0].Status != api.StatusPending {
		t.Errorf("expected reconcile back to pending, got %s", h.Tasks[0].Status)
	}
	if h.StatusMsg != "boom" {
		t.Errorf("expected server error surfaced, got %q", h.StatusMsg)
	}
}

func TestDeclinedDeleteIssuesNoRequest(t *testing.T) {
	var deletes int
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			mu.Lock()
			deletes++
			mu.Unlock()
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Tasks = []api.Task{{ID: 5, Title: "keep me", Status: api.StatusPending, UserID: 1}}

	h.requestDelete()
	if h.ConfirmDelete == nil {
		t.Fatal("expected delete confirmation to be armed")
	}

	cmd := h.handleConfirmDeleteKeys(keyMsg("n"))
	runCmd(h, cmd)

	if h.ConfirmDelete != nil {
		t.Error("confirmation guard still armed after decline")
	}
	if deletes != 0 {
		t.Errorf("declining the confirmation issued %d delete requests", deletes)
	}
	if len(h.Tasks) != 1 {
		t.Error("task removed from cache without a confirmed delete")
	}
}

func TestConfirmedDeleteIssuesRequest(t *testing.T) {
	var deletedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletedPath = r.URL.Path
			json.NewEncoder(w).Encode(map[string]string{"message": "Deleted"})
			return
		}
		// Follow-up refresh.
		switch r.URL.Path {
		case "/api/tasks":
			json.NewEncoder(w).Encode([]api.Task{})
		case "/api/projects":
			json.NewEncoder(w).Encode([]api.Project{})
		}
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Tasks = []api.Task{{ID: 5, Title: "doomed", Status: api.StatusPending, UserID: 1}}

	h.requestDelete()
	cmd := h.handleConfirmDeleteKeys(keyMsg("y"))
	refreshCmd := runCmd(h, cmd)
	runCmd(h, refreshCmd)

	if deletedPath != "/api/tasks/5" {
		t.Errorf("expected DELETE /api/tasks/5, got %q", deletedPath)
	}
	if len(h.Tasks) != 0 {
		t.Errorf("expected empty cache after delete and refresh, got %+v", h.Tasks)
	}
	if h.StatusMsg != "Task deleted" {
		t.Errorf("unexpected status: %q", h.StatusMsg)
	}
}

func TestCreateTaskFlushesBufferedSubtasks(t *testing.T) {
	var mu sync.Mutex
	var created []api.Task

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/tasks" {
			var task api.Task
			json.NewDecoder(r.Body).Decode(&task)
			mu.Lock()
			if task.ParentID == nil {
				task.ID = 10
			} else {
				task.ID = 100 + len(created)
			}
			created = append(created, task)
			mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(task)
			return
		}
		// Follow-up refresh serves everything created so far.
		switch r.URL.Path {
		case "/api/tasks":
			mu.Lock()
			json.NewEncoder(w).Encode(created)
			mu.Unlock()
		case "/api/projects":
			json.NewEncoder(w).Encode([]api.Project{})
		}
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Form = state.NewCreateForm(nil)
	h.Form.Title.SetValue("Parent task")
	h.Form.SubtaskInput.SetValue("first step")
	h.Form.AddPendingSubtask()
	h.Form.SubtaskInput.SetValue("second step")
	h.Form.AddPendingSubtask()

	refreshCmd := runCmd(h, h.saveTask())
	runCmd(h, refreshCmd)

	if len(h.Tasks) != 3 {
		t.Fatalf("expected parent plus 2 subtasks in cache, got %d", len(h.Tasks))
	}
	var subtasks int
	for _, task := range h.Tasks {
		if task.ParentID == nil {
			continue
		}
		subtasks++
		if *task.ParentID != 10 {
			t.Errorf("subtask %q parented to %d, want 10", task.Title, *task.ParentID)
		}
	}
	if subtasks != 2 {
		t.Errorf("expected 2 subtasks in cache, got %d", subtasks)
	}
	if h.Form != nil {
		t.Error("form still open after successful save")
	}
	if h.StatusMsg != "Task saved" {
		t.Errorf("unexpected status: %q", h.StatusMsg)
	}
}

func TestFailedSaveKeepsFormOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "database unavailable"})
	}))
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Form = state.NewCreateForm(nil)
	h.Form.Title.SetValue("Unsaved work")

	runCmd(h, h.saveTask())

	if h.Form == nil {
		t.Fatal("form closed even though the save failed")
	}
	if h.Form.Title.Value() != "Unsaved work" {
		t.Error("form input lost on failed save")
	}
	if h.Err == nil {
		t.Error("expected error recorded on failed save")
	}
}

func TestSaveRequiresTitle(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	h := newTestHandler(t, srv)
	h.Form = state.NewCreateForm(nil)

	if cmd := h.saveTask(); cmd != nil {
		t.Error("expected no request for an empty title")
	}
	if h.StatusMsg != "Title is required" {
		t.Errorf("unexpected status: %q", h.StatusMsg)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
