package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plague-community-hub/internal/api"
	"github.com/plague-community-hub/internal/metrics"
	"github.com/plague-community-hub/internal/mocks"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/notify"
	"github.com/plague-community-hub/internal/repository"
	"github.com/plague-community-hub/internal/seed"
	"github.com/plague-community-hub/internal/service"
	"github.com/rs/zerolog"
)

type mockSet struct {
	directory *mocks.MockDirectoryService
	board     *mocks.MockBoardService
	session   *mocks.MockSessionService
	queue     *notify.Queue
}

func setupTestRouter() (*gin.Engine, *mockSet) {
	gin.SetMode(gin.TestMode)

	m := &mockSet{
		directory: mocks.NewMockDirectoryService(
			models.Member{ID: "1", Name: "Doctor Vile", Role: models.RoleElder, Skills: []models.Skill{{Name: "Solidity", Category: models.SkillDevelopment, Endorsements: 142}}},
		),
		board: mocks.NewMockBoardService(
			models.Project{ID: "L1", Title: "Frog Tank Weekly Digest", ElderID: "3", Status: models.StatusLive, Workgroup: models.WorkgroupMegaphone},
		),
		session: mocks.NewMockSessionService(),
		queue:   notify.NewQueue(time.Minute, zerolog.Nop()),
	}

	services := &service.Services{
		Directory: m.directory,
		Board:     m.board,
		Session:   m.session,
	}

	router := api.NewRouter(services, m.queue, zerolog.Nop())
	return router, m
}

func loggedIn(id string, role models.Role) models.UserSession {
	return models.UserSession{IsLoggedIn: true, Member: &models.Member{ID: id, Role: role}}
}

func doRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type commandBody struct {
	Data         json.RawMessage      `json:"data"`
	Error        string               `json:"error"`
	Notification *notify.Notification `json:"notification"`
}

func decodeCommand(t *testing.T, w *httptest.ResponseRecorder) commandBody {
	t.Helper()
	var body commandBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "plague-community-hub" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
	if w.Header().Get(api.RequestIDHeader) == "" {
		t.Error("Expected a request id header")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, m := setupTestRouter()
	m.directory.SummaryResult = metrics.Summary{MemberCount: 20, ContagionLevel: 72, Label: "Spreading"}

	w := doRequest(router, "GET", "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Hub metrics.Summary `json:"hub"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.Hub.ContagionLevel != 72 || response.Hub.Label != "Spreading" {
		t.Errorf("Unexpected hub summary: %+v", response.Hub)
	}
}

func TestListMembers_PassesCriteria(t *testing.T) {
	router, m := setupTestRouter()

	w := doRequest(router, "GET", "/v1/members?q=vile&skill=Development&workgroup=The+Lab+(Dev)", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if m.directory.LastCriteria.SearchQuery != "vile" || m.directory.LastCriteria.Skill != "Development" || m.directory.LastCriteria.Workgroup != models.WorkgroupLab {
		t.Errorf("Unexpected criteria: %+v", m.directory.LastCriteria)
	}

	if w := doRequest(router, "GET", "/v1/members?workgroup=Basement", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown workgroup, got %d", w.Code)
	}
}

func TestGetMember_IncludesStats(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(router, "GET", "/v1/members/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var response struct {
		ID    string              `json:"id"`
		Stats metrics.MemberStats `json:"stats"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.ID != "1" || response.Stats.TotalEndorsements != 142 || response.Stats.SkillCount != 1 {
		t.Errorf("Unexpected member view: %+v", response)
	}

	if w := doRequest(router, "GET", "/v1/members/404", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestListProjects_Validation(t *testing.T) {
	router, m := setupTestRouter()

	w := doRequest(router, "GET", "/v1/projects?status=Live&sort=votes&title=frog", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if m.board.LastQuery.Status != models.StatusLive || m.board.LastQuery.Title != "frog" {
		t.Errorf("Unexpected query: %+v", m.board.LastQuery)
	}

	for _, path := range []string{"/v1/projects?status=Archived", "/v1/projects?sort=hype"} {
		if w := doRequest(router, "GET", path, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestCommandErrors_MapToStatusAndToast(t *testing.T) {
	tests := []struct {
		name       string
		arrange    func(m *mockSet)
		method     string
		path       string
		body       any
		wantStatus int
		wantToast  string
	}{
		{
			name:       "upvote while logged out",
			arrange:    func(m *mockSet) { m.board.UpvoteErr = models.ErrUnauthenticated },
			method:     "POST",
			path:       "/v1/projects/L1/upvote",
			wantStatus: http.StatusUnauthorized,
			wantToast:  "Authenticate to cast your vote.",
		},
		{
			name:       "enlist while logged out",
			arrange:    func(m *mockSet) { m.board.EnlistErr = models.ErrUnauthenticated },
			method:     "POST",
			path:       "/v1/projects/L1/enlist",
			wantStatus: http.StatusUnauthorized,
			wantToast:  "Authenticate your wallet to enlist in missions.",
		},
		{
			name:       "enlist twice",
			arrange:    func(m *mockSet) { m.board.EnlistErr = models.ErrAlreadyEnlisted },
			method:     "POST",
			path:       "/v1/projects/L1/enlist",
			wantStatus: http.StatusConflict,
			wantToast:  "You are already enlisted for this operation.",
		},
		{
			name:       "enlist in ended operation",
			arrange:    func(m *mockSet) { m.board.EnlistErr = models.ErrOperationEnded },
			method:     "POST",
			path:       "/v1/projects/L1/enlist",
			wantStatus: http.StatusConflict,
			wantToast:  "This operation has already ended.",
		},
		{
			name:       "propose without rank",
			arrange:    func(m *mockSet) { m.board.SaveErr = models.ErrUnauthorized },
			method:     "POST",
			path:       "/v1/projects",
			body:       map[string]any{"title": "Swamp OS"},
			wantStatus: http.StatusForbidden,
			wantToast:  "Only Representatives and Elders may log proposals.",
		},
		{
			name:       "edit unknown project",
			arrange:    func(m *mockSet) { m.session.Session = loggedIn("1", models.RoleElder) },
			method:     "PUT",
			path:       "/v1/projects/P404",
			body:       map[string]any{"title": "x"},
			wantStatus: http.StatusNotFound,
			wantToast:  "project not found",
		},
		{
			name:       "edit unknown project while logged out",
			arrange:    func(m *mockSet) {},
			method:     "PUT",
			path:       "/v1/projects/P404",
			body:       map[string]any{"title": "x"},
			wantStatus: http.StatusUnauthorized,
			wantToast:  "Authenticate to modify operations.",
		},
		{
			name:       "duplicate profile skill",
			arrange:    func(m *mockSet) { m.directory.SaveProfileErr = models.ErrSkillExists },
			method:     "PUT",
			path:       "/v1/profile",
			body:       map[string]any{"skills": []any{}},
			wantStatus: http.StatusBadRequest,
			wantToast:  "SKILL_ALREADY_LOGGED.",
		},
		{
			name:       "profile while logged out",
			arrange:    func(m *mockSet) { m.directory.SaveProfileErr = models.ErrUnauthenticated },
			method:     "PUT",
			path:       "/v1/profile",
			body:       map[string]any{},
			wantStatus: http.StatusUnauthorized,
			wantToast:  "Login to access profile",
		},
		{
			name:       "endorse unknown skill",
			arrange:    func(m *mockSet) { m.directory.EndorseErr = models.ErrSkillNotFound },
			method:     "POST",
			path:       "/v1/members/1/skills/Rust/endorse",
			wantStatus: http.StatusNotFound,
			wantToast:  "skill not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter()
			tt.arrange(m)

			w := doRequest(router, tt.method, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			body := decodeCommand(t, w)
			if body.Error != tt.wantToast {
				t.Errorf("Expected error %q, got %q", tt.wantToast, body.Error)
			}
			if body.Notification == nil || body.Notification.Kind != notify.KindError {
				t.Errorf("Expected an error notification, got %+v", body.Notification)
			}
			if queued := m.queue.List(); len(queued) != 1 || queued[0].Message != tt.wantToast {
				t.Errorf("Unexpected queue contents: %+v", queued)
			}
		})
	}
}

func TestCreateProject_SanitizesForm(t *testing.T) {
	router, m := setupTestRouter()

	w := doRequest(router, "POST", "/v1/projects", map[string]any{
		"title":        `<script>alert(1)</script>Swamp <b>OS</b> & friends`,
		"description":  "&lt;script&gt;alert(1)&lt;/script&gt;Spread the &lt;b&gt;word&lt;/b&gt;",
		"tags":         "Dev, <i>Concept</i>",
		"requirements": "",
		"isOngoing":    true,
		"endDate":      "2024-12-31",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	if len(m.board.SavedPatches) != 1 {
		t.Fatalf("Expected 1 saved patch, got %d", len(m.board.SavedPatches))
	}
	patch := m.board.SavedPatches[0]
	if patch.ID != nil {
		t.Error("create must not carry an id")
	}
	if *patch.Title != "Swamp OS & friends" {
		t.Errorf("Unexpected sanitized title %q", *patch.Title)
	}
	if *patch.Description != "Spread the word" {
		t.Errorf("Unexpected sanitized description %q", *patch.Description)
	}
	if len(patch.Tags) != 2 || patch.Tags[1] != "Concept" {
		t.Errorf("Unexpected tags %v", patch.Tags)
	}
	if patch.EndDate == nil || *patch.EndDate != "" {
		t.Error("ongoing proposal kept its end date")
	}

	body := decodeCommand(t, w)
	if body.Notification == nil || body.Notification.Message != "PROPOSAL_LOGGED. MISSION_AWAITING_REVIEWS." {
		t.Errorf("Unexpected notification %+v", body.Notification)
	}
}

func TestUpdateProject_KeepsAbsentFields(t *testing.T) {
	router, m := setupTestRouter()
	m.session.Session = loggedIn("3", models.RoleRepresentative)

	w := doRequest(router, "PUT", "/v1/projects/L1", map[string]any{"description": "Now with newsletters."})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	patch := m.board.SavedPatches[0]
	if patch.ID == nil || *patch.ID != "L1" {
		t.Fatalf("Expected patch for L1, got %+v", patch.ID)
	}
	if *patch.Title != "Frog Tank Weekly Digest" || *patch.Description != "Now with newsletters." {
		t.Errorf("Unexpected patch title=%q description=%q", *patch.Title, *patch.Description)
	}
}

func TestNotifications_ListAndDismiss(t *testing.T) {
	router, m := setupTestRouter()
	m.session.LoginAs = &models.Member{ID: "1", Name: "Doctor Vile", Role: models.RoleElder}

	w := doRequest(router, "POST", "/v1/session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	login := decodeCommand(t, w)

	w = doRequest(router, "GET", "/v1/notifications", nil)
	var listed struct {
		Notifications []notify.Notification `json:"notifications"`
	}
	json.Unmarshal(w.Body.Bytes(), &listed)
	if len(listed.Notifications) != 1 || listed.Notifications[0].ID != login.Notification.ID {
		t.Fatalf("Unexpected notifications %+v", listed.Notifications)
	}

	if w := doRequest(router, "DELETE", "/v1/notifications/"+login.Notification.ID, nil); w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	if w := doRequest(router, "DELETE", "/v1/notifications/"+login.Notification.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second dismiss, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(router, "OPTIONS", "/v1/projects", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Expected CORS headers")
	}
}

// TestHubFlow drives the real services over the built-in dataset
func TestHubFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ds, err := seed.Default()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	services := service.NewServices(repository.New(ds.Members, ds.Projects), nil, zerolog.Nop())
	router := api.NewRouter(services, notify.NewQueue(time.Minute, zerolog.Nop()), zerolog.Nop())

	if w := doRequest(router, "POST", "/v1/projects/L1/upvote", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous upvote: expected 401, got %d", w.Code)
	}

	w := doRequest(router, "POST", "/v1/session", nil)
	var login struct {
		Data models.UserSession `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &login)
	if login.Data.Member == nil || login.Data.Member.ID != "1" {
		t.Fatalf("Expected login as member 1, got %s", w.Body.String())
	}

	// L1 already has member 1's vote; toggling retracts it
	w = doRequest(router, "POST", "/v1/projects/L1/upvote", nil)
	body := decodeCommand(t, w)
	if w.Code != http.StatusOK || body.Notification.Message != "VOTE_RETRACTED." {
		t.Errorf("upvote: status %d notification %+v", w.Code, body.Notification)
	}

	if w := doRequest(router, "POST", "/v1/projects/L1/enlist", nil); w.Code != http.StatusOK {
		t.Errorf("enlist: expected 200, got %d", w.Code)
	}
	if w := doRequest(router, "POST", "/v1/projects/L1/enlist", nil); w.Code != http.StatusConflict {
		t.Errorf("second enlist: expected 409, got %d", w.Code)
	}

	w = doRequest(router, "POST", "/v1/projects", map[string]any{"title": "Test"})
	var created struct {
		Data models.Project `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)
	if w.Code != http.StatusCreated || created.Data.ID != "P11" || created.Data.ElderID != "1" {
		t.Errorf("create: status %d body %s", w.Code, w.Body.String())
	}

	// L1 belongs to member 3
	if w := doRequest(router, "PUT", "/v1/projects/L1", map[string]any{"title": "Hijacked"}); w.Code != http.StatusForbidden {
		t.Errorf("foreign edit: expected 403, got %d", w.Code)
	}

	w = doRequest(router, "GET", "/v1/projects/L1/enlisted", nil)
	var roster struct {
		Count int `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &roster)
	if roster.Count != 4 {
		t.Errorf("enlisted roster: expected 4, got %d", roster.Count)
	}
}
