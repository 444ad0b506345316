package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/ce-fello/relief-hub/src/internal/relief"
	"github.com/ce-fello/relief-hub/src/internal/service"
	"github.com/ce-fello/relief-hub/src/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type HandlerSuite struct {
	suite.Suite
	kv     *store.MemoryStore
	svc    *service.Service
	server *httptest.Server
}

func (s *HandlerSuite) SetupTest() {
	logger := zap.NewNop()
	s.kv = store.NewMemoryStore()
	svc := service.NewService(s.kv, logger)
	svc.Load(context.Background())
	s.svc = svc

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggerMiddleware(logger))
	r.Use(Recoverer(logger))
	RegisterRoutes(r, NewHandler(svc, logger, time.Second))
	s.server = httptest.NewServer(r)
}

func (s *HandlerSuite) TearDownTest() {
	s.server.Close()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, path string, body any) (int, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	out := map[string]any{}
	if resp.StatusCode != http.StatusNoContent {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func (s *HandlerSuite) login(email string, role model.Role) map[string]any {
	code, body := s.do(http.MethodPost, "/session/login", map[string]any{"email": email, "role": role})
	s.Require().Equal(http.StatusOK, code)
	return body["user"].(map[string]any)
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func (s *HandlerSuite) TestHealth() {
	code, body := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, code)
	s.Equal("ok", body["status"])
}

func (s *HandlerSuite) TestAnonymousSeesSeed() {
	code, body := s.do(http.MethodGet, "/requests", nil)
	s.Equal(http.StatusOK, code)
	s.Len(body["requests"], 3)

	code, body = s.do(http.MethodGet, "/requests?category=medical", nil)
	s.Equal(http.StatusOK, code)
	s.Len(body["requests"], 1)

	code, body = s.do(http.MethodGet, "/session", nil)
	s.Equal(http.StatusOK, code)
	s.Nil(body["user"])
}

func (s *HandlerSuite) TestSubmitApproveFlow() {
	s.login("sarah@example.com", model.RoleRequester)

	code, body := s.do(http.MethodPost, "/requests", map[string]any{
		"title":       "Need blankets",
		"description": "Family of four",
		"location":    "Shelter B",
		"category":    "supplies",
		"urgency":     "high",
		"isPrivate":   false,
	})
	s.Require().Equal(http.StatusCreated, code)
	created := body["request"].(map[string]any)
	id := created["id"].(string)
	s.Equal("pending", created["status"])
	s.Equal("sarah", created["author"])

	code, body = s.do(http.MethodPost, "/requests/"+id+"/approve", nil)
	s.Equal(http.StatusForbidden, code)
	s.Equal("FORBIDDEN", errorCode(body))

	code, _ = s.do(http.MethodPost, "/session/logout", nil)
	s.Equal(http.StatusNoContent, code)

	code, _ = s.do(http.MethodGet, "/requests/"+id, nil)
	s.Equal(http.StatusNotFound, code)

	s.login("admin@example.com", model.RoleAdmin)
	code, body = s.do(http.MethodPost, "/requests/"+id+"/approve", nil)
	s.Require().Equal(http.StatusOK, code)
	s.Equal(true, body["applied"])
	s.Equal("approved", body["request"].(map[string]any)["status"])

	code, body = s.do(http.MethodPost, "/requests/"+id+"/reject", nil)
	s.Equal(http.StatusOK, code)
	s.Equal(false, body["applied"])

	raw, ok, err := s.kv.Load(context.Background(), store.KeyRequests)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Contains(raw, "Need blankets")
}

func (s *HandlerSuite) TestSubmitRejectsUnknownCategory() {
	s.login("sarah@example.com", model.RoleRequester)

	code, body := s.do(http.MethodPost, "/requests", map[string]any{
		"title": "x", "description": "y", "location": "z", "category": "weather", "urgency": "low",
	})
	s.Equal(http.StatusBadRequest, code)
	s.Equal("VALIDATION_ERROR", errorCode(body))
}

func (s *HandlerSuite) TestOfferAndComment() {
	s.login("david@example.com", model.RoleVolunteer)

	code, body := s.do(http.MethodPost, "/requests/1/offers", map[string]any{"message": "I have a truck", "contact": "555-0100"})
	s.Require().Equal(http.StatusOK, code)
	offers := body["request"].(map[string]any)["offers"].([]any)
	s.Equal("david", offers[len(offers)-1].(map[string]any)["author"])

	code, body = s.do(http.MethodPost, "/requests/1/comments", map[string]any{"message": "  "})
	s.Equal(http.StatusBadRequest, code)
	s.Equal("VALIDATION_ERROR", errorCode(body))

	code, body = s.do(http.MethodPost, "/requests/nope/comments", map[string]any{"message": "hello"})
	s.Equal(http.StatusOK, code)
	s.Equal(false, body["applied"])
}

func (s *HandlerSuite) TestAssignAndUpdateStatus() {
	s.login("admin@example.com", model.RoleAdmin)

	code, body := s.do(http.MethodPost, "/requests/1/volunteers", map[string]any{"volunteerId": "vol4", "message": "Please help"})
	s.Require().Equal(http.StatusOK, code)
	s.Equal(true, body["applied"])

	code, body = s.do(http.MethodPost, "/requests/1/volunteers/vol4/status", map[string]any{"status": "finished"})
	s.Equal(http.StatusBadRequest, code)
	s.Equal("VALIDATION_ERROR", errorCode(body))

	code, body = s.do(http.MethodPost, "/requests/1/volunteers/vol4/status", map[string]any{"status": "completed"})
	s.Require().Equal(http.StatusOK, code)
	s.Equal(true, body["applied"])

	code, body = s.do(http.MethodGet, "/volunteers?skill=all&search=", nil)
	s.Require().Equal(http.StatusOK, code)
	for _, v := range body["volunteers"].([]any) {
		vol := v.(map[string]any)
		if vol["id"] == "vol4" {
			s.Equal("busy", vol["status"])
		}
	}
}

func (s *HandlerSuite) TestAssignWithEveryoneBusy() {
	ctx := context.Background()
	vols := relief.SeedVolunteers()
	for i := range vols {
		vols[i].Status = model.VolunteerBusy
	}
	raw, err := json.Marshal(vols)
	s.Require().NoError(err)
	s.Require().NoError(s.kv.Save(ctx, store.KeyVolunteers, string(raw)))
	s.svc.Load(ctx)

	s.login("admin@example.com", model.RoleAdmin)
	code, body := s.do(http.MethodPost, "/requests/2/volunteers", map[string]any{"volunteerId": "vol4", "message": "Please help"})
	s.Equal(http.StatusConflict, code)
	s.Equal("NO_CANDIDATE", errorCode(body))

	code, body = s.do(http.MethodGet, "/requests/2", nil)
	s.Require().Equal(http.StatusOK, code)
	s.Len(body["request"].(map[string]any)["volunteers"], 1)
}

func (s *HandlerSuite) TestAssignBusyVolunteer() {
	s.login("admin@example.com", model.RoleAdmin)

	code, body := s.do(http.MethodPost, "/requests/2/volunteers", map[string]any{"volunteerId": "vol1", "message": "Please help"})
	s.Equal(http.StatusConflict, code)
	s.Equal("NO_CANDIDATE", errorCode(body))

	code, body = s.do(http.MethodPost, "/requests/2/volunteers", map[string]any{"volunteerId": "vol4"})
	s.Equal(http.StatusBadRequest, code)
	s.Equal("VALIDATION_ERROR", errorCode(body))
}

func (s *HandlerSuite) TestVolunteerDirectoryForbiddenForRequester() {
	s.login("sarah@example.com", model.RoleRequester)

	code, body := s.do(http.MethodGet, "/volunteers", nil)
	s.Equal(http.StatusForbidden, code)
	s.Equal("FORBIDDEN", errorCode(body))
}

func (s *HandlerSuite) TestRegisterVolunteer() {
	s.login("admin@example.com", model.RoleAdmin)

	code, body := s.do(http.MethodPost, "/volunteers", map[string]any{
		"name": "Nina", "email": "nina@example.com", "phone": "555-0123", "skills": []string{"Cooking"},
	})
	s.Require().Equal(http.StatusCreated, code)
	v := body["volunteer"].(map[string]any)
	s.Equal("available", v["status"])
	s.Equal("Flexible", v["availability"])

	code, _ = s.do(http.MethodPost, "/volunteers", map[string]any{"name": "Nina", "email": "not-an-email", "phone": "1"})
	s.Equal(http.StatusBadRequest, code)
}

func (s *HandlerSuite) TestDashboard() {
	code, _ := s.do(http.MethodGet, "/dashboard", nil)
	s.Equal(http.StatusForbidden, code)

	s.login("admin@example.com", model.RoleAdmin)
	code, body := s.do(http.MethodGet, "/dashboard", nil)
	s.Require().Equal(http.StatusOK, code)
	stats := body["admin"].(map[string]any)["stats"].(map[string]any)
	s.EqualValues(3, stats["approved"])
	s.EqualValues(2, stats["availableVolunteers"])
}

func (s *HandlerSuite) TestStaticContent() {
	code, body := s.do(http.MethodGet, "/categories", nil)
	s.Equal(http.StatusOK, code)
	s.Len(body["categories"], len(model.Categories))

	code, body = s.do(http.MethodGet, "/resources", nil)
	s.Equal(http.StatusOK, code)
	s.NotEmpty(body["emergency"])
	s.NotEmpty(body["preparedness"])
}

func (s *HandlerSuite) TestRequestIDEchoed() {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+"/health", nil)
	s.Require().NoError(err)
	req.Header.Set("X-Request-Id", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal("abc-123", resp.Header.Get("X-Request-Id"))
}
