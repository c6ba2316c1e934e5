package managershandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"evalx/internal/domain/manager"
)

type fakeManagerStore struct {
	scores        []manager.TeamScore
	skills        []manager.ChartPoint
	radar         []manager.ChartPoint
	team          []manager.TeamMember
	ratings       []manager.TopEmployee
	lastManagerID int
	lastEval      manager.NewEvaluation
}

func (f *fakeManagerStore) TeamScores(ctx context.Context, managerID int) ([]manager.TeamScore, error) {
	return f.scores, nil
}

func (f *fakeManagerStore) SkillDistribution(ctx context.Context, managerID int) ([]manager.ChartPoint, error) {
	return f.skills, nil
}

func (f *fakeManagerStore) RadarMetrics(ctx context.Context, managerID int) ([]manager.ChartPoint, error) {
	return f.radar, nil
}

func (f *fakeManagerStore) ListTeam(ctx context.Context, managerID int) ([]manager.TeamMember, error) {
	return f.team, nil
}

func (f *fakeManagerStore) TeamRatings(ctx context.Context, managerID int) ([]manager.TopEmployee, error) {
	return f.ratings, nil
}

func (f *fakeManagerStore) CreateEvaluation(ctx context.Context, managerID int, eval manager.NewEvaluation) (int, error) {
	f.lastManagerID = managerID
	f.lastEval = eval
	return 21, nil
}

func newTestRouter(store manager.StoreAPI) chi.Router {
	r := chi.NewRouter()
	NewHandler(manager.NewService(store)).RegisterRoutes(r)
	return r
}

func TestChartsEmptySeriesRenderAsArrays(t *testing.T) {
	router := newTestRouter(&fakeManagerStore{
		scores: []manager.TeamScore{{Name: "Ava", Score: 90}},
	})

	req := httptest.NewRequest(http.MethodGet, "/managers/7/charts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"skillDistribution":[]`) || !strings.Contains(body, `"radarMetrics":[]`) {
		t.Fatalf("empty series not rendered as arrays: %s", body)
	}
}

func TestChartsInvalidManagerID(t *testing.T) {
	router := newTestRouter(&fakeManagerStore{})

	req := httptest.NewRequest(http.MethodGet, "/managers/xyz/charts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTopEmployees(t *testing.T) {
	router := newTestRouter(&fakeManagerStore{
		ratings: []manager.TopEmployee{
			{Name: "Ava", Score: 70},
			{Name: "Ben", Productivity: 90, Teamwork: 90, Creativity: 90},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/managers/7/top-employees", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var envelope struct {
		Data []manager.TopEmployee `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 || envelope.Data[0].Name != "Ben" || envelope.Data[0].Score != 90 {
		t.Fatalf("data = %+v", envelope.Data)
	}
}

func TestCreateEvaluationValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing employee", body: `{"category":"quarterly"}`},
		{name: "missing category", body: `{"employeeId":3}`},
		{name: "score out of range", body: `{"employeeId":3,"category":"quarterly","productivity":140}`},
		{name: "negative score", body: `{"employeeId":3,"category":"quarterly","teamwork":-1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeManagerStore{}
			router := newTestRouter(store)

			req := httptest.NewRequest(http.MethodPost, "/managers/7/evaluations", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			if store.lastManagerID != 0 {
				t.Fatalf("rejected evaluation reached the store")
			}
		})
	}
}

func TestCreateEvaluation(t *testing.T) {
	store := &fakeManagerStore{}
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/managers/7/evaluations", strings.NewReader(
		`{"employeeId":3,"category":"quarterly","productivity":88,"teamwork":92,"notes":"steady quarter"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if store.lastManagerID != 7 || store.lastEval.EmployeeID != 3 {
		t.Fatalf("store saw managerID=%d eval=%+v", store.lastManagerID, store.lastEval)
	}
	if store.lastEval.Productivity == nil || *store.lastEval.Productivity != 88 {
		t.Fatalf("productivity = %v", store.lastEval.Productivity)
	}
	if store.lastEval.Accuracy != nil {
		t.Fatalf("accuracy should stay unset")
	}
}
