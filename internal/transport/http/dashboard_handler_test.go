package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "pushpulse/internal/errors"
	"pushpulse/internal/series"
	"pushpulse/internal/services"
	"pushpulse/internal/shared/testutil"
)

// mockDashboard returns canned views, or err for every call when set.
type mockDashboard struct {
	err error
}

func (m *mockDashboard) Summary(ctx context.Context) (*services.Summary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &services.Summary{Title: "New Year's Resolution 2021", Total: 11500, Entries: 300}, nil
}

func (m *mockDashboard) Monthly(ctx context.Context) (*services.MonthlyView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &services.MonthlyView{Labels: []string{"January"}, Totals: []float64{900}}, nil
}

func (m *mockDashboard) Daily(ctx context.Context) (*services.DailyView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &services.DailyView{Labels: []int{1}, Totals: []float64{80}}, nil
}

func (m *mockDashboard) Cumulative(ctx context.Context) (*services.CumulativeView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &services.CumulativeView{AnnualGoal: 10000}, nil
}

func (m *mockDashboard) Distribution(ctx context.Context) (*services.DistributionView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &services.DistributionView{Cutoff: "2021-08-06"}, nil
}

func (m *mockDashboard) Heatmap(ctx context.Context) (*services.HeatmapView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &services.HeatmapView{Months: []string{"January"}}, nil
}

func (m *mockDashboard) TimeSeries(ctx context.Context) (series.TimeSeries, error) {
	if m.err != nil {
		return nil, m.err
	}
	return series.TimeSeries{{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), Count: 60}}, nil
}

func (m *mockDashboard) Narrative(ctx context.Context) (*services.Narrative, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &services.Narrative{Intro: "intro"}, nil
}

func newTestDashboardHandler(svc DashboardReader) *DashboardHandler {
	logger := testutil.DiscardLogger()
	return NewDashboardHandler(svc, logger, apierrors.NewErrorHandler(logger, false))
}

func TestDashboardHandlerRoutes(t *testing.T) {
	handler := newTestDashboardHandler(&mockDashboard{})
	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	paths := []string{
		"/summary",
		"/monthly",
		"/daily",
		"/cumulative",
		"/distribution",
		"/heatmap",
		"/timeseries",
		"/narrative",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			resp, err := http.Get(server.URL + p)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "success", body["status"])
			assert.NotNil(t, body["data"])
		})
	}
}

func TestDashboardHandlerNoData(t *testing.T) {
	handler := newTestDashboardHandler(&mockDashboard{err: services.ErrNoData})
	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + "/summary")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/problem+json")

	var problem map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
	assert.Equal(t, float64(http.StatusNotFound), problem["status"])
}

func TestDashboardHandlerInternalError(t *testing.T) {
	handler := newTestDashboardHandler(&mockDashboard{err: fmt.Errorf("disk on fire")})
	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + "/monthly")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestDashboardHandlerTimeSeriesCount(t *testing.T) {
	handler := newTestDashboardHandler(&mockDashboard{})
	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + "/timeseries")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["count"])
}
