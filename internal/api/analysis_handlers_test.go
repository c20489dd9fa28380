package api_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/athlyze/athlyze/internal/errors"
	"github.com/athlyze/athlyze/internal/models"
	"github.com/athlyze/athlyze/internal/profile"
	"github.com/athlyze/athlyze/internal/services"
)

func analysisPayload(t *testing.T, sport string, frames int) *bytes.Reader {
	t.Helper()
	seq := testSequence(frames)
	buf, err := json.Marshal(services.CreateAnalysisRequest{Sport: sport, Sequence: &seq})
	require.NoError(t, err)
	return bytes.NewReader(buf)
}

func TestCreateAnalysis_Accepted(t *testing.T) {
	h, m := newTestServer(t)

	m.repo.On("Insert", mock.Anything, mock.AnythingOfType("models.Analysis")).Return(nil)
	m.queue.On("TrySubmit", mock.AnythingOfType("*worker.AnalyzeJob")).Return(true)

	rec := doRequest(t, h, http.MethodPost, "/api/analyses", analysisPayload(t, profile.SportLongJump, 4))

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var a models.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, models.AnalysisStatusPending, a.Status)
	assert.Equal(t, profile.SportLongJump, a.Sport)
	assert.Equal(t, 4, a.FrameCount)
	m.repo.AssertExpectations(t)
	m.queue.AssertExpectations(t)
}

func TestCreateAnalysis_UnsupportedSport(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/analyses", analysisPayload(t, "hurdles", 2))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, errors.ErrCodeUnsupportedSport, decodeError(t, rec).Code)
}

func TestCreateAnalysis_MalformedBody(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/analyses", strings.NewReader("{not json"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeBadRequest, decodeError(t, rec).Code)
}

func TestCreateAnalysis_MalformedSequence(t *testing.T) {
	h, _ := newTestServer(t)
	body := strings.NewReader(`{"sport":"discus","sequence":{"coord_space":"pixel","frames":[]}}`)

	rec := doRequest(t, h, http.MethodPost, "/api/analyses", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeMalformedSequence, decodeError(t, rec).Code)
}

func TestCreateAnalysis_QueueFull(t *testing.T) {
	h, m := newTestServer(t)

	m.repo.On("Insert", mock.Anything, mock.AnythingOfType("models.Analysis")).Return(nil)
	m.queue.On("TrySubmit", mock.AnythingOfType("*worker.AnalyzeJob")).Return(false)
	m.repo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	rec := doRequest(t, h, http.MethodPost, "/api/analyses", analysisPayload(t, profile.SportShotPut, 3))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, errors.ErrCodeQueueFull, decodeError(t, rec).Code)
	m.repo.AssertExpectations(t)
}

func TestGetAnalysis_ReturnsReport(t *testing.T) {
	h, m := newTestServer(t)
	score := 72.5
	report := &models.AnalysisReport{
		Analysis: models.Analysis{
			ID:     "a1",
			Sport:  profile.SportLongJump,
			Status: models.AnalysisStatusCompleted,
			Score:  &score,
		},
		Phases: []models.PhaseResult{{Name: "approach", StartFrame: 0, EndFrame: 30}},
	}

	m.repo.On("GetReport", mock.Anything, "a1").Return(report, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/analyses/a1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "a1", got.ID)
	require.NotNil(t, got.Score)
	assert.Equal(t, 72.5, *got.Score)
	require.Len(t, got.Phases, 1)
	assert.Equal(t, "approach", got.Phases[0].Name)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	h, m := newTestServer(t)

	m.repo.On("GetReport", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	rec := doRequest(t, h, http.MethodGet, "/api/analyses/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errors.ErrCodeNotFound, decodeError(t, rec).Code)
}

func TestListAnalyses_PassesFilters(t *testing.T) {
	h, m := newTestServer(t)

	m.repo.On("List", mock.Anything, mock.MatchedBy(func(f models.AnalysisFilter) bool {
		return f.Sport == profile.SportDiscus &&
			f.Status == models.AnalysisStatusCompleted &&
			f.Limit == 10 && f.Offset == 5
	})).Return([]models.Analysis{{ID: "a9"}}, nil)
	m.repo.On("Count", mock.Anything, mock.AnythingOfType("models.AnalysisFilter")).Return(1, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/analyses?sport=discus&status=completed&limit=10&offset=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var page services.AnalysisPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Analyses, 1)
	assert.Equal(t, "a9", page.Analyses[0].ID)
}

func TestListAnalyses_BadLimit(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/analyses?limit=many", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeBadRequest, decodeError(t, rec).Code)
}

func TestListAnalyses_UnknownStatus(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/analyses?status=done", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeValidation, decodeError(t, rec).Code)
}

func TestDeleteAnalysis(t *testing.T) {
	h, m := newTestServer(t)

	m.repo.On("Delete", mock.Anything, "a1").Return(nil)

	rec := doRequest(t, h, http.MethodDelete, "/api/analyses/a1", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteAnalysis_NotFound(t *testing.T) {
	h, m := newTestServer(t)

	m.repo.On("Delete", mock.Anything, "missing").Return(sql.ErrNoRows)

	rec := doRequest(t, h, http.MethodDelete, "/api/analyses/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errors.ErrCodeNotFound, decodeError(t, rec).Code)
}
