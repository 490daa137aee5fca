package finding

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	findingdto "shieldtrack/internal/application/finding/dto"
	"shieldtrack/internal/application/finding/usecases"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/interfaces/http/handlers/testutil"
	"shieldtrack/internal/shared/errors"
)

type mockCreateFindingUC struct {
	result *findingdto.FindingDTO
	err    error
	gotCmd usecases.CreateFindingCommand
}

func (m *mockCreateFindingUC) Execute(_ context.Context, cmd usecases.CreateFindingCommand) (*findingdto.FindingDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetFindingUC struct {
	result *findingdto.FindingDTO
	err    error
}

func (m *mockGetFindingUC) Execute(_ context.Context, _ usecases.GetFindingQuery) (*findingdto.FindingDTO, error) {
	return m.result, m.err
}

type mockListFindingsUC struct {
	result   *usecases.ListFindingsResult
	err      error
	gotQuery usecases.ListFindingsQuery
}

func (m *mockListFindingsUC) Execute(_ context.Context, q usecases.ListFindingsQuery) (*usecases.ListFindingsResult, error) {
	m.gotQuery = q
	return m.result, m.err
}

type mockCloseFindingUC struct {
	result *findingdto.FindingDTO
	err    error
	gotCmd usecases.CloseFindingCommand
}

func (m *mockCloseFindingUC) Execute(_ context.Context, cmd usecases.CloseFindingCommand) (*findingdto.FindingDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type testDeps struct {
	createFindingUC  usecases.CreateFindingExecutor
	getFindingUC     usecases.GetFindingExecutor
	listFindingsUC   usecases.ListFindingsExecutor
	updateFindingUC  usecases.UpdateFindingExecutor
	confirmFindingUC usecases.ConfirmFindingExecutor
	closeFindingUC   usecases.CloseFindingExecutor
	deleteFindingUC  usecases.DeleteFindingExecutor
	renderHTMLUC     usecases.RenderFindingHTMLExecutor
}

func newTestFindingHandler(deps testDeps) *FindingHandler {
	return NewFindingHandler(
		deps.createFindingUC,
		deps.getFindingUC,
		deps.listFindingsUC,
		deps.updateFindingUC,
		deps.confirmFindingUC,
		deps.closeFindingUC,
		deps.deleteFindingUC,
		deps.renderHTMLUC,
	)
}

func analystPrincipal() access.Principal {
	clientID := uint(1)
	return access.NewPrincipal(7, access.RoleAnalyst, &clientID, []uint{10})
}

func TestFindingHandler_CreateFinding_Success(t *testing.T) {
	mockUC := &mockCreateFindingUC{
		result: &findingdto.FindingDTO{
			SID:      "fd_abc123def456",
			Title:    "SQL injection in search",
			Severity: "high",
			Status:   "new",
		},
	}
	handler := newTestFindingHandler(testDeps{createFindingUC: mockUC})

	reqBody := CreateFindingRequest{
		ProjectID:   "pr_abc123def456",
		Title:       "SQL injection in search",
		Description: "The search endpoint interpolates input.",
		Severity:    "high",
		Tags:        []string{"injection"},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/findings", reqBody)
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.CreateFinding(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	assert.Equal(t, "pr_abc123def456", mockUC.gotCmd.ProjectSID)
	assert.Equal(t, uint(7), mockUC.gotCmd.Principal.UserID())
}

func TestFindingHandler_CreateFinding_BindError(t *testing.T) {
	handler := newTestFindingHandler(testDeps{})

	// Missing title and severity
	reqBody := map[string]string{"project_id": "pr_abc123def456"}
	c, w := testutil.NewTestContext(http.MethodPost, "/findings", reqBody)
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.CreateFinding(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestFindingHandler_CreateFinding_InvalidSeverity(t *testing.T) {
	handler := newTestFindingHandler(testDeps{})

	reqBody := CreateFindingRequest{
		ProjectID: "pr_abc123def456",
		Title:     "Bad severity",
		Severity:  "catastrophic",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/findings", reqBody)
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.CreateFinding(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFindingHandler_GetFinding_Success(t *testing.T) {
	mockUC := &mockGetFindingUC{
		result: &findingdto.FindingDTO{SID: "fd_abc123def456", Title: "XSS in profile"},
	}
	handler := newTestFindingHandler(testDeps{getFindingUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/findings/fd_abc123def456", nil)
	testutil.SetURLParam(c, "id", "fd_abc123def456")
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.GetFinding(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFindingHandler_GetFinding_InvalidSID(t *testing.T) {
	handler := newTestFindingHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/findings/pr_wrongprefix", nil)
	testutil.SetURLParam(c, "id", "pr_wrongprefix")
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.GetFinding(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFindingHandler_GetFinding_NotFound(t *testing.T) {
	mockUC := &mockGetFindingUC{err: errors.NewNotFoundError("finding not found")}
	handler := newTestFindingHandler(testDeps{getFindingUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/findings/fd_abc123def456", nil)
	testutil.SetURLParam(c, "id", "fd_abc123def456")
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.GetFinding(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFindingHandler_ListFindings_PassesFilters(t *testing.T) {
	mockUC := &mockListFindingsUC{
		result: &usecases.ListFindingsResult{
			Findings: []*findingdto.FindingDTO{},
			Total:    0,
			Page:     1,
			PageSize: 10,
		},
	}
	handler := newTestFindingHandler(testDeps{listFindingsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/findings", nil)
	testutil.SetQueryParams(c, map[string]string{
		"severity": "high",
		"status":   "confirmed",
		"tag":      "injection",
	})
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.ListFindings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotQuery.Severity)
	assert.Equal(t, "high", *mockUC.gotQuery.Severity)
	require.NotNil(t, mockUC.gotQuery.Status)
	assert.Equal(t, "confirmed", *mockUC.gotQuery.Status)
	require.NotNil(t, mockUC.gotQuery.Tag)
	assert.Equal(t, "injection", *mockUC.gotQuery.Tag)
	assert.Nil(t, mockUC.gotQuery.ProjectSID)
}

func TestFindingHandler_CloseFinding_RequiresReason(t *testing.T) {
	handler := newTestFindingHandler(testDeps{})

	reqBody := map[string]string{}
	c, w := testutil.NewTestContext(http.MethodPost, "/findings/fd_abc123def456/close", reqBody)
	testutil.SetURLParam(c, "id", "fd_abc123def456")
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.CloseFinding(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFindingHandler_CloseFinding_Success(t *testing.T) {
	mockUC := &mockCloseFindingUC{
		result: &findingdto.FindingDTO{SID: "fd_abc123def456", Status: "closed"},
	}
	handler := newTestFindingHandler(testDeps{closeFindingUC: mockUC})

	reqBody := CloseFindingRequest{Reason: "fixed in release 2.4"}
	c, w := testutil.NewTestContext(http.MethodPost, "/findings/fd_abc123def456/close", reqBody)
	testutil.SetURLParam(c, "id", "fd_abc123def456")
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.CloseFinding(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fd_abc123def456", mockUC.gotCmd.SID)
	assert.Equal(t, "fixed in release 2.4", mockUC.gotCmd.Reason)
}

func TestFindingHandler_ForbiddenError_Maps403(t *testing.T) {
	mockUC := &mockGetFindingUC{err: errors.NewForbiddenError("operation not permitted")}
	handler := newTestFindingHandler(testDeps{getFindingUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/findings/fd_abc123def456", nil)
	testutil.SetURLParam(c, "id", "fd_abc123def456")
	testutil.SetPrincipalContext(c, analystPrincipal())

	handler.GetFinding(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
