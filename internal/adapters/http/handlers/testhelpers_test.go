package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	adapthttp "github.com/jsamuelsen11/pipeline-board/internal/adapters/http"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/mocks"
)

const testBoardID = "b-1"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// api routes requests through the production router so path parameters
// resolve the way they do in the server.
type api struct {
	boards *mocks.MockBoardService
	health *mocks.MockHealthRegistry
	router http.Handler
}

func newAPI(t *testing.T) *api {
	t.Helper()
	a := &api{
		boards: mocks.NewMockBoardService(t),
		health: mocks.NewMockHealthRegistry(t),
	}
	a.router = adapthttp.NewRouter(
		handlers.NewBoardHandler(a.boards, "X-Org"),
		handlers.NewHealthHandler(a.health),
	)
	return a
}

func (a *api) do(method, target, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func sampleLead() lead.Lead {
	owner := "7"
	amount := decimal.NewFromInt(500)
	return lead.Lead{ID: "42", Stage: lead.StageLead, OwnerID: &owner, Amount: &amount}
}

func loadedView() board.View {
	cols := board.EmptyColumns()
	l := sampleLead()
	cols[0].Leads = []lead.Lead{l}
	cols[0].Total = *l.Amount
	return board.View{
		ID:       testBoardID,
		Status:   board.StatusLoaded,
		Caller:   caller.Caller{Role: "SALES", ProfileID: "7"},
		Columns:  cols,
		LoadedAt: testTime,
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding %s: %v", rec.Body.String(), err)
	}
	return v
}
