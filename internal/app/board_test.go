package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	domboard "github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/mocks"
)

var (
	testCreds   = caller.Credentials{Token: "tok", OrgID: "org-1"}
	adminCaller = caller.Caller{Role: caller.RoleAdmin, ProfileID: "a1"}
	salesCaller = caller.Caller{Role: "SALES", ProfileID: "u1"}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testBoardConfig() config.BoardConfig {
	return config.BoardConfig{
		LoadStrategy:    config.LoadStrategySingle,
		LoadConcurrency: 6,
		SyncTimeout:     time.Second,
		SessionTTL:      time.Hour,
		MaxSessions:     10,
	}
}

func newLead(id string, stage lead.Stage, owner string) lead.Lead {
	l := lead.Lead{ID: id, Stage: stage}
	if owner != "" {
		l.OwnerID = &owner
	}
	return l
}

func leadIDs(leads []lead.Lead) []string {
	out := make([]string, len(leads))
	for i, l := range leads {
		out[i] = l.ID
	}
	return out
}

func columnIDs(v domboard.View, stage lead.Stage) []string {
	return leadIDs(v.Columns[stage.Position()].Leads)
}

// loadedBoard returns a board loaded with leads through the single-request
// strategy, as seen by c.
func loadedBoard(t *testing.T, c caller.Caller, leads ...lead.Lead) (*Board, *mocks.MockLeadClient) {
	t.Helper()

	client := mocks.NewMockLeadClient(t)
	var filter lead.Filter
	if !c.IsAdmin() {
		filter.AssignedTo = c.ProfileID
	}
	client.EXPECT().ListLeads(mock.Anything, testCreds, filter).
		Return(lead.Listing{Leads: leads}, nil).Once()

	b := NewBoard("b1", client, testBoardConfig(), nil, discardLogger())
	b.Identify(c, testCreds)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return b, client
}

// --- Load ---

func TestBoard_Load_PerStage(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockLeadClient(t)
	for _, st := range lead.Stages() {
		listing := lead.Listing{
			Leads:     []lead.Lead{newLead("id-"+st.String(), st, "")},
			Reference: map[string]json.RawMessage{lead.RefTags: json.RawMessage(`["` + st.String() + `"]`)},
		}
		client.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{Stage: st}).Return(listing, nil).Once()
	}

	cfg := testBoardConfig()
	cfg.LoadStrategy = config.LoadStrategyPerStage
	b := NewBoard("b1", client, cfg, nil, discardLogger())
	b.Identify(adminCaller, testCreds)

	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	v := b.View()
	if v.Status != domboard.StatusLoaded {
		t.Fatalf("Status = %s, want loaded", v.Status)
	}
	for _, st := range lead.Stages() {
		if got := columnIDs(v, st); !slices.Equal(got, []string{"id-" + st.String()}) {
			t.Errorf("column %s = %v, want [id-%s]", st, got, st)
		}
	}
	if got := string(b.Reference()[lead.RefTags]); got != `["Lead"]` {
		t.Errorf("Reference[tags] = %s, want the first stage's copy", got)
	}
}

func TestBoard_Load_NonAdminFiltersByOwner(t *testing.T) {
	t.Parallel()

	// The API should only return u1's leads; the stray one must not land in
	// the store either way.
	b, _ := loadedBoard(t, salesCaller,
		newLead("mine", lead.StageLead, "u1"),
		newLead("stray", lead.StageLead, "u2"),
	)

	if got := columnIDs(b.View(), lead.StageLead); !slices.Equal(got, []string{"mine"}) {
		t.Errorf("Lead column = %v, want [mine]", got)
	}
	if b.store.Len() != 1 {
		t.Errorf("store holds %d leads, want 1", b.store.Len())
	}
}

func TestBoard_Load_WithoutCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		caller caller.Caller
		creds  caller.Credentials
	}{
		{name: "no credentials", caller: adminCaller, creds: caller.Credentials{}},
		{name: "no org", caller: adminCaller, creds: caller.Credentials{Token: "tok"}},
		{name: "unresolved caller", caller: caller.Caller{}, creds: testCreds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: any call fails the test.
			client := mocks.NewMockLeadClient(t)
			b := NewBoard("b1", client, testBoardConfig(), nil, discardLogger())
			b.Identify(tt.caller, tt.creds)

			err := b.Load(context.Background())
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Errorf("Load() error = %v, want ErrUnauthenticated", err)
			}
			v := b.View()
			if v.Status != domboard.StatusNotLoaded {
				t.Errorf("Status = %s, want not_loaded", v.Status)
			}
			for _, col := range v.Columns {
				if len(col.Leads) != 0 {
					t.Errorf("column %s has %d leads, want 0", col.Stage, len(col.Leads))
				}
			}
		})
	}
}

func TestBoard_Load_FailureKeepsLastGoodStore(t *testing.T) {
	t.Parallel()

	b, client := loadedBoard(t, adminCaller, newLead("r1", lead.StageWon, ""))

	client.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).
		Return(lead.Listing{}, domain.ErrUnavailable).Once()

	if err := b.Load(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Load() error = %v, want ErrUnavailable", err)
	}

	v := b.View()
	if v.Status != domboard.StatusFailed {
		t.Errorf("Status = %s, want failed", v.Status)
	}
	if n := len(v.Columns[lead.StageWon.Position()].Leads); n != 0 {
		t.Errorf("failed board shows %d leads, want 0", n)
	}
	if _, ok := b.store.Get("r1"); !ok {
		t.Error("failed load discarded the last good store")
	}

	notices := b.TakeNotices()
	if len(notices) != 1 || notices[0].Kind != domboard.NoticeLoadFailed {
		t.Fatalf("notices = %+v, want one load_failed", notices)
	}
	if again := b.TakeNotices(); len(again) != 0 {
		t.Errorf("second TakeNotices() = %+v, want empty", again)
	}
}

func TestBoard_Load_PerStagePartialFailure(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockLeadClient(t)
	client.EXPECT().ListLeads(mock.Anything, testCreds, mock.MatchedBy(func(f lead.Filter) bool {
		return f.Stage != lead.StageWon
	})).Return(lead.Listing{Leads: []lead.Lead{newLead("x", lead.StageLead, "")}}, nil).Maybe()
	client.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{Stage: lead.StageWon}).
		Return(lead.Listing{}, domain.ErrUnavailable).Once()

	cfg := testBoardConfig()
	cfg.LoadStrategy = config.LoadStrategyPerStage
	b := NewBoard("b1", client, cfg, nil, discardLogger())
	b.Identify(adminCaller, testCreds)

	if err := b.Load(context.Background()); err == nil {
		t.Fatal("Load() error = nil, want failure")
	}
	if b.store.Len() != 0 {
		t.Errorf("partial load installed %d leads, want 0", b.store.Len())
	}
}

// --- Drop ---

func TestBoard_Drop_CommitsAfterOptimisticApply(t *testing.T) {
	t.Parallel()

	b, client := loadedBoard(t, adminCaller,
		newLead("r1", lead.StageLead, ""),
		newLead("r2", lead.StageLead, ""),
	)

	release := make(chan struct{})
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "r1", lead.StageMeeting).
		RunAndReturn(func(context.Context, caller.Credentials, string, lead.Stage) error {
			<-release
			return nil
		}).Once()

	res, err := b.Drop(context.Background(), domboard.MoveIntent{LeadID: "r1", From: lead.StageLead, To: lead.StageMeeting})
	if err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	if res.Outcome != domboard.OutcomeAccepted || res.Move == nil {
		t.Fatalf("Drop() = %+v, want accepted with a move", res)
	}
	if res.Move.Phase != domboard.PhaseReconciling {
		t.Errorf("Phase = %s, want reconciling", res.Move.Phase)
	}

	// Visible before the lead API answers.
	v := b.View()
	if got := columnIDs(v, lead.StageMeeting); !slices.Equal(got, []string{"r1"}) {
		t.Errorf("Meeting column = %v, want [r1]", got)
	}
	if v.Pending != 1 {
		t.Errorf("Pending = %d, want 1", v.Pending)
	}

	close(release)
	b.Wait()

	m, err := b.Move(res.Move.ID)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if m.Phase != domboard.PhaseCommitted {
		t.Errorf("Phase = %s, want committed", m.Phase)
	}
	if got := columnIDs(b.View(), lead.StageMeeting); !slices.Equal(got, []string{"r1"}) {
		t.Errorf("Meeting column after commit = %v, want [r1]", got)
	}
	if n := len(b.TakeNotices()); n != 0 {
		t.Errorf("committed move produced %d notices, want 0", n)
	}
}

func TestBoard_Drop_RollsBackOnFailure(t *testing.T) {
	t.Parallel()

	b, client := loadedBoard(t, adminCaller,
		newLead("r0", lead.StageLead, ""),
		newLead("r1", lead.StageLead, ""),
		newLead("r2", lead.StageLead, ""),
	)
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "r1", lead.StageWon).
		Return(domain.ErrUnavailable).Once()

	res, err := b.Drop(context.Background(), domboard.MoveIntent{LeadID: "r1", To: lead.StageWon})
	if err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	b.Wait()

	if got := columnIDs(b.View(), lead.StageLead); !slices.Equal(got, []string{"r0", "r1", "r2"}) {
		t.Errorf("Lead column = %v, want [r0 r1 r2]", got)
	}
	m, _ := b.Move(res.Move.ID)
	if m.Phase != domboard.PhaseRolledBack || !errors.Is(m.Err, domain.ErrUnavailable) {
		t.Errorf("move = %s/%v, want rolled_back/ErrUnavailable", m.Phase, m.Err)
	}
	if m.Superseded {
		t.Error("Superseded = true, want false")
	}

	notices := b.TakeNotices()
	if len(notices) != 1 {
		t.Fatalf("got %d notices, want exactly 1", len(notices))
	}
	if notices[0].Kind != domboard.NoticeMoveRolledBack || notices[0].MoveID != res.Move.ID {
		t.Errorf("notice = %+v, want move_rolled_back for %s", notices[0], res.Move.ID)
	}
}

func TestBoard_Drop_SyncTimeoutRollsBack(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockLeadClient(t)
	client.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).
		Return(lead.Listing{Leads: []lead.Lead{newLead("r1", lead.StageLead, "")}}, nil).Once()
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "r1", lead.StageWon).
		RunAndReturn(func(ctx context.Context, _ caller.Credentials, _ string, _ lead.Stage) error {
			<-ctx.Done()
			return ctx.Err()
		}).Once()

	cfg := testBoardConfig()
	cfg.SyncTimeout = 20 * time.Millisecond
	b := NewBoard("b1", client, cfg, nil, discardLogger())
	b.Identify(adminCaller, testCreds)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// The request context ending must not cut the reconciliation short.
	ctx, cancel := context.WithCancel(context.Background())
	res, err := b.Drop(ctx, domboard.MoveIntent{LeadID: "r1", To: lead.StageWon})
	cancel()
	if err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	b.Wait()

	m, _ := b.Move(res.Move.ID)
	if !errors.Is(m.Err, context.DeadlineExceeded) {
		t.Errorf("move error = %v, want DeadlineExceeded", m.Err)
	}
	if l, _ := b.store.Get("r1"); l.Stage != lead.StageLead {
		t.Errorf("r1 stage = %s, want Lead", l.Stage)
	}
}

func TestBoard_Drop_ConcurrentUnrelatedMoves(t *testing.T) {
	t.Parallel()

	b, client := loadedBoard(t, adminCaller,
		newLead("a", lead.StageLead, ""),
		newLead("b", lead.StageLead, ""),
	)

	var started sync.WaitGroup
	started.Add(2)
	release := make(chan struct{})
	wait := func(err error) func(context.Context, caller.Credentials, string, lead.Stage) error {
		return func(context.Context, caller.Credentials, string, lead.Stage) error {
			started.Done()
			<-release
			return err
		}
	}
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "a", lead.StageQualified).
		RunAndReturn(wait(domain.ErrUnavailable)).Once()
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "b", lead.StageWon).
		RunAndReturn(wait(nil)).Once()

	ctx := context.Background()
	if _, err := b.Drop(ctx, domboard.MoveIntent{LeadID: "a", To: lead.StageQualified}); err != nil {
		t.Fatalf("Drop(a) error = %v", err)
	}
	if _, err := b.Drop(ctx, domboard.MoveIntent{LeadID: "b", To: lead.StageWon}); err != nil {
		t.Fatalf("Drop(b) error = %v", err)
	}
	started.Wait()
	close(release)
	b.Wait()

	v := b.View()
	if got := columnIDs(v, lead.StageLead); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Lead column = %v, want [a]", got)
	}
	if got := columnIDs(v, lead.StageWon); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Won column = %v, want [b]", got)
	}
	if n := len(b.TakeNotices()); n != 1 {
		t.Errorf("got %d notices, want 1", n)
	}
}

func TestBoard_Drop_SupersededRollbackKeepsNewerMove(t *testing.T) {
	t.Parallel()

	b, client := loadedBoard(t, adminCaller, newLead("r1", lead.StageLead, ""))

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "r1", lead.StageMeeting).
		RunAndReturn(func(context.Context, caller.Credentials, string, lead.Stage) error {
			close(firstStarted)
			<-releaseFirst
			return domain.ErrUnavailable
		}).Once()
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "r1", lead.StageOpportunity).
		Return(nil).Once()

	ctx := context.Background()
	first, err := b.Drop(ctx, domboard.MoveIntent{LeadID: "r1", To: lead.StageMeeting})
	if err != nil {
		t.Fatalf("first Drop() error = %v", err)
	}
	<-firstStarted
	if _, err := b.Drop(ctx, domboard.MoveIntent{LeadID: "r1", From: lead.StageMeeting, To: lead.StageOpportunity}); err != nil {
		t.Fatalf("second Drop() error = %v", err)
	}

	close(releaseFirst)
	b.Wait()

	if l, _ := b.store.Get("r1"); l.Stage != lead.StageOpportunity {
		t.Errorf("r1 stage = %s, want Opportunity", l.Stage)
	}
	m, _ := b.Move(first.Move.ID)
	if m.Phase != domboard.PhaseRolledBack || !m.Superseded {
		t.Errorf("first move = %s superseded=%v, want rolled_back superseded=true", m.Phase, m.Superseded)
	}
}

func TestBoard_Drop_ReorderDuringReconcileStillRollsBack(t *testing.T) {
	t.Parallel()

	b, client := loadedBoard(t, adminCaller,
		newLead("r0", lead.StageNegotiation, ""),
		newLead("r1", lead.StageLead, ""),
	)

	started := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "r1", lead.StageNegotiation).
		RunAndReturn(func(context.Context, caller.Credentials, string, lead.Stage) error {
			close(started)
			<-release
			return domain.ErrUnavailable
		}).Once()

	ctx := context.Background()
	res, err := b.Drop(ctx, domboard.MoveIntent{LeadID: "r1", From: lead.StageLead, To: lead.StageNegotiation, TargetIndex: 1})
	if err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	<-started

	reorder, err := b.Drop(ctx, domboard.MoveIntent{LeadID: "r1", From: lead.StageNegotiation, To: lead.StageNegotiation})
	if err != nil {
		t.Fatalf("reorder Drop() error = %v", err)
	}
	if reorder.Outcome != domboard.OutcomeReordered {
		t.Fatalf("reorder outcome = %s, want reordered", reorder.Outcome)
	}

	close(release)
	b.Wait()

	if l, _ := b.store.Get("r1"); l.Stage != lead.StageLead {
		t.Errorf("r1 stage = %s, want Lead", l.Stage)
	}
	m, _ := b.Move(res.Move.ID)
	if m.Phase != domboard.PhaseRolledBack || m.Superseded {
		t.Errorf("move = %s superseded=%v, want rolled_back superseded=false", m.Phase, m.Superseded)
	}
	if n := len(b.TakeNotices()); n != 1 {
		t.Errorf("got %d notices, want 1", n)
	}
}

func TestBoard_Drop_OthersLeadAfterLoadIsForbidden(t *testing.T) {
	t.Parallel()

	// UpdateLeadStage has no expectation, so a call fails the test.
	b, _ := loadedBoard(t, salesCaller,
		newLead("mine", lead.StageLead, "u1"),
		newLead("theirs", lead.StageLead, "u2"),
	)

	_, err := b.Drop(context.Background(), domboard.MoveIntent{LeadID: "theirs", To: lead.StageWon})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Drop() error = %v, want ErrForbidden", err)
	}
	if got := columnIDs(b.View(), lead.StageLead); !slices.Equal(got, []string{"mine"}) {
		t.Errorf("Lead column = %v, want [mine]", got)
	}
}

func TestBoard_Drop_NoRemoteCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		intent      domboard.MoveIntent
		wantOutcome domboard.Outcome
		wantLead    []string
	}{
		{
			name:        "same stage and index is a no-op",
			intent:      domboard.MoveIntent{LeadID: "r2", From: lead.StageLead, To: lead.StageLead, TargetIndex: 1},
			wantOutcome: domboard.OutcomeNoop,
			wantLead:    []string{"r1", "r2", "r3"},
		},
		{
			name:        "index past the end of own column is a no-op for the last lead",
			intent:      domboard.MoveIntent{LeadID: "r3", To: lead.StageLead, TargetIndex: 99},
			wantOutcome: domboard.OutcomeNoop,
			wantLead:    []string{"r1", "r2", "r3"},
		},
		{
			name:        "same column reorder",
			intent:      domboard.MoveIntent{LeadID: "r3", To: lead.StageLead, TargetIndex: 0},
			wantOutcome: domboard.OutcomeReordered,
			wantLead:    []string{"r3", "r1", "r2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// UpdateLeadStage has no expectation, so a call fails the test.
			b, _ := loadedBoard(t, adminCaller,
				newLead("r1", lead.StageLead, ""),
				newLead("r2", lead.StageLead, ""),
				newLead("r3", lead.StageLead, ""),
			)

			res, err := b.Drop(context.Background(), tt.intent)
			if err != nil {
				t.Fatalf("Drop() error = %v", err)
			}
			if res.Outcome != tt.wantOutcome || res.Move != nil {
				t.Errorf("Drop() = %+v, want %s without a move", res, tt.wantOutcome)
			}
			if got := columnIDs(b.View(), lead.StageLead); !slices.Equal(got, tt.wantLead) {
				t.Errorf("Lead column = %v, want %v", got, tt.wantLead)
			}
		})
	}
}

func TestBoard_Drop_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		caller  caller.Caller
		intent  domboard.MoveIntent
		wantErr error
	}{
		{
			name:    "no destination",
			intent:  domboard.MoveIntent{LeadID: "mine"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "lead missing from a non-admin board",
			intent:  domboard.MoveIntent{LeadID: "ghost", To: lead.StageWon},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "unknown lead for an admin",
			caller:  adminCaller,
			intent:  domboard.MoveIntent{LeadID: "ghost", To: lead.StageWon},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "lead assigned to someone else",
			intent:  domboard.MoveIntent{LeadID: "theirs", To: lead.StageWon},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "stale source stage",
			intent:  domboard.MoveIntent{LeadID: "mine", From: lead.StageMeeting, To: lead.StageWon},
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := tt.caller
			if c.IsZero() {
				c = salesCaller
			}
			b := NewBoard("b1", mocks.NewMockLeadClient(t), testBoardConfig(), nil, discardLogger())
			b.Identify(c, testCreds)
			// Seed directly: a normal load would never store a lead the
			// caller cannot see.
			b.store.Replace([]lead.Lead{
				newLead("mine", lead.StageLead, "u1"),
				newLead("theirs", lead.StageLead, "u2"),
			})
			b.status = domboard.StatusLoaded

			_, err := b.Drop(context.Background(), tt.intent)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Drop() error = %v, want %v", err, tt.wantErr)
			}
			for _, id := range []string{"mine", "theirs"} {
				if l, _ := b.store.Get(id); l.Stage != lead.StageLead {
					t.Errorf("%s moved to %s on a rejected drop", id, l.Stage)
				}
			}
		})
	}
}

func TestBoard_Drop_RequiresLoadedBoard(t *testing.T) {
	t.Parallel()

	b := NewBoard("b1", mocks.NewMockLeadClient(t), testBoardConfig(), nil, discardLogger())
	_, err := b.Drop(context.Background(), domboard.MoveIntent{LeadID: "r1", To: lead.StageWon})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Drop() error = %v, want ErrConflict", err)
	}
}

func TestBoard_CloseMakesLateCompletionANoop(t *testing.T) {
	t.Parallel()

	b, client := loadedBoard(t, adminCaller, newLead("r1", lead.StageLead, ""))

	release := make(chan struct{})
	client.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "r1", lead.StageWon).
		RunAndReturn(func(context.Context, caller.Credentials, string, lead.Stage) error {
			<-release
			return domain.ErrUnavailable
		}).Once()

	if _, err := b.Drop(context.Background(), domboard.MoveIntent{LeadID: "r1", To: lead.StageWon}); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}

	b.Close()
	close(release)
	b.Wait()

	if b.store.Len() != 0 {
		t.Errorf("closed board store holds %d leads, want 0", b.store.Len())
	}
	if n := len(b.TakeNotices()); n != 0 {
		t.Errorf("closed board produced %d notices, want 0", n)
	}
	if err := b.Load(context.Background()); !errors.Is(err, ErrBoardClosed) {
		t.Errorf("Load() after Close error = %v, want ErrBoardClosed", err)
	}
	if _, err := b.Drop(context.Background(), domboard.MoveIntent{LeadID: "r1", To: lead.StageLead}); !errors.Is(err, ErrBoardClosed) {
		t.Errorf("Drop() after Close error = %v, want ErrBoardClosed", err)
	}
}

func TestBoard_ColumnAndMoveLookup(t *testing.T) {
	t.Parallel()

	b, _ := loadedBoard(t, adminCaller, newLead("r1", lead.StageNegotiation, ""))

	col, err := b.Column(lead.StageNegotiation)
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if got := leadIDs(col.Leads); !slices.Equal(got, []string{"r1"}) {
		t.Errorf("Column(Negotiation) = %v, want [r1]", got)
	}
	if _, err := b.Column("Lost"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Column(Lost) error = %v, want ErrValidation", err)
	}
	if _, err := b.Move("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Move(nope) error = %v, want ErrNotFound", err)
	}
}
