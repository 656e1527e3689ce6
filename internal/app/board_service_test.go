package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	domboard "github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/mocks"
)

func newTestService(t *testing.T) (*BoardService, *mocks.MockProfileClient, *mocks.MockLeadClient) {
	t.Helper()

	profiles := mocks.NewMockProfileClient(t)
	leads := mocks.NewMockLeadClient(t)
	return NewBoardService(profiles, leads, testBoardConfig(), nil, discardLogger()), profiles, leads
}

func TestNewBoardService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewBoardService(mocks.NewMockProfileClient(t), mocks.NewMockLeadClient(t), testBoardConfig(), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewBoardService(nil logger) should create a no-op logger, got nil")
	}
}

func TestBoardService_Mount(t *testing.T) {
	t.Parallel()

	t.Run("resolves the caller and loads", func(t *testing.T) {
		t.Parallel()
		svc, profiles, leads := newTestService(t)

		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(salesCaller, nil).Once()
		leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{AssignedTo: "u1"}).
			Return(lead.Listing{Leads: []lead.Lead{newLead("r1", lead.StageMeeting, "u1")}}, nil).Once()

		v, err := svc.Mount(context.Background(), testCreds)
		if err != nil {
			t.Fatalf("Mount() error = %v", err)
		}
		if v.ID == "" || v.Status != domboard.StatusLoaded {
			t.Errorf("Mount() = id %q status %s, want an id and loaded", v.ID, v.Status)
		}
		if v.Caller != salesCaller {
			t.Errorf("Caller = %+v, want %+v", v.Caller, salesCaller)
		}
		if svc.Len() != 1 {
			t.Errorf("Len() = %d, want 1", svc.Len())
		}
	})

	t.Run("missing credentials mount an unloaded board", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		v, err := svc.Mount(context.Background(), caller.Credentials{})
		if err != nil {
			t.Fatalf("Mount() error = %v", err)
		}
		if v.Status != domboard.StatusNotLoaded {
			t.Errorf("Status = %s, want not_loaded", v.Status)
		}
	})

	t.Run("profile failure mounts an unloaded board", func(t *testing.T) {
		t.Parallel()
		svc, profiles, _ := newTestService(t)

		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(caller.Caller{}, domain.ErrUnavailable).Once()

		v, err := svc.Mount(context.Background(), testCreds)
		if err != nil {
			t.Fatalf("Mount() error = %v", err)
		}
		if v.Status != domboard.StatusNotLoaded || v.Error == "" {
			t.Errorf("Mount() = %s %q, want not_loaded with a reason", v.Status, v.Error)
		}
	})

	t.Run("session limit", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		svc.cfg.MaxSessions = 1

		if _, err := svc.Mount(context.Background(), caller.Credentials{}); err != nil {
			t.Fatalf("first Mount() error = %v", err)
		}
		if err := svc.HealthCheck(context.Background()); err == nil {
			t.Error("HealthCheck() at capacity = nil, want error")
		}
		if _, err := svc.Mount(context.Background(), caller.Credentials{}); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("second Mount() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestBoardService_UnknownBoard(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["View"] = svc.View(ctx, "nope")
	_, checks["Column"] = svc.Column(ctx, "nope", lead.StageLead)
	_, checks["Drop"] = svc.Drop(ctx, "nope", domboard.MoveIntent{LeadID: "r1", To: lead.StageWon})
	_, checks["Move"] = svc.Move(ctx, "nope", "m1")
	_, checks["Refresh"] = svc.Refresh(ctx, "nope", testCreds)
	_, checks["Reload"] = svc.Reload(ctx, "nope")
	_, checks["Notices"] = svc.Notices(ctx, "nope")
	_, checks["Reference"] = svc.Reference(ctx, "nope")
	checks["Unmount"] = svc.Unmount(ctx, "nope")

	for op, err := range checks {
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("%s() error = %v, want ErrNotFound", op, err)
		}
	}
}

func TestBoardService_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("same identity does not reload", func(t *testing.T) {
		t.Parallel()
		svc, profiles, leads := newTestService(t)

		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(adminCaller, nil).Twice()
		leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).Return(lead.Listing{}, nil).Once()

		v, _ := svc.Mount(context.Background(), testCreds)
		if _, err := svc.Refresh(context.Background(), v.ID, testCreds); err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
	})

	t.Run("changed identity reloads", func(t *testing.T) {
		t.Parallel()
		svc, profiles, leads := newTestService(t)

		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(adminCaller, nil).Once()
		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(salesCaller, nil).Once()
		leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).
			Return(lead.Listing{Leads: []lead.Lead{newLead("r1", lead.StageLead, "u2")}}, nil).Once()
		leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{AssignedTo: "u1"}).
			Return(lead.Listing{}, nil).Once()

		v, _ := svc.Mount(context.Background(), testCreds)
		got, err := svc.Refresh(context.Background(), v.ID, testCreds)
		if err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
		if got.Caller != salesCaller {
			t.Errorf("Caller = %+v, want %+v", got.Caller, salesCaller)
		}
		if n := len(got.Columns[lead.StageLead.Position()].Leads); n != 0 {
			t.Errorf("Lead column has %d leads after identity change, want 0", n)
		}
	})

	t.Run("rejected token clears the board", func(t *testing.T) {
		t.Parallel()
		svc, profiles, leads := newTestService(t)

		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(adminCaller, nil).Once()
		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(caller.Caller{}, domain.ErrUnauthenticated).Once()
		leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).
			Return(lead.Listing{Leads: []lead.Lead{newLead("r1", lead.StageLead, "")}}, nil).Once()

		v, _ := svc.Mount(context.Background(), testCreds)
		got, err := svc.Refresh(context.Background(), v.ID, testCreds)
		if err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
		if got.Status != domboard.StatusNotLoaded {
			t.Errorf("Status = %s, want not_loaded", got.Status)
		}
	})

	t.Run("transport failure keeps the board", func(t *testing.T) {
		t.Parallel()
		svc, profiles, leads := newTestService(t)

		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(adminCaller, nil).Once()
		profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(caller.Caller{}, domain.ErrUnavailable).Once()
		leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).Return(lead.Listing{}, nil).Once()

		v, _ := svc.Mount(context.Background(), testCreds)
		if _, err := svc.Refresh(context.Background(), v.ID, testCreds); !errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("Refresh() error = %v, want ErrUnavailable", err)
		}
		got, _ := svc.View(context.Background(), v.ID)
		if got.Status != domboard.StatusLoaded || got.Caller != adminCaller {
			t.Errorf("View() = %s %+v, want loaded as admin", got.Status, got.Caller)
		}
	})
}

func TestBoardService_Reload(t *testing.T) {
	t.Parallel()

	svc, profiles, leads := newTestService(t)
	profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(adminCaller, nil).Once()
	leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).Return(lead.Listing{}, nil).Once()
	leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).Return(lead.Listing{}, domain.ErrUnavailable).Once()

	v, _ := svc.Mount(context.Background(), testCreds)
	got, err := svc.Reload(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got.Status != domboard.StatusFailed {
		t.Errorf("Status = %s, want failed", got.Status)
	}

	notices, err := svc.Notices(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("Notices() error = %v", err)
	}
	if len(notices) != 1 || notices[0].Kind != domboard.NoticeLoadFailed {
		t.Errorf("Notices() = %+v, want one load_failed", notices)
	}
}

func TestBoardService_DropAndTrackMove(t *testing.T) {
	t.Parallel()

	svc, profiles, leads := newTestService(t)
	profiles.EXPECT().GetProfile(mock.Anything, testCreds).Return(adminCaller, nil).Once()
	leads.EXPECT().ListLeads(mock.Anything, testCreds, lead.Filter{}).
		Return(lead.Listing{Leads: []lead.Lead{newLead("r1", lead.StageLead, "")}}, nil).Once()
	leads.EXPECT().UpdateLeadStage(mock.Anything, testCreds, "r1", lead.StageWon).Return(nil).Once()

	ctx := context.Background()
	v, _ := svc.Mount(ctx, testCreds)

	res, err := svc.Drop(ctx, v.ID, domboard.MoveIntent{LeadID: "r1", To: lead.StageWon})
	if err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	if err := svc.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if svc.Len() != 0 {
		t.Errorf("Len() after Shutdown = %d, want 0", svc.Len())
	}
	if res.Move.Intent.From != lead.StageLead {
		t.Errorf("Intent.From = %s, want Lead", res.Move.Intent.From)
	}
}

func TestBoardService_Sweep(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	v, _ := svc.Mount(ctx, caller.Credentials{})
	svc.Sweep(ctx)
	if svc.Len() != 1 {
		t.Fatalf("fresh board was swept")
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	svc.Sweep(ctx)
	if svc.Len() != 0 {
		t.Errorf("Len() after sweep = %d, want 0", svc.Len())
	}
	if _, err := svc.View(ctx, v.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("View() of expired board error = %v, want ErrNotFound", err)
	}
}

func TestBoardService_Unmount(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	v, _ := svc.Mount(ctx, caller.Credentials{})
	if err := svc.Unmount(ctx, v.ID); err != nil {
		t.Fatalf("Unmount() error = %v", err)
	}
	if err := svc.Unmount(ctx, v.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Unmount() error = %v, want ErrNotFound", err)
	}
	if svc.Name() != "board-sessions" {
		t.Errorf("Name() = %q, want board-sessions", svc.Name())
	}
	if err := svc.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
