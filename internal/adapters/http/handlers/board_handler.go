package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

const boardsPath = "/api/v1/boards/"

// BoardHandler exposes hosted board sessions over HTTP. Every route below
// /api/v1/boards/{boardId} answers 404 once the board is unmounted or
// evicted.
type BoardHandler struct {
	svc       ports.BoardService
	orgHeader string
}

// NewBoardHandler creates a BoardHandler. orgHeader names the request
// header that carries the caller's organization.
func NewBoardHandler(svc ports.BoardService, orgHeader string) *BoardHandler {
	return &BoardHandler{svc: svc, orgHeader: orgHeader}
}

// reply is what a board operation answers with. A nil body writes the
// status alone.
type reply struct {
	status int
	body   any
}

func ok(body any) reply { return reply{status: http.StatusOK, body: body} }

// respond resolves {boardId}, runs op and writes its reply, or the problem
// document for whichever step failed.
func (h *BoardHandler) respond(w http.ResponseWriter, r *http.Request, op func(boardID string) (reply, error)) {
	boardID, err := pathParam(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	rep, err := op(boardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if rep.body == nil {
		w.WriteHeader(rep.status)
		return
	}
	writeJSON(w, r, rep.status, rep.body)
}

// Mount handles POST /api/v1/boards. The board is created even when the
// first load fails; its status and error say why.
func (h *BoardHandler) Mount(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Mount(r.Context(), credentials(r, h.orgHeader))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Location", boardsPath+view.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToBoardResponse(&view))
}

// GetBoard handles GET /api/v1/boards/{boardId}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		view, err := h.svc.View(r.Context(), boardID)
		return ok(dto.ToBoardResponse(&view)), err
	})
}

// GetColumn handles GET /api/v1/boards/{boardId}/columns/{stage}.
func (h *BoardHandler) GetColumn(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		stage, err := parseStage(r, "stage")
		if err != nil {
			return reply{}, err
		}
		col, err := h.svc.Column(r.Context(), boardID, stage)
		return ok(dto.ToColumnResponse(&col)), err
	})
}

// Drop handles POST /api/v1/boards/{boardId}/moves. An accepted move
// answers 202 with the move to poll; a no-op or local reorder answers 200.
func (h *BoardHandler) Drop(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		var req dto.MoveRequest
		if err := decodeBody(r, &req); err != nil {
			return reply{}, err
		}
		res, err := h.svc.Drop(r.Context(), boardID, req.ToMoveIntent())
		if err != nil {
			return reply{}, err
		}
		if res.Outcome != board.OutcomeAccepted {
			return ok(dto.ToDropResponse(&res)), nil
		}
		w.Header().Set("Location", boardsPath+boardID+"/moves/"+res.Move.ID)
		return reply{status: http.StatusAccepted, body: dto.ToDropResponse(&res)}, nil
	})
}

// GetMove handles GET /api/v1/boards/{boardId}/moves/{moveId}.
func (h *BoardHandler) GetMove(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		moveID, err := pathParam(r, "moveId")
		if err != nil {
			return reply{}, err
		}
		m, err := h.svc.Move(r.Context(), boardID, moveID)
		return ok(dto.ToMoveResponse(&m)), err
	})
}

// Refresh handles POST /api/v1/boards/{boardId}/refresh with the caller's
// current credentials.
func (h *BoardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		view, err := h.svc.Refresh(r.Context(), boardID, credentials(r, h.orgHeader))
		return ok(dto.ToBoardResponse(&view)), err
	})
}

// Reload handles POST /api/v1/boards/{boardId}/reload.
func (h *BoardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		view, err := h.svc.Reload(r.Context(), boardID)
		return ok(dto.ToBoardResponse(&view)), err
	})
}

// ListNotices handles GET /api/v1/boards/{boardId}/notices. Returned
// notices are removed from the board.
func (h *BoardHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		notices, err := h.svc.Notices(r.Context(), boardID)
		return ok(dto.ToNoticeListResponse(notices)), err
	})
}

// GetReference handles GET /api/v1/boards/{boardId}/reference. A board
// that never loaded answers an empty object.
func (h *BoardHandler) GetReference(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		ref, err := h.svc.Reference(r.Context(), boardID)
		if ref == nil {
			ref = dto.ReferenceResponse{}
		}
		return ok(dto.ReferenceResponse(ref)), err
	})
}

// Unmount handles DELETE /api/v1/boards/{boardId}.
func (h *BoardHandler) Unmount(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(boardID string) (reply, error) {
		return reply{status: http.StatusNoContent}, h.svc.Unmount(r.Context(), boardID)
	})
}
