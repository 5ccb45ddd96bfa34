package httpx

import (
	"net/http"
	"strconv"

	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/service"
)

// TicketHandlers serves complaint creation, detail, resolution, the
// department queue, and the per-ticket comment thread.
type TicketHandlers struct {
	Tickets *service.TicketService
	Chat    *service.ChatService
}

// Create handles POST /api/tickets.
func (h *TicketHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTicketRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	ticket, err := h.Tickets.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, ticket)
}

// Get handles GET /api/tickets/{id}.
func (h *TicketHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.Tickets.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ticket)
}

type resolveRequest struct {
	Feedback string `json:"feedback"`
}

// Resolve handles POST /api/tickets/{id}/resolve.
func (h *TicketHandlers) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Tickets.Resolve(r.Context(), r.PathValue("id"), req.Feedback); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Queue handles GET /api/tickets?departmentId=...&page=...&status=...&search=...
func (h *TicketHandlers) Queue(w http.ResponseWriter, r *http.Request) {
	q := model.QueueQuery{
		DepartmentID: r.URL.Query().Get("departmentId"),
		Status:       r.URL.Query().Get("status"),
		SearchTerm:   r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, errors.ValidationField("page", "page must be a number"))
			return
		}
		q.PageNumber = page
	}

	page, err := h.Tickets.Queue(r.Context(), q)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Comments handles GET /api/tickets/{id}/comments.
func (h *TicketHandlers) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Chat.Comments(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, comments)
}

type insertCommentRequest struct {
	Text string `json:"text"`
}

// InsertComment handles POST /api/tickets/{id}/comments. The author is
// taken from the session, never from the request body.
func (h *TicketHandlers) InsertComment(w http.ResponseWriter, r *http.Request) {
	var req insertCommentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	author, ok := ProfileFromContext(r.Context())
	if !ok {
		WriteError(w, errors.Authentication("profile required to comment"))
		return
	}

	echo, err := h.Chat.Insert(r.Context(), r.PathValue("id"), req.Text, *author)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, echo)
}
