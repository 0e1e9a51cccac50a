package http

import (
	"net/http"
)

func (h Handler) PostSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CredentialsRequest
	if !decode(w, r, &req) {
		return
	}

	username, pin, err := req.ToDomain()
	if err != nil {
		h.writeFailure(ctx, w, err, "log in")
		return
	}

	snapshot, err := h.engine.Login(ctx, username, pin)
	if err != nil {
		h.writeFailure(ctx, w, err, "log in")
		return
	}

	writeJSON(w, http.StatusOK, NewSessionResponse(snapshot))
}

func (h Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.engine.Snapshot(ctx)
	if err != nil {
		h.writeFailure(ctx, w, err, "load session")
		return
	}

	writeJSON(w, http.StatusOK, NewSessionResponse(snapshot))
}

func (h Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.engine.Logout(ctx); err != nil {
		h.writeFailure(ctx, w, err, "log out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) PostSessionClose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CredentialsRequest
	if !decode(w, r, &req) {
		return
	}

	username, pin, err := req.ToDomain()
	if err != nil {
		h.writeFailure(ctx, w, err, "close account")
		return
	}

	if err = h.engine.Close(ctx, username, pin); err != nil {
		h.writeFailure(ctx, w, err, "close account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) PostSessionSort(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.engine.ToggleSort(ctx)
	if err != nil {
		h.writeFailure(ctx, w, err, "sort movements")
		return
	}

	writeJSON(w, http.StatusOK, NewSessionResponse(snapshot))
}
