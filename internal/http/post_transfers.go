package http

import (
	"net/http"
)

func (h Handler) PostTransfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TransferRequest
	if !decode(w, r, &req) {
		return
	}

	to, amount, err := req.ToDomain()
	if err != nil {
		h.writeFailure(ctx, w, err, "transfer")
		return
	}

	snapshot, err := h.engine.Transfer(ctx, to, amount)
	if err != nil {
		h.writeFailure(ctx, w, err, "transfer")
		return
	}

	writeJSON(w, http.StatusCreated, NewSessionResponse(snapshot))
}
