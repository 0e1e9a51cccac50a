package http

import (
	"net/http"
)

// PostLoans answers 202 on approval; the credit itself shows up later on the
// event feed.
func (h Handler) PostLoans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoanRequest
	if !decode(w, r, &req) {
		return
	}

	amount, err := req.ToDomain()
	if err != nil {
		h.writeFailure(ctx, w, err, "request loan")
		return
	}

	requestID, err := h.engine.RequestLoan(ctx, amount)
	if err != nil {
		h.writeFailure(ctx, w, err, "request loan")
		return
	}

	writeJSON(w, http.StatusAccepted, LoanResponse{RequestID: requestID.String()})
}
