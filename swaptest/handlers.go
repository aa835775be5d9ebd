package swaptest

import swap "github.com/AlphaPrime8/fixed-rate-swap"

// Handler is a mock implementation of swap.Handler that counts the calls
// and returns declared results.
type Handler struct {
	checkCall   int
	CheckResult swap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult swap.DeliverResult
	DeliverErr    error
}

var _ swap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
