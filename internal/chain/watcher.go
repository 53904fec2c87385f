package chain

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

// Confirmation is the terminal outcome of waiting on a submitted write.
type Confirmation int

const (
	// ConfirmationUnknown means no transaction was given or the wait
	// itself errored before a receipt was observed.
	ConfirmationUnknown Confirmation = iota
	// ConfirmationFailed means the transaction reached a terminal
	// non-success status.
	ConfirmationFailed
	// ConfirmationConfirmed means the transaction succeeded.
	ConfirmationConfirmed
)

// Confirmed reports whether the transaction reached a success status.
func (c Confirmation) Confirmed() bool {
	return c == ConfirmationConfirmed
}

func (c Confirmation) String() string {
	switch c {
	case ConfirmationConfirmed:
		return "confirmed"
	case ConfirmationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Watcher waits for submitted transactions to reach a terminal state.
// Failures never escape Wait; callers branch on the Confirmation value
// instead of handling errors.
type Watcher struct {
	backend bind.DeployBackend
	timeout time.Duration
	logger  *slog.Logger
}

// NewWatcher creates a watcher polling the given backend. A zero timeout
// means the wait is bounded only by the caller's context.
func NewWatcher(backend bind.DeployBackend, timeout time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{backend: backend, timeout: timeout, logger: logger}
}

// Wait blocks until tx is mined or the wait is cut short.
func (w *Watcher) Wait(ctx context.Context, tx *types.Transaction) Confirmation {
	if tx == nil {
		return ConfirmationUnknown
	}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(ctx, w.backend, tx)
	if err != nil || receipt == nil {
		w.logger.Warn("transaction wait ended without receipt",
			"tx", tx.Hash().Hex(),
			"error", err,
		)
		return ConfirmationUnknown
	}

	if receipt.Status == types.ReceiptStatusSuccessful {
		return ConfirmationConfirmed
	}
	w.logger.Warn("transaction reverted",
		"tx", tx.Hash().Hex(),
		"status", receipt.Status,
		"block", receipt.BlockNumber,
	)
	return ConfirmationFailed
}
