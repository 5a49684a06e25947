package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"

	"github.com/iho/pocketbuddy/internal/domain"
)

// CaptureToken identifies one voice capture so a stale cancel can be ignored.
type CaptureToken string

// CaptureResult is delivered once per capture. Err is set on failure,
// including context.Canceled when the capture was cancelled.
type CaptureResult struct {
	Err        error
	Token      CaptureToken
	Transcript string
	Amount     decimal.Decimal
}

// AmountCaptureUseCase turns one spoken utterance into a pending amount.
// Only one capture runs at a time.
type AmountCaptureUseCase struct {
	transcriber Transcriber
	slot        *semaphore.Weighted
	listening   atomic.Bool
	recorder    Recorder
	logger      zerolog.Logger

	mu     sync.Mutex
	token  CaptureToken
	cancel context.CancelFunc
}

// NewAmountCaptureUseCase creates a new AmountCaptureUseCase.
func NewAmountCaptureUseCase(transcriber Transcriber, recorder Recorder, logger zerolog.Logger) *AmountCaptureUseCase {
	return &AmountCaptureUseCase{
		transcriber: transcriber,
		slot:        semaphore.NewWeighted(1),
		recorder:    recorder,
		logger:      logger.With().Str("component", "capture").Logger(),
	}
}

// Start begins a capture in the background and returns its token. deliver is
// called exactly once with the outcome, after the capture slot is released.
// A second Start while one is outstanding fails with domain.ErrCaptureInProgress.
func (uc *AmountCaptureUseCase) Start(ctx context.Context, deliver func(CaptureResult)) (CaptureToken, error) {
	if !uc.slot.TryAcquire(1) {
		uc.recorder.ObserveCapture(CaptureRejected)
		return "", domain.ErrCaptureInProgress
	}

	token := CaptureToken(uuid.NewString())
	captureCtx, cancel := context.WithCancel(ctx)

	uc.mu.Lock()
	uc.token = token
	uc.cancel = cancel
	uc.mu.Unlock()
	uc.listening.Store(true)

	uc.logger.Debug().Str("token", string(token)).Msg("capture started")

	go uc.run(captureCtx, cancel, token, deliver)
	return token, nil
}

// Cancel stops the capture identified by token. It reports false for a
// token that is not the outstanding capture.
func (uc *AmountCaptureUseCase) Cancel(token CaptureToken) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cancel == nil || uc.token != token {
		return false
	}
	uc.cancel()
	return true
}

// IsListening reports whether a capture is outstanding.
func (uc *AmountCaptureUseCase) IsListening() bool {
	return uc.listening.Load()
}

func (uc *AmountCaptureUseCase) run(ctx context.Context, cancel context.CancelFunc, token CaptureToken, deliver func(CaptureResult)) {
	transcript, err := uc.transcriber.Transcribe(ctx)
	result := CaptureResult{Token: token, Transcript: transcript}

	outcome := CaptureRecognized
	switch {
	case ctx.Err() != nil:
		result.Err = ctx.Err()
		outcome = CaptureCancelled
	case err != nil:
		result.Err = err
		outcome = CaptureFailed
	default:
		result.Amount, result.Err = domain.ParseSpokenAmount(transcript)
		if result.Err != nil {
			outcome = CaptureFailed
		}
	}

	uc.mu.Lock()
	uc.token = ""
	uc.cancel = nil
	uc.mu.Unlock()
	cancel()
	uc.listening.Store(false)
	uc.slot.Release(1)

	uc.recorder.ObserveCapture(outcome)
	uc.logger.Debug().Str("token", string(token)).Str("outcome", outcome).Msg("capture finished")

	deliver(result)
}
