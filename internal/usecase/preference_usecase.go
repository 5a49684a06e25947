package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/pocketbuddy/internal/domain"
)

// PreferenceUseCase stores UI preferences next to the wallet.
type PreferenceUseCase struct {
	store    StateStore
	recorder Recorder
	logger   zerolog.Logger
}

// NewPreferenceUseCase creates a new PreferenceUseCase.
func NewPreferenceUseCase(store StateStore, recorder Recorder, logger zerolog.Logger) *PreferenceUseCase {
	return &PreferenceUseCase{
		store:    store,
		recorder: recorder,
		logger:   logger.With().Str("component", "preferences").Logger(),
	}
}

// DarkMode reports the stored theme, dark unless the user chose light.
func (uc *PreferenceUseCase) DarkMode(ctx context.Context) bool {
	dark := DefaultDarkMode
	uc.store.Load(ctx, domain.KeyTheme, &dark)
	return dark
}

// SetDarkMode stores the theme choice.
func (uc *PreferenceUseCase) SetDarkMode(ctx context.Context, dark bool) error {
	err := uc.store.SaveAll(ctx, map[string]any{domain.KeyTheme: dark})
	uc.recorder.ObserveMutation(OpSetTheme, err)
	if err != nil {
		uc.logger.Error().Err(err).Msg("failed to persist theme")
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}
