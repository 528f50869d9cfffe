package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// SettingsUseCase lectura y cambio de las preferencias del usuario.
type SettingsUseCase struct {
	store *state.Store
	log   zerolog.Logger
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store *state.Store, log zerolog.Logger) *SettingsUseCase {
	return &SettingsUseCase{store: store, log: log}
}

// Get devuelve la configuración actual.
func (uc *SettingsUseCase) Get() entity.Settings {
	return uc.store.Settings()
}

// Update aplica los campos presentes y guarda.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (entity.Settings, error) {
	if in.Theme != nil && *in.Theme != entity.ThemeLight && *in.Theme != entity.ThemeDark {
		return entity.Settings{}, domain.ErrInvalidInput
	}
	var out entity.Settings
	err := uc.store.Mutate(ctx, func(tx *state.Tx) error {
		s := &tx.Doc.Settings
		if in.DateFormat != nil {
			s.DateFormat = *in.DateFormat
		}
		if in.CalculateValue != nil {
			s.CalculateValue = *in.CalculateValue
		}
		if in.Currency != nil {
			s.Currency = *in.Currency
		}
		if in.Theme != nil {
			s.Theme = *in.Theme
		}
		out = *s
		return nil
	})
	if err != nil {
		return entity.Settings{}, err
	}
	uc.log.Debug().Interface("config", out).Msg("configuración actualizada")
	return out, nil
}

// ToggleTheme alterna entre light y dark.
func (uc *SettingsUseCase) ToggleTheme(ctx context.Context) (entity.Settings, error) {
	var out entity.Settings
	err := uc.store.Mutate(ctx, func(tx *state.Tx) error {
		if tx.Doc.Settings.Theme == entity.ThemeDark {
			tx.Doc.Settings.Theme = entity.ThemeLight
		} else {
			tx.Doc.Settings.Theme = entity.ThemeDark
		}
		out = tx.Doc.Settings
		return nil
	})
	return out, err
}
