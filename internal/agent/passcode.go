package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/crypto"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/internal/utils"
	"github.com/MKhiriev/go-keri-wallet/models"
)

var ErrPasswordRequired = errors.New("a wallet password is required to seal the keria passcode")

// Passcodes keeps the KERIA passcode sealed under the wallet password.
type Passcodes struct {
	basic  store.BasicRepository
	sealer crypto.Sealer
}

func NewPasscodes(basic store.BasicRepository, sealer crypto.Sealer) *Passcodes {
	return &Passcodes{basic: basic, sealer: sealer}
}

// Load returns the passcode to connect with. A passcode given in cfg wins
// and replaces the sealed one; otherwise the stored passcode is opened, and
// a first run generates and seals a fresh one.
func (p *Passcodes) Load(ctx context.Context, cfg config.WalletApp) (string, error) {
	if cfg.Passcode != "" {
		if cfg.Password != "" {
			if err := p.store(ctx, cfg.Passcode, cfg.Password); err != nil {
				return "", err
			}
		}
		return cfg.Passcode, nil
	}

	sealed, err := store.GetContent[models.SealedPasscode](ctx, p.basic, models.MiscKeriaPasscode)
	if err != nil {
		return "", fmt.Errorf("read sealed passcode: %w", err)
	}
	if cfg.Password == "" {
		return "", ErrPasswordRequired
	}

	if len(sealed.Blob) > 0 {
		passcode, err := p.sealer.Open(sealed, cfg.Password)
		if err != nil {
			return "", fmt.Errorf("open sealed passcode: %w", err)
		}
		return passcode, nil
	}

	passcode, err := utils.NewPasscode()
	if err != nil {
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	if err = p.store(ctx, passcode, cfg.Password); err != nil {
		return "", err
	}
	return passcode, nil
}

func (p *Passcodes) store(ctx context.Context, passcode, password string) error {
	sealed, err := p.sealer.Seal(passcode, password)
	if err != nil {
		return fmt.Errorf("seal passcode: %w", err)
	}
	if err = store.PutContent(ctx, p.basic, models.MiscKeriaPasscode, sealed); err != nil {
		return fmt.Errorf("save sealed passcode: %w", err)
	}
	return nil
}
