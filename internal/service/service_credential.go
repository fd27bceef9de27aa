package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
)

type credentialService struct {
	credentials store.CredentialRepository
	keria       adapter.KeriaAdapter
	conn        *Connectivity

	logger *logger.Logger
}

func NewCredentialService(credentials store.CredentialRepository, keria adapter.KeriaAdapter, conn *Connectivity, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentials: credentials,
		keria:       keria,
		conn:        conn,
		logger:      logger,
	}
}

func (c *credentialService) MarkCredentialPendingDelete(ctx context.Context, id string) error {
	cred, err := c.credentials.Get(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrCredentialNotFound
	}
	if err != nil {
		return fmt.Errorf("get credential: %w", err)
	}

	cred.PendingDeletion = true
	if err = c.credentials.Update(ctx, cred); err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	return nil
}

// DeleteCredential removes the credential from the agent, then locally. A
// credential the agent no longer holds is treated as deleted.
func (c *credentialService) DeleteCredential(ctx context.Context, id string) error {
	err := onlineOnlyErr(ctx, c.conn, func(ctx context.Context) error {
		return c.keria.DeleteCredential(ctx, id)
	})
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("delete remote credential: %w", err)
	}

	if err = c.credentials.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (c *credentialService) RemoveCredentialsPendingDeletion(ctx context.Context) error {
	pending, err := c.credentials.FindPendingDeletion(ctx)
	if err != nil {
		return fmt.Errorf("find credentials pending deletion: %w", err)
	}

	for _, cred := range pending {
		if err = c.DeleteCredential(ctx, cred.ID); err != nil {
			return err
		}
	}
	return nil
}
