package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keri-wallet/internal/validators"
	"github.com/MKhiriev/go-keri-wallet/models"
)

// validationError keeps the stable sentinels the UI matches on and files
// every other validator failure under ErrInvalidDataProvided.
func validationError(err error) error {
	if errors.Is(err, ErrInvalidThreshold) || errors.Is(err, ErrOobiInvalid) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// MultisigValidationService checks group requests before any store or
// network access.
type MultisigValidationService struct {
	MultisigService
	validator validators.Validator
}

func NewMultisigValidationService() MultisigServiceWrapper {
	return &MultisigValidationService{validator: validators.NewWalletValidator()}
}

func (v *MultisigValidationService) CreateGroup(ctx context.Context, req models.CreateGroupRequest, backgroundTask bool) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", validationError(err)
	}
	return v.MultisigService.CreateGroup(ctx, req, backgroundTask)
}

func (v *MultisigValidationService) JoinGroup(ctx context.Context, req models.JoinGroupRequest, backgroundTask bool) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", validationError(err)
	}
	return v.MultisigService.JoinGroup(ctx, req, backgroundTask)
}

func (v *MultisigValidationService) Wrap(inner MultisigService) MultisigService {
	v.MultisigService = inner
	return v
}

// IdentifierValidationService checks identifier inputs.
type IdentifierValidationService struct {
	IdentifierService
	validator validators.Validator
}

func NewIdentifierValidationService() *IdentifierValidationService {
	return &IdentifierValidationService{validator: validators.NewWalletValidator()}
}

func (v *IdentifierValidationService) CreateIdentifier(ctx context.Context, inputs models.CreateIdentifierInputs, skipNameQueue bool) (models.CreateIdentifierResult, error) {
	if err := v.validator.Validate(ctx, inputs); err != nil {
		return models.CreateIdentifierResult{}, validationError(err)
	}
	return v.IdentifierService.CreateIdentifier(ctx, inputs, skipNameQueue)
}

func (v *IdentifierValidationService) UpdateIdentifier(ctx context.Context, id, displayName string, theme int) error {
	inputs := models.CreateIdentifierInputs{DisplayName: displayName, Theme: theme}
	if err := v.validator.Validate(ctx, inputs); err != nil {
		return validationError(err)
	}
	return v.IdentifierService.UpdateIdentifier(ctx, id, displayName, theme)
}

func (v *IdentifierValidationService) Wrap(inner IdentifierService) IdentifierService {
	v.IdentifierService = inner
	return v
}

// ConnectionValidationService rejects malformed OOBI URLs up front.
type ConnectionValidationService struct {
	ConnectionService
	validator validators.Validator
}

func NewConnectionValidationService() *ConnectionValidationService {
	return &ConnectionValidationService{validator: validators.NewWalletValidator()}
}

func (v *ConnectionValidationService) ConnectByOobiURL(ctx context.Context, oobiURL, sharedIdentifier string) (models.OobiScanResult, error) {
	if err := v.validator.Validate(ctx, validators.OobiURL(oobiURL)); err != nil {
		return models.OobiScanResult{}, validationError(err)
	}
	return v.ConnectionService.ConnectByOobiURL(ctx, oobiURL, sharedIdentifier)
}

func (v *ConnectionValidationService) ResolveOobi(ctx context.Context, oobiURL string, wait bool) (models.Operation, error) {
	if err := v.validator.Validate(ctx, validators.OobiURL(oobiURL)); err != nil {
		return models.Operation{}, validationError(err)
	}
	return v.ConnectionService.ResolveOobi(ctx, oobiURL, wait)
}

func (v *ConnectionValidationService) Wrap(inner ConnectionService) ConnectionService {
	v.ConnectionService = inner
	return v
}
