package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-keri-wallet/models"
)

const (
	FieldThreshold    = "threshold"
	FieldDisplayName  = "display_name"
	FieldTheme        = "theme"
	FieldMemberPrefix = "member_prefix"
	FieldNotification = "notification"
	FieldGroupID      = "group_id"
)

// GroupThresholdInput is a threshold pair checked against the size of the
// group: the linked contacts plus the creator.
type GroupThresholdInput struct {
	Threshold models.GroupThreshold
	GroupSize int
}

// WalletValidator validates the inputs of the wallet services.
type WalletValidator struct{}

func NewWalletValidator() Validator {
	return &WalletValidator{}
}

func (v *WalletValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case GroupThresholdInput:
		return v.validateThreshold(value)
	case *GroupThresholdInput:
		return v.validateThreshold(*value)

	case OobiURL:
		_, err := ParseOobi(string(value))
		return err

	case models.CreateIdentifierInputs:
		return v.validateCreateIdentifier(value, fields...)
	case *models.CreateIdentifierInputs:
		return v.validateCreateIdentifier(*value, fields...)

	case models.CreateGroupRequest:
		return v.validateCreateGroup(value, fields...)
	case *models.CreateGroupRequest:
		return v.validateCreateGroup(*value, fields...)

	case models.JoinGroupRequest:
		return v.validateJoinGroup(value)
	case *models.JoinGroupRequest:
		return v.validateJoinGroup(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *WalletValidator) validateThreshold(in GroupThresholdInput) error {
	t := in.Threshold
	if t.Signing < 1 || t.Signing > in.GroupSize || t.Rotation < 1 || t.Rotation > in.GroupSize {
		return fmt.Errorf("%w: signing %d, rotation %d, group size %d", ErrInvalidThreshold, t.Signing, t.Rotation, in.GroupSize)
	}
	return nil
}

func (v *WalletValidator) validateCreateIdentifier(in models.CreateIdentifierInputs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDisplayName, FieldTheme}
	}

	for _, field := range fields {
		switch field {
		case FieldDisplayName:
			if strings.TrimSpace(in.DisplayName) == "" {
				return ErrEmptyDisplayName
			}
		case FieldTheme:
			if in.Theme < 0 {
				return ErrInvalidTheme
			}
		case FieldGroupID:
			if in.GroupMetadata != nil && in.GroupMetadata.GroupID == "" {
				return ErrEmptyGroupID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *WalletValidator) validateCreateGroup(in models.CreateGroupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMemberPrefix, FieldThreshold}
	}

	for _, field := range fields {
		switch field {
		case FieldMemberPrefix:
			if in.MemberPrefix == "" {
				return ErrEmptyMemberPrefix
			}
		case FieldThreshold:
			size := len(in.Connections) + 1
			if err := v.validateThreshold(GroupThresholdInput{Threshold: in.Threshold, GroupSize: size}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *WalletValidator) validateJoinGroup(in models.JoinGroupRequest) error {
	if in.NotificationID == "" || in.NotificationSaid == "" {
		return ErrEmptyNotification
	}
	return nil
}
