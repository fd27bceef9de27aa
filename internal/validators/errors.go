package validators

import (
	"errors"

	"github.com/MKhiriev/go-keri-wallet/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidThreshold = errors.New(app.MsgInvalidThreshold)
	ErrOobiInvalid      = errors.New(app.MsgOobiInvalid)

	ErrEmptyDisplayName  = errors.New("display name is required")
	ErrInvalidTheme      = errors.New("theme must not be negative")
	ErrEmptyMemberPrefix = errors.New("member identifier is required")
	ErrEmptyNotification = errors.New("notification id and said are required")
	ErrEmptyGroupID      = errors.New("group id is required")
)
