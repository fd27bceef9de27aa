package service

import (
	"errors"

	"github.com/MKhiriev/go-keri-wallet/internal/app"
	"github.com/MKhiriev/go-keri-wallet/internal/validators"
)

// Validation errors, raised before any call reaches the agent.
var (
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)
	ErrInvalidThreshold    = validators.ErrInvalidThreshold
	ErrOobiInvalid         = validators.ErrOobiInvalid

	ErrMissingGroupMetadata                     = errors.New(app.MsgMissingGroupMetadata)
	ErrOnlyAllowGroupInitiator                  = errors.New(app.MsgOnlyAllowGroupInitiator)
	ErrOnlyAllowLinkedContacts                  = errors.New(app.MsgOnlyAllowLinkedContacts)
	ErrNormalConnectionRequiresSharedIdentifier = errors.New(app.MsgNormalConnectionRequiresSharedIdentifier)
	ErrInsufficientWitnessesAvailable           = errors.New(app.MsgInsufficientWitnessesAvailable)
	ErrMisconfiguredAgentConfiguration          = errors.New(app.MsgMisconfiguredAgentConfiguration)
	ErrCannotRotateGroup                        = errors.New(app.MsgCannotRotateGroup)
)

// Connectivity and drift errors.
var (
	// ErrKeriaConnectionBroken is returned while offline and whenever a call
	// fails because the agent could not be reached. The transport error is
	// kept in the chain.
	ErrKeriaConnectionBroken = errors.New(app.MsgKeriaConnectionBroken)
	ErrMissingDataOnKeria    = errors.New(app.MsgMissingDataOnKeria)
	ErrFailedToResolveOobi   = errors.New(app.MsgFailedToResolveOobi)
)

// Not-found errors.
var (
	ErrIdentifierNotFound   = errors.New(app.MsgIdentifierNotFound)
	ErrIdentifierIsPending  = errors.New(app.MsgIdentifierIsPending)
	ErrConnectionNotFound   = errors.New(app.MsgConnectionNotFound)
	ErrCredentialNotFound   = errors.New(app.MsgCredentialNotFound)
	ErrNotificationNotFound = errors.New(app.MsgNotificationNotFound)

	ErrExnMessageNotFound                       = errors.New(app.MsgExnMessageNotFound)
	ErrMemberAidNotFound                        = errors.New(app.MsgMemberAidNotFound)
	ErrQueuedGroupDataMissing                   = errors.New(app.MsgQueuedGroupDataMissing)
	ErrMultiSigInceptionExchangeMessageNotFound = errors.New(app.MsgMultiSigInceptionExchangeMessageNotFound)
	ErrUnknownAidsInMultisigIcp                 = errors.New(app.MsgUnknownAidsInMultisigIcp)
)

// Group ceremony conflicts.
var (
	ErrGroupQueuedForOtherMember = errors.New(app.MsgGroupQueuedForOtherMember)
	ErrGroupInceptionMismatch    = errors.New(app.MsgGroupInceptionMismatch)
)
