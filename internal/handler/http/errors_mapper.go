package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
)

// errorStatusMap is checked in order; wrapped chains such as
// "connection broken: not found" must hit the connectivity entry first.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrKeriaConnectionBroken, http.StatusServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidThreshold, http.StatusBadRequest},
	{service.ErrOobiInvalid, http.StatusBadRequest},
	{service.ErrNormalConnectionRequiresSharedIdentifier, http.StatusBadRequest},
	{service.ErrMissingGroupMetadata, http.StatusBadRequest},
	{service.ErrCannotRotateGroup, http.StatusBadRequest},
	{service.ErrOnlyAllowGroupInitiator, http.StatusForbidden},
	{service.ErrOnlyAllowLinkedContacts, http.StatusForbidden},

	{service.ErrIdentifierIsPending, http.StatusConflict},
	{service.ErrIdentifierNotFound, http.StatusNotFound},
	{service.ErrConnectionNotFound, http.StatusNotFound},
	{service.ErrCredentialNotFound, http.StatusNotFound},
	{service.ErrNotificationNotFound, http.StatusNotFound},
	{service.ErrExnMessageNotFound, http.StatusNotFound},
	{service.ErrMemberAidNotFound, http.StatusNotFound},
	{service.ErrMultiSigInceptionExchangeMessageNotFound, http.StatusNotFound},
	{service.ErrQueuedGroupDataMissing, http.StatusNotFound},
	{service.ErrUnknownAidsInMultisigIcp, http.StatusUnprocessableEntity},
	{service.ErrGroupInceptionMismatch, http.StatusUnprocessableEntity},
	{service.ErrGroupQueuedForOtherMember, http.StatusConflict},

	{service.ErrInsufficientWitnessesAvailable, http.StatusBadGateway},
	{service.ErrMisconfiguredAgentConfiguration, http.StatusBadGateway},
	{service.ErrMissingDataOnKeria, http.StatusBadGateway},
	{service.ErrFailedToResolveOobi, http.StatusBadGateway},

	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusConflict},
	{adapter.ErrNotFound, http.StatusNotFound},

	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrRecordAlreadyExists, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
