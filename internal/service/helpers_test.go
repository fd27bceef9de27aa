package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/bus"
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/mock"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testVersion = "1.2.0.3"

// testEnv wires services against in-memory storages, a mocked agent and an
// event recorder. The wallet starts online.
type testEnv struct {
	storages *store.Storages
	keria    *mock.MockKeriaAdapter
	events   *bus.Recorder
	conn     *Connectivity
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller) *testEnv {
	t.Helper()
	conn := NewConnectivity()
	conn.SetOnline(true)

	return &testEnv{
		storages: store.NewMemoryStorages(),
		keria:    mock.NewMockKeriaAdapter(ctrl),
		events:   &bus.Recorder{},
		conn:     conn,
	}
}

func (e *testEnv) operationSvc() OperationService {
	return NewOperationService(e.storages, e.keria, e.events, e.conn, logger.Nop())
}

func (e *testEnv) connectionSvc() *connectionService {
	svc := NewConnectionService(e.storages, e.operationSvc(), e.keria, e.events, e.conn,
		config.WalletKeria{OobiResolveTimeout: 200 * time.Millisecond}, logger.Nop()).(*connectionService)
	svc.pollInterval = 5 * time.Millisecond
	return svc
}

func (e *testEnv) identifierSvc() *identifierService {
	return NewIdentifierService(e.storages, e.connectionSvc(), e.operationSvc(), e.keria, e.events, e.conn,
		config.WalletApp{IdentifierVersion: testVersion}, logger.Nop()).(*identifierService)
}

func (e *testEnv) multisigSvc() *multiSigService {
	return NewMultisigService(e.storages, e.operationSvc(), e.identifierSvc(), e.keria, e.events, e.conn,
		config.WalletApp{IdentifierVersion: testVersion}, logger.Nop()).(*multiSigService)
}

func (e *testEnv) saveIdentifier(t *testing.T, meta models.IdentifierMetadata) {
	t.Helper()
	if meta.CreationStatus == "" {
		meta.CreationStatus = models.CreationStatusComplete
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, e.storages.Identifiers.Save(context.Background(), meta))
}

func (e *testEnv) saveContact(t *testing.T, contact models.Contact) {
	t.Helper()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, e.storages.Contacts.Save(context.Background(), contact))
}

func (e *testEnv) savePair(t *testing.T, identifier, contactID string, status models.CreationStatus) {
	t.Helper()
	require.NoError(t, e.storages.ConnectionPairs.Save(context.Background(), models.ConnectionPair{
		ID:             models.ConnectionPairID(identifier, contactID),
		ContactID:      contactID,
		Identifier:     identifier,
		CreationStatus: status,
		CreatedAt:      time.Now().UTC(),
	}))
}

// witnessIurls returns n distinct witness introduction URLs.
func witnessIurls(n int) []string {
	iurls := make([]string, 0, n)
	for i := 0; i < n; i++ {
		iurls = append(iurls, fmt.Sprintf("http://witness-%d:5642/oobi/BWit%02d/controller?name=Wit%d", i, i, i))
	}
	return iurls
}

func witnessPrefixes(n int) []string {
	prefixes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		prefixes = append(prefixes, fmt.Sprintf("BWit%02d", i))
	}
	return prefixes
}
