package crypto

import "github.com/MKhiriev/go-keri-wallet/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects the KERIA passcode (bran) at rest. It knows nothing about
// the network or the record stores; the caller persists the sealed value.
//
// Scheme:
//
//	Salt = 16 random bytes
//	KEK  = Argon2id(password, Salt)
//	Blob = nonce || AES-256-GCM(KEK, passcode)
type Sealer interface {
	// Seal encrypts passcode under a key derived from password with a fresh
	// salt.
	Seal(passcode, password string) (models.SealedPasscode, error)

	// Open decrypts a sealed passcode. A wrong password yields
	// [ErrWrongPassword].
	Open(sealed models.SealedPasscode, password string) (string, error)
}
