package crypto

import (
	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig []byte) bool
	Condition() swap.Condition
}

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key
type PublicKey struct {
	Ed25519 []byte
}

var _ PubKey = (*PublicKey)(nil)

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig []byte) bool {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig)
}

// Condition encodes the public key into a permission condition
func (p *PublicKey) Condition() swap.Condition {
	return swap.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is a shortcut for Condition().Address()
func (p *PublicKey) Address() swap.Address {
	return p.Condition().Address()
}

// PrivateKey is an ed25519 private key
type PrivateKey struct {
	Ed25519 []byte
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message), nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{
		Ed25519: pub,
	}
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{
		Ed25519: priv,
	}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	priv := ed25519.NewKeyFromSeed(seed)
	return &PrivateKey{
		Ed25519: priv,
	}
}
