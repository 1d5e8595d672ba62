package domain

// SigningKeyPair is an Ed25519 key pair produced by a single generation call.
type SigningKeyPair struct {
	Public  Ed25519Public
	Private Ed25519Private
}

// ExchangeKeyPair is an X25519 key pair produced by a single generation call.
type ExchangeKeyPair struct {
	Public  X25519Public
	Private X25519Private
}
