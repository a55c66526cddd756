package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Encryption event types.
const (
	// TypeEncryptionEncode encrypts data.
	TypeEncryptionEncode event.Type = "encryptionencode"

	// TypeEncryptionDecode decrypts data.
	TypeEncryptionDecode event.Type = "encryptiondecode"
)

// EncryptionEncodeDetail is the detail of Encryption.encode.
type EncryptionEncodeDetail struct {
	// Method is the encryption method, e.g. "aes".
	Method string `json:"method"`

	// Data is the content to process.
	Data any `json:"data"`

	// Passphrase is the key material.
	Passphrase string `json:"passphrase"`
}

// NewEncryptionEncodeEvent creates the Encryption.encode request.
func NewEncryptionEncodeEvent(method string, data any, passphrase string, opts ...event.Option) *event.Request[EncryptionEncodeDetail, string] {
	detail := EncryptionEncodeDetail{
		Method:     method,
		Data:       data,
		Passphrase: passphrase,
	}
	return event.NewRequest[EncryptionEncodeDetail, string](TypeEncryptionEncode, detail, opts...)
}

// EncryptionEncode encrypts data with passphrase.
func EncryptionEncode(ctx context.Context, d event.Dispatcher, method string, data any, passphrase string) (string, error) {
	return event.Call(ctx, d, NewEncryptionEncodeEvent(method, data, passphrase))
}

// EncryptionDecodeDetail is the detail of Encryption.decode.
type EncryptionDecodeDetail struct {
	// Method is the encryption method, e.g. "aes".
	Method string `json:"method"`

	// Data is the content to process.
	Data any `json:"data"`

	// Passphrase is the key material.
	Passphrase string `json:"passphrase"`
}

// NewEncryptionDecodeEvent creates the Encryption.decode request.
func NewEncryptionDecodeEvent(method string, data any, passphrase string, opts ...event.Option) *event.Request[EncryptionDecodeDetail, string] {
	detail := EncryptionDecodeDetail{
		Method:     method,
		Data:       data,
		Passphrase: passphrase,
	}
	return event.NewRequest[EncryptionDecodeDetail, string](TypeEncryptionDecode, detail, opts...)
}

// EncryptionDecode decrypts data with passphrase.
func EncryptionDecode(ctx context.Context, d event.Dispatcher, method string, data any, passphrase string) (string, error) {
	return event.Call(ctx, d, NewEncryptionDecodeEvent(method, data, passphrase))
}

func encryptionEntries() []Entry {
	return []Entry{
		requestEntry[EncryptionEncodeDetail, string]("Encryption.encode", TypeEncryptionEncode),
		requestEntry[EncryptionDecodeDetail, string]("Encryption.decode", TypeEncryptionDecode),
	}
}
