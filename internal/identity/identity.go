// Package identity turns the bearer token from a connection URL into the
// identity of the connecting client.
//
// Tokens are PASETO v2.public tokens whose payload is the standard base64
// encoding of a protobuf ReplToken. Only the Presenced sub-message is read.
package identity

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/goval-community/homeval/internal/logger"
)

const (
	header = "v2.public."

	// ReplToken.presenced
	fieldPresenced protowire.Number = 6
	// Presenced.bearer_id and Presenced.bearer_name
	fieldBearerID   protowire.Number = 1
	fieldBearerName protowire.Number = 2
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrSignature    = errors.New("token signature mismatch")
)

// ClientInfo is the identity of a connected client. Secure is only true
// when the token signature was verified.
type ClientInfo struct {
	Username string
	ID       uint32
	Secure   bool
}

// Default is the identity used when a token cannot be parsed.
func Default() ClientInfo {
	return ClientInfo{Username: "homeval-user", ID: 23054564}
}

// Resolver parses tokens, verifying signatures when it holds a public key.
type Resolver struct {
	key ed25519.PublicKey
	log *logger.Logger
}

// NewResolver creates a resolver. publicKeyHex may be empty, in which case
// signatures are never checked.
func NewResolver(publicKeyHex string) (*Resolver, error) {
	r := &Resolver{log: logger.Named("identity")}
	if publicKeyHex == "" {
		return r, nil
	}
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}
	r.key = ed25519.PublicKey(key)
	return r, nil
}

// Resolve never fails: any problem with the token yields Default.
func (r *Resolver) Resolve(token string) ClientInfo {
	info, err := r.parse(token)
	if err != nil {
		r.log.Debug("falling back to default identity: %v", err)
		return Default()
	}
	return info
}

// Parse decodes a token without verifying it.
func Parse(token string) (ClientInfo, error) {
	return (&Resolver{}).parse(token)
}

func (r *Resolver) parse(token string) (ClientInfo, error) {
	msg, footer, sig, err := split(token)
	if err != nil {
		return ClientInfo{}, err
	}

	secure := false
	if r.key != nil {
		if ed25519.Verify(r.key, pae([]byte(header), msg, footer), sig) {
			secure = true
		} else {
			r.log.Warn("token signature did not verify, treating client as insecure")
		}
	}

	payload, err := base64.StdEncoding.DecodeString(string(msg))
	if err != nil {
		return ClientInfo{}, fmt.Errorf("%w: payload: %v", ErrInvalidToken, err)
	}
	info, err := decodeReplToken(payload)
	if err != nil {
		return ClientInfo{}, err
	}
	info.Secure = secure
	return info, nil
}

func split(token string) (msg, footer, sig []byte, err error) {
	if !strings.HasPrefix(token, header) {
		return nil, nil, nil, fmt.Errorf("%w: unsupported header", ErrInvalidToken)
	}
	parts := strings.Split(strings.TrimPrefix(token, header), ".")
	if len(parts) > 2 {
		return nil, nil, nil, fmt.Errorf("%w: too many segments", ErrInvalidToken)
	}

	body, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if len(body) < ed25519.SignatureSize {
		return nil, nil, nil, fmt.Errorf("%w: too short", ErrInvalidToken)
	}
	if len(parts) == 2 {
		if footer, err = base64.RawURLEncoding.DecodeString(parts[1]); err != nil {
			return nil, nil, nil, fmt.Errorf("%w: footer: %v", ErrInvalidToken, err)
		}
	}
	cut := len(body) - ed25519.SignatureSize
	return body[:cut], footer, body[cut:], nil
}

// pae is the PASETO pre-authentication encoding.
func pae(pieces ...[]byte) []byte {
	out := binary.LittleEndian.AppendUint64(nil, uint64(len(pieces)))
	for _, p := range pieces {
		out = binary.LittleEndian.AppendUint64(out, uint64(len(p)))
		out = append(out, p...)
	}
	return out
}

func decodeReplToken(b []byte) (ClientInfo, error) {
	info := Default()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ClientInfo{}, fmt.Errorf("%w: %v", ErrInvalidToken, protowire.ParseError(n))
		}
		b = b[n:]
		if num == fieldPresenced && typ == protowire.BytesType {
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return ClientInfo{}, fmt.Errorf("%w: %v", ErrInvalidToken, protowire.ParseError(m))
			}
			if err := decodePresenced(v, &info); err != nil {
				return ClientInfo{}, err
			}
			b = b[m:]
			continue
		}
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return ClientInfo{}, fmt.Errorf("%w: %v", ErrInvalidToken, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return info, nil
}

func decodePresenced(b []byte, info *ClientInfo) error {
	info.Username = ""
	info.ID = 0
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidToken, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == fieldBearerID && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return fmt.Errorf("%w: %v", ErrInvalidToken, protowire.ParseError(m))
			}
			info.ID = uint32(v)
			b = b[m:]
		case num == fieldBearerName && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return fmt.Errorf("%w: %v", ErrInvalidToken, protowire.ParseError(m))
			}
			info.Username = string(v)
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("%w: %v", ErrInvalidToken, protowire.ParseError(m))
			}
			b = b[m:]
		}
	}
	return nil
}

// Mint builds a token carrying info. With a nil key the signature is all
// zeroes, which is enough for servers that do not verify.
func Mint(info ClientInfo, key ed25519.PrivateKey) string {
	var presenced []byte
	presenced = protowire.AppendTag(presenced, fieldBearerID, protowire.VarintType)
	presenced = protowire.AppendVarint(presenced, uint64(info.ID))
	presenced = protowire.AppendTag(presenced, fieldBearerName, protowire.BytesType)
	presenced = protowire.AppendString(presenced, info.Username)

	var repl []byte
	repl = protowire.AppendTag(repl, fieldPresenced, protowire.BytesType)
	repl = protowire.AppendBytes(repl, presenced)

	msg := []byte(base64.StdEncoding.EncodeToString(repl))
	sig := make([]byte, ed25519.SignatureSize)
	if key != nil {
		sig = ed25519.Sign(key, pae([]byte(header), msg, nil))
	}
	return header + base64.RawURLEncoding.EncodeToString(append(msg, sig...))
}
