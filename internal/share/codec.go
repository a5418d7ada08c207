// Package share turns encounter snapshots into URL-safe link payloads and
// back. Payloads are base64url (no padding) over a compact JSON form; links
// made before the compact form existed carry the full-field snapshot JSON
// and still decode.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

const (
	// MaxPayloadLength caps the encoded payload
	MaxPayloadLength = 1500
	// MaxURLLength caps the full share URL
	MaxURLLength = 2000
	// ParamKey is the query parameter carrying the payload
	ParamKey = "share"

	MsgPayloadTooLarge = "Snapshot is too large to share as a link. Try reducing participants."
	MsgURLTooLong      = "Share URL is too long for reliable use. Try reducing encounter size."
	MsgBadURL          = "Unable to build share URL."
)

// EncodeOutput is an encoded payload and its length
type EncodeOutput struct {
	Payload string
	Size    int
}

// Encode writes the snapshot in compact form. A payload longer than
// MaxPayloadLength is refused with an OutOfRange error.
func Encode(snapshot encounter.Snapshot) (*EncodeOutput, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toCompact(snapshot)); err != nil {
		return nil, errors.Wrap(err, "failed to serialize snapshot")
	}

	payload := base64.RawURLEncoding.EncodeToString(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	if len(payload) > MaxPayloadLength {
		return nil, errors.OutOfRange(MsgPayloadTooLarge).
			WithMeta("size", len(payload)).
			WithMeta("limit", MaxPayloadLength)
	}
	return &EncodeOutput{Payload: payload, Size: len(payload)}, nil
}

// Decode reads a payload produced by Encode or by the older full-field
// encoder. Every failure is an InvalidArgument error naming the problem.
func Decode(payload string) (encounter.Snapshot, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(payload), "=")
	if trimmed == "" {
		return encounter.Snapshot{}, errors.InvalidArgument("Snapshot payload is empty.")
	}

	raw, err := base64.RawURLEncoding.DecodeString(trimmed)
	if err != nil {
		return encounter.Snapshot{}, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			"Snapshot payload is not valid base64url.")
	}

	var parsed interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return encounter.Snapshot{}, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			"Snapshot payload is invalid JSON: "+err.Error())
	}

	if m, ok := parsed.(map[string]interface{}); ok {
		if _, legacy := m["version"]; legacy {
			return parse(parsed)
		}
	}

	expanded, err := expandCompact(parsed)
	if err != nil {
		return encounter.Snapshot{}, err
	}
	return parse(expanded)
}

func parse(v interface{}) (encounter.Snapshot, error) {
	snapshot, err := encounter.ParseSnapshot(v)
	if err != nil {
		return encounter.Snapshot{}, errors.Wrap(err, "Snapshot is invalid: "+errors.GetMessage(err))
	}
	return snapshot, nil
}
