package callable

import (
	"io"
	"userlookup/pkg/domain"
	"userlookup/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// LookupRequest is the data payload of a getUserIdByEmail call.
type LookupRequest struct {
	// Email is empty when the field is absent, null or not a string.
	Email string
}

// DecodeLookupRequest parses a {"data": {"email": ...}} envelope. A body that
// is not exactly one JSON object, or has no data field, is an error. Unknown
// fields are ignored.
func DecodeLookupRequest(body []byte) (LookupRequest, error) {
	var (
		req     LookupRequest
		hasData bool
	)

	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "data" {
			return d.Skip()
		}
		hasData = true

		if d.Next() != jx.Object {
			return d.Skip()
		}

		return d.Obj(func(d *jx.Decoder, key string) error {
			if key != "email" || d.Next() != jx.String {
				return d.Skip()
			}

			email, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "email")
			}
			req.Email = email

			return nil
		})
	}); err != nil {
		return LookupRequest{}, errors.Wrap(err, "decode envelope")
	}
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return LookupRequest{}, errors.New("unexpected data after envelope")
	}
	if !hasData {
		return LookupRequest{}, errors.New("missing data field")
	}

	return req, nil
}

// EncodeLookupResult renders {"result": {"userId": id}}.
func EncodeLookupResult(id domain.UserID) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("result", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("userId", func(e *jx.Encoder) {
					e.Str(id.String())
				})
			})
		})
	})

	return e.Bytes()
}

// EncodeError renders {"error": {"status": kind, "message": message}}.
func EncodeError(kind serrors.Kind, message string) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("status", func(e *jx.Encoder) {
					e.Str(kind.Error())
				})
				e.Field("message", func(e *jx.Encoder) {
					e.Str(message)
				})
			})
		})
	})

	return e.Bytes()
}
