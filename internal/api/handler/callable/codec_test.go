package callable_test

import (
	"testing"
	"userlookup/internal/api/handler/callable"
	"userlookup/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestDecodeLookupRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "email", body: `{"data":{"email":"a@x.com"}}`, want: "a@x.com"},
		{name: "extra fields ignored", body: `{"auth":null,"data":{"x":[1,2],"email":"a@x.com","y":{}}}`, want: "a@x.com"},
		{name: "empty email", body: `{"data":{"email":""}}`, want: ""},
		{name: "missing email", body: `{"data":{}}`, want: ""},
		{name: "null email", body: `{"data":{"email":null}}`, want: ""},
		{name: "non-string email", body: `{"data":{"email":42}}`, want: ""},
		{name: "null data", body: `{"data":null}`, want: ""},
		{name: "no data field", body: `{"email":"a@x.com"}`, wantErr: true},
		{name: "not an object", body: `["a@x.com"]`, wantErr: true},
		{name: "malformed", body: `{"data":`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "trailing garbage", body: `{"data":{"email":"a@x.com"}} x`, wantErr: true},
		{name: "two objects", body: `{"data":{"email":"a@x.com"}}{"data":{"email":"b@x.com"}}`, wantErr: true},
		{name: "trailing whitespace", body: "{\"data\":{\"email\":\"a@x.com\"}}\n", want: "a@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := callable.DecodeLookupRequest([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, req.Email)
		})
	}
}

func TestEncodeLookupResult(t *testing.T) {
	require.JSONEq(t, `{"result":{"userId":"U123"}}`, string(callable.EncodeLookupResult("U123")))
}

func TestEncodeError(t *testing.T) {
	got := callable.EncodeError(serrors.ErrNotFound, `No "matching" user found.`)
	require.JSONEq(t, `{"error":{"status":"NOT_FOUND","message":"No \"matching\" user found."}}`, string(got))
}
