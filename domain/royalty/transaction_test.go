package royalty

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStatusUnmarshal(t *testing.T) {
	cases := map[string]GenerateStatus{
		`"Succes"`:                    GenerateStatusSucceeded,
		`"Success"`:                   GenerateStatusSucceeded,
		`"Succeeded"`:                 GenerateStatusSucceeded,
		`"ErrorInvalidParameters"`:    GenerateStatusErrorInvalidParameters,
		`"ErrorSaleMismatch"`:         GenerateStatusErrorSaleMismatch,
		`"ErrorTransaction"`:          GenerateStatusErrorTransaction,
		`"ErrorRoyaltiesPaid"`:        GenerateStatusErrorRoyaltiesPaid,
		`"ErrorCalculatingRoyalties"`: GenerateStatusErrorCalculatingRoyalties,
		`"SomethingNew"`:              GenerateStatusUnrecognized,
	}
	for in, want := range cases {
		var got GenerateStatus
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, want, got, in)
	}
	var got GenerateStatus
	assert.Error(t, json.Unmarshal([]byte(`3`), &got))
}

func TestGenerateStatusMarshalUsesServiceLiteral(t *testing.T) {
	b, err := json.Marshal(GeneratedTransaction{Status: GenerateStatusSucceeded})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Succes"}`, string(b))
}

func TestSubmitStatusRoundTrip(t *testing.T) {
	for st, lit := range submitStatusLiterals {
		b, err := json.Marshal(st)
		require.NoError(t, err)
		assert.Equal(t, `"`+lit+`"`, string(b))

		var got SubmitStatus
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, st, got)
	}

	var got SubmitResult
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Pending","signature":"sig"}`), &got))
	assert.Equal(t, SubmitStatusUnrecognized, got.Status)
	assert.False(t, got.Confirmed())
}

func TestMissingStatusIsUnrecognized(t *testing.T) {
	var got GeneratedTransaction
	require.NoError(t, json.Unmarshal([]byte(`{"transaction":"00"}`), &got))
	assert.Equal(t, GenerateStatusUnrecognized, got.Status)
	assert.Equal(t, FailureReasonUnrecognizedStatus, FailureReasonForGenerate(got.Status))
}

func TestEveryStatusMapsToReason(t *testing.T) {
	for st := range generateStatusLiterals {
		r := FailureReasonForGenerate(st)
		if st == GenerateStatusSucceeded {
			assert.Equal(t, FailureReasonNone, r)
			continue
		}
		assert.NotEqual(t, FailureReasonNone, r, st.String())
		assert.NotEmpty(t, r.Message(), st.String())
	}
	for st := range submitStatusLiterals {
		r := FailureReasonForSubmit(st)
		if st == SubmitStatusConfirmed {
			assert.Equal(t, FailureReasonNone, r)
			continue
		}
		assert.NotEqual(t, FailureReasonNone, r, st.String())
		assert.NotEmpty(t, r.Message(), st.String())
	}
}
