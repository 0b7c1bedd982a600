package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"15s"`), &d))
	require.Equal(t, 15*time.Second, d.Duration)
}

func TestDuration_UnmarshalNanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`3000000000`), &d))
	require.Equal(t, 3*time.Second, d.Duration)
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
	require.Error(t, json.Unmarshal([]byte(`"bogus"`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(Duration{Duration: 2 * time.Minute})
	require.NoError(t, err)
	require.JSONEq(t, `"2m0s"`, string(out))
}
