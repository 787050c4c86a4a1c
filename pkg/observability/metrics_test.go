package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/conform/pkg/schema"
)

func TestMetrics_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	root := schema.NewObject(schema.Required("one", schema.NewLeaf(schema.String())))
	v := schema.NewValidator(root, m.Option())

	assert.NoError(t, v.ValidateJSON([]byte(`{"one": "x"}`)))
	assert.NoError(t, v.Validate(map[string]any{"one": "y"}))
	assert.Error(t, v.ValidateJSON([]byte(`{"one": 1}`)))
	assert.Error(t, v.ValidateJSON([]byte(`{not json`)))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.validations.WithLabelValues("valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues("parse_error")))

	count, err := testutil.GatherAndCount(reg, "conform_validation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
