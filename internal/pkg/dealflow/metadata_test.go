package dealflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeMetadata(t *testing.T) {
	t.Parallel()

	existing := map[string]interface{}{
		MetaContractURL: "https://contracts.example.com/1.pdf",
		MetaBrandSigned: true,
	}
	patch := map[string]interface{}{
		MetaBrandSigned:    false,
		MetaTrackingNumber: "DHL42",
	}

	merged := MergeMetadata(existing, patch)

	assert.Equal(t, "https://contracts.example.com/1.pdf", merged[MetaContractURL])
	assert.Equal(t, false, merged[MetaBrandSigned], "patch wins on conflict")
	assert.Equal(t, "DHL42", merged[MetaTrackingNumber])

	// inputs stay untouched
	assert.Equal(t, true, existing[MetaBrandSigned])
	assert.NotContains(t, existing, MetaTrackingNumber)
	assert.NotContains(t, patch, MetaContractURL)
}

func TestMergeMetadataNilInputs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, MergeMetadata(nil, nil))
	assert.Equal(t, map[string]interface{}{"a": 1}, MergeMetadata(nil, map[string]interface{}{"a": 1}))
	assert.Equal(t, map[string]interface{}{"a": 1}, MergeMetadata(map[string]interface{}{"a": 1}, nil))
}

func TestSignaturesComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		meta map[string]interface{}
		want bool
	}{
		{name: "nil metadata", meta: nil, want: false},
		{name: "both booleans", meta: map[string]interface{}{MetaBrandSigned: true, MetaCreatorSigned: true}, want: true},
		{name: "json decodes flags as strings", meta: map[string]interface{}{MetaBrandSigned: "true", MetaCreatorSigned: "true"}, want: true},
		{name: "mixed forms", meta: map[string]interface{}{MetaBrandSigned: true, MetaCreatorSigned: "true"}, want: true},
		{name: "one missing", meta: map[string]interface{}{MetaBrandSigned: true}, want: false},
		{name: "explicit false", meta: map[string]interface{}{MetaBrandSigned: true, MetaCreatorSigned: false}, want: false},
		{name: "string false", meta: map[string]interface{}{MetaBrandSigned: "true", MetaCreatorSigned: "false"}, want: false},
		{name: "unexpected type", meta: map[string]interface{}{MetaBrandSigned: 1, MetaCreatorSigned: true}, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SignaturesComplete(tc.meta))
		})
	}
}
