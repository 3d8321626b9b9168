package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"greg-hacke/stripclean/meta"
)

func TestPolicy_Classify(t *testing.T) {
	policy := meta.DefaultPolicy()

	tests := []struct {
		name string
		want meta.Threat
	}{
		{"GPSLatitude", meta.ThreatCritical},
		{"GPSInfo", meta.ThreatCritical},
		{"GPSDestLongitudeRef", meta.ThreatCritical},
		{"SerialNumber", meta.ThreatCritical},
		{"InternalSerialNumber", meta.ThreatCritical},
		{"OwnerName", meta.ThreatCritical},
		{"Artist", meta.ThreatCritical},
		{"Copyright", meta.ThreatCritical},
		{"LensModel", meta.ThreatWarning},
		{"Make", meta.ThreatWarning},
		{"Model", meta.ThreatWarning},
		{"Software", meta.ThreatWarning},
		{"DateTimeOriginal", meta.ThreatWarning},
		{"CreateDate", meta.ThreatWarning},
		{"ModifyDate", meta.ThreatWarning},
		{"ImageWidth", meta.ThreatSafe},
		{"Orientation", meta.ThreatSafe},
		{"Unknown_4660", meta.ThreatSafe},
		{"gpslatitude", meta.ThreatSafe},
		{"", meta.ThreatSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Classify(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, policy.Classify(tt.name))
		})
	}
}

func TestPolicy_CriticalWins(t *testing.T) {
	policy := meta.Policy{Critical: []string{"Serial"}, Warning: []string{"Lens"}}
	assert.Equal(t, meta.ThreatCritical, policy.Classify("LensSerial"))
	assert.Equal(t, meta.ThreatWarning, policy.Classify("LensMake"))
	assert.Equal(t, meta.ThreatSafe, policy.Classify("Make"))
}

func TestPolicy_Empty(t *testing.T) {
	assert.Equal(t, meta.ThreatSafe, meta.Policy{}.Classify("GPSLatitude"))
}

func TestThreat_Rank(t *testing.T) {
	assert.Less(t, meta.ThreatCritical.Rank(), meta.ThreatWarning.Rank())
	assert.Less(t, meta.ThreatWarning.Rank(), meta.ThreatSafe.Rank())
}
