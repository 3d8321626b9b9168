package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		id        uint16
		want      string
	}{
		{"main make", NamespaceExif, 0x010F, "Make"},
		{"main exif pointer", NamespaceExif, 0x8769, "ExifOffset"},
		{"main gps pointer", NamespaceExif, 0x8825, "GPSInfo"},
		{"main lens model", NamespaceExif, 0xA434, "LensModel"},
		{"gps latitude", NamespaceGPS, 0x0002, "GPSLatitude"},
		{"gps version", NamespaceGPS, 0x0000, "GPSVersionID"},
		{"unknown main", NamespaceExif, 0x1234, "Unknown_4660"},
		{"unknown gps", NamespaceGPS, 0x00FF, "Unknown_255"},
		{"unknown namespace", "XMP", 0x010F, "Unknown_271"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.namespace, tt.id))
		})
	}
}

func TestResolve_NamespacesAreSeparate(t *testing.T) {
	// 0x0001 is GPSLatitudeRef in the GPS table but means nothing in IFD0.
	assert.Equal(t, "GPSLatitudeRef", Resolve(NamespaceGPS, 0x0001))
	assert.Equal(t, "Unknown_1", Resolve(NamespaceExif, 0x0001))
}

func TestResolve_UnknownIsInjective(t *testing.T) {
	seen := make(map[string]uint16)
	for id := uint16(0xF000); id < 0xF100; id++ {
		name := Resolve(NamespaceExif, id)
		if prev, dup := seen[name]; dup {
			t.Fatalf("ids %d and %d both resolved to %q", prev, id, name)
		}
		seen[name] = id
	}
}

func TestKeyAndGetTag(t *testing.T) {
	assert.Equal(t, "0x010F", Key(0x010F))
	assert.Equal(t, "0x0000", Key(0))

	def, ok := GetTag(NamespaceExif, "0xA431")
	require.True(t, ok)
	assert.Equal(t, "SerialNumber", def.Name)
	assert.Equal(t, "string", def.Format)

	_, ok = GetTag("nope", "0xA431")
	assert.False(t, ok)
}

func TestSorted(t *testing.T) {
	defs := Sorted(NamespaceGPS)
	require.Len(t, defs, len(GPS_Main_Tags.Tags))
	assert.Equal(t, "GPSVersionID", defs[0].Name)
	for i := 1; i < len(defs); i++ {
		assert.Less(t, defs[i-1].ID, defs[i].ID)
	}
	assert.Nil(t, Sorted("nope"))
}
