package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"greg-hacke/stripclean/exif"
	"greg-hacke/stripclean/meta"
)

func TestNormalize(t *testing.T) {
	gps := &exif.IFD{Entries: []exif.Entry{
		{ID: 0, Value: []byte{2, 2, 0, 0}},
		{ID: 1, Value: "N"},
		{ID: 2, Value: []exif.Rational{{Num: 40, Den: 1}, {Num: 26, Den: 1}, {Num: 0, Den: 1}}},
	}}

	tests := []struct {
		name     string
		in       any
		want     string
		fallback bool
	}{
		{"string", "Canon", "Canon", false},
		{"int", 6, "6", false},
		{"float", 2.5, "2.5", false},
		{"whole float", 3.0, "3.0", false},
		{"rational", exif.Rational{Num: 1, Den: 250}, "0.004", false},
		{"whole rational", exif.Rational{Num: 72, Den: 1}, "72.0", false},
		{"signed rational", exif.Rational{Num: -1, Den: 3}, "-0.3333333333333333", false},
		{"zero denominator", exif.Rational{Num: 1, Den: 0}, "nan", false},
		{"bytes", []byte("0232"), "0232", false},
		{"bytes with bad utf8 dropped", []byte("ab\xffc"), "abc", false},
		{"empty bytes", []byte{}, "", false},
		{"undecodable bytes", []byte{0xFF, 0xFE, 0x80}, meta.BinaryPlaceholder, true},
		{"int list", []int{10, 20}, "['10', '20']", false},
		{"rational list", []exif.Rational{{Num: 1, Den: 2}, {Num: 4, Den: 2}}, "['0.5', '2.0']", false},
		{"float list", []float64{1, 0.5}, "['1.0', '0.5']", false},
		{"string list", []string{"it's", "b"}, `["it's", 'b']`, false},
		{"nested mapping", gps, "{0: '\x02\x02\x00\x00', 1: 'N', 2: ['40.0', '26.0', '0.0']}", false},
		{"nil mapping", (*exif.IFD)(nil), "{}", false},
		{"nil", nil, "None", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := meta.Normalize(tt.in)
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, tt.fallback, got.Fallback)
		})
	}
}
