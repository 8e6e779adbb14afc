package transport

import "testing"

func TestNormalizeLeadStatus(t *testing.T) {
	cases := []struct {
		in   string
		want LeadStatus
	}{
		{"Hot", LeadStatusHot},
		{"Warm", LeadStatusWarm},
		{"Cold", LeadStatusCold},
		{" Hot ", LeadStatusHot},
		{"", LeadStatusWarm},
		{"hot", LeadStatusWarm},
		{"Lukewarm", LeadStatusWarm},
		{"HOT", LeadStatusWarm},
	}
	for _, tc := range cases {
		if got := NormalizeLeadStatus(tc.in); got != tc.want {
			t.Fatalf("NormalizeLeadStatus(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
