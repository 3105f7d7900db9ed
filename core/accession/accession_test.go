package accession

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"refY.fasta", "refY"},
		{"accZ.fna", "accZ"},
		{"plasmids/NC_012345_1.fasta.gz", "NC_012345_1"},
		{"NC_012345_1_extra_junk", "NC_012345_1"},
		{"sample.fa", "sample"},
		{"plain", "plain"},
		{"  padded \n", "padded"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
