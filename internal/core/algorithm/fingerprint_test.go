package algorithm

import (
	"hashAnalysisBackend/internal/core/domain"
	"strings"
	"testing"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		name   string
		digest string
		want   domain.AlgorithmFamily
	}{
		{"MD5 lowercase", "5d41402abc4b2a76b9719d911017c592", domain.FamilyMD5},
		{"MD5 uppercase", "5D41402ABC4B2A76B9719D911017C592", domain.FamilyMD5},
		{"SHA1", "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8", domain.FamilySHA1},
		{"SHA256 of empty string", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", domain.FamilySHA256},
		{"SHA512", strings.Repeat("ab", 64), domain.FamilySHA512},
		{"Bcrypt 2b", "$2b$10$abcdefghijklmnopqrstuv", domain.FamilyBcrypt},
		{"Bcrypt 2a", "$2a$12$xyz", domain.FamilyBcrypt},
		{"Bcrypt 2y", "$2y$04$xyz", domain.FamilyBcrypt},
		{"SHA512 crypt", "$6$salt$hash", domain.FamilySHA512Unix},
		{"SHA256 crypt", "$5$salt$hash", domain.FamilySHA256Unix},
		{"MD5 crypt", "$1$salt$hash", domain.FamilyMD5Unix},
		{"DES crypt", "abJnggxhB/yWI", domain.FamilyDESUnix},
		{"Surrounding whitespace is trimmed", "  5d41402abc4b2a76b9719d911017c592\n", domain.FamilyMD5},
		{"32 chars with non-hex", "5d41402abc4b2a76b9719d911017c59z", domain.FamilyUnknown},
		{"Inner whitespace is not hex", "5d41402abc4b2a76 9719d911017c592", domain.FamilyUnknown},
		{"Wrong hex length", "5d41402abc4b2a76b9719d911017c5", domain.FamilyUnknown},
		{"13 chars outside DES charset", "abJnggxhB-yWI", domain.FamilyUnknown},
		{"Empty", "", domain.FamilyUnknown},
		{"Plain text", "not a hash", domain.FamilyUnknown},
		{"Unknown crypt id", "$7$salt$hash", domain.FamilyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identify(tt.digest); got != tt.want {
				t.Errorf("Identify(%q) = %v, want %v", tt.digest, got, tt.want)
			}
		})
	}
}

func TestIdentify_HexPrecedesDES(t *testing.T) {
	// 13 hex chars fit the DES charset too; no hex length is 13 so DES wins
	if got := Identify("0123456789abc"); got != domain.FamilyDESUnix {
		t.Errorf("Identify() = %v, want %v", got, domain.FamilyDESUnix)
	}
}

func TestIdentify_Deterministic(t *testing.T) {
	inputs := []string{"", "$", "$2b$", strings.Repeat("f", 128), "\t\n", "ünïcödé"}
	for _, in := range inputs {
		first := Identify(in)
		for i := 0; i < 3; i++ {
			if got := Identify(in); got != first {
				t.Errorf("Identify(%q) changed between calls: %v then %v", in, first, got)
			}
		}
	}
}
