package algorithm

import (
	"hashAnalysisBackend/internal/core/domain"
	"regexp"
	"strings"
)

var (
	hexPattern      = regexp.MustCompile(`^[a-fA-F0-9]+$`)
	desCryptPattern = regexp.MustCompile(`^[a-zA-Z0-9./]+$`)
)

type hexSignature struct {
	length int
	family domain.AlgorithmFamily
}

type prefixSignature struct {
	prefixes []string
	family   domain.AlgorithmFamily
}

// Raw hex digests are checked before the modular crypt prefixes.
var hexSignatures = []hexSignature{
	{32, domain.FamilyMD5},
	{40, domain.FamilySHA1},
	{64, domain.FamilySHA256},
	{128, domain.FamilySHA512},
}

var prefixSignatures = []prefixSignature{
	{[]string{"$2b$", "$2a$", "$2y$"}, domain.FamilyBcrypt},
	{[]string{"$6$"}, domain.FamilySHA512Unix},
	{[]string{"$5$"}, domain.FamilySHA256Unix},
	{[]string{"$1$"}, domain.FamilyMD5Unix},
}

const desCryptLength = 13

// Identify classifies a digest by its textual shape. Unmatched input is FamilyUnknown.
func Identify(digest string) domain.AlgorithmFamily {
	digest = strings.TrimSpace(digest)

	for _, sig := range hexSignatures {
		if len(digest) == sig.length && hexPattern.MatchString(digest) {
			return sig.family
		}
	}

	for _, sig := range prefixSignatures {
		for _, prefix := range sig.prefixes {
			if strings.HasPrefix(digest, prefix) {
				return sig.family
			}
		}
	}

	if len(digest) == desCryptLength && desCryptPattern.MatchString(digest) {
		return domain.FamilyDESUnix
	}

	return domain.FamilyUnknown
}
