package algorithm

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"hashAnalysisBackend/internal/core/domain"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a candidate plaintext against a stored digest.
// An error means the digest could not be checked, not that the candidate is wrong.
type Verifier interface {
	Verify(candidate, digest string) (bool, error)
}

type digestVerifier struct {
	newHash func() hash.Hash
}

func (v digestVerifier) Verify(candidate, digest string) (bool, error) {
	h := v.newHash()
	h.Write([]byte(candidate))
	return strings.EqualFold(hex.EncodeToString(h.Sum(nil)), digest), nil
}

type bcryptVerifier struct{}

func (bcryptVerifier) Verify(candidate, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

var verifiers = map[domain.AlgorithmFamily]Verifier{
	domain.FamilyMD5:    digestVerifier{md5.New},
	domain.FamilySHA1:   digestVerifier{sha1.New},
	domain.FamilySHA256: digestVerifier{sha256.New},
	domain.FamilySHA512: digestVerifier{sha512.New},
	domain.FamilyBcrypt: bcryptVerifier{},
}

// VerifierFor returns the verifier for family. Salted unix crypt formats and
// unknown digests have none.
func VerifierFor(family domain.AlgorithmFamily) (Verifier, bool) {
	v, ok := verifiers[family]
	return v, ok
}
