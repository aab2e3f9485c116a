package domain

import "errors"

type AlgorithmFamily string
type AttackType string
type CrackStatus string

const (
	// Hash families, in fingerprint priority order
	FamilyMD5        AlgorithmFamily = "MD5"
	FamilySHA1       AlgorithmFamily = "SHA1"
	FamilySHA256     AlgorithmFamily = "SHA256"
	FamilySHA512     AlgorithmFamily = "SHA512"
	FamilyBcrypt     AlgorithmFamily = "Bcrypt"
	FamilySHA512Unix AlgorithmFamily = "SHA512Unix"
	FamilySHA256Unix AlgorithmFamily = "SHA256Unix"
	FamilyMD5Unix    AlgorithmFamily = "MD5Unix"
	FamilyDESUnix    AlgorithmFamily = "DESUnix"
	FamilyUnknown    AlgorithmFamily = "Unknown"

	// Attack types
	AttackDictionary AttackType = "dictionary"
	AttackBruteForce AttackType = "brute_force"

	// Crack outcomes
	StatusCracked           CrackStatus = "CRACKED"
	StatusExhausted         CrackStatus = "EXHAUSTED"
	StatusUnsupportedFamily CrackStatus = "UNSUPPORTED_FAMILY"
	StatusNotImplemented    CrackStatus = "NOT_IMPLEMENTED"
)

var familyDisplayNames = map[AlgorithmFamily]string{
	FamilyMD5:        "MD5",
	FamilySHA1:       "SHA-1",
	FamilySHA256:     "SHA-256",
	FamilySHA512:     "SHA-512",
	FamilyBcrypt:     "bcrypt",
	FamilySHA512Unix: "SHA-512 (Unix)",
	FamilySHA256Unix: "SHA-256 (Unix)",
	FamilyMD5Unix:    "MD5 (Unix)",
	FamilyDESUnix:    "DES (Unix)",
	FamilyUnknown:    "Unknown",
}

// DisplayName returns the human readable label of the family.
func (f AlgorithmFamily) DisplayName() string {
	if name, ok := familyDisplayNames[f]; ok {
		return name
	}
	return familyDisplayNames[FamilyUnknown]
}

var (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSpecial = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	CharsetHex     = "0123456789abcdef"
	CharsetAll     = CharsetLower + CharsetUpper + CharsetDigits + CharsetSpecial
)

type CrackingError string

const (
	ErrInvalidInput     CrackingError = "INVALID_INPUT"
	ErrTooManyHashes    CrackingError = "TOO_MANY_HASHES"
	ErrWordlistTooLarge CrackingError = "WORDLIST_TOO_LARGE"
	ErrInvalidWordlist  CrackingError = "INVALID_WORDLIST"
	ErrAnalysisNotFound CrackingError = "ANALYSIS_NOT_FOUND"
)

func (e CrackingError) Error() string {
	return string(e)
}

// IsValidationError reports whether err is a client side input problem.
func IsValidationError(err error) bool {
	for _, target := range []CrackingError{ErrInvalidInput, ErrTooManyHashes, ErrWordlistTooLarge, ErrInvalidWordlist} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
