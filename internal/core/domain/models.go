package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// DigestRecord is a single digest under analysis, trimmed of surrounding whitespace.
type DigestRecord struct {
	Value string
}

func NewDigestRecord(raw string) DigestRecord {
	return DigestRecord{Value: strings.TrimSpace(raw)}
}

func (d DigestRecord) String() string {
	return d.Value
}

func (d DigestRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value)
}

func (d *DigestRecord) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = NewDigestRecord(raw)
	return nil
}

// CrackOutcome is the result of one cracking attempt. Plaintext is set iff Cracked.
type CrackOutcome struct {
	Cracked   bool        `json:"cracked"`
	Plaintext *string     `json:"plaintext"`
	Attempts  int64       `json:"attempts"`
	Status    CrackStatus `json:"status"`
}

type AnalysisResult struct {
	Digest        DigestRecord    `json:"hash_value"`
	Family        AlgorithmFamily `json:"hash_type"`
	StrengthScore int             `json:"strength_score"`
	TimeTaken     float64         `json:"time_taken"`
	CrackOutcome
}

type BatchSummary struct {
	TotalHashes     int     `json:"total_hashes"`
	TotalCracked    int     `json:"total_cracked"`
	CrackRate       float64 `json:"crack_rate"`
	AverageStrength float64 `json:"average_strength"`
	TotalTime       float64 `json:"total_time"`
	Summary         string  `json:"summary"`
}

type AnalysisRequest struct {
	Hashes         []string   `json:"hashes"`
	AttackType     AttackType `json:"attack_type"`
	CustomWordlist []string   `json:"custom_wordlist,omitempty"`
	MaxLength      int        `json:"max_length,omitempty"`
}

// HashAnalysis is a finished batch as handed to persistence.
type HashAnalysis struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Results   []AnalysisResult `json:"results"`
	BatchSummary
}

type HashTypeCount struct {
	HashType AlgorithmFamily `json:"hash_type"`
	Count    int             `json:"count"`
}

type HashStats struct {
	TotalAnalyses       int64           `json:"total_analyses"`
	TotalHashesAnalyzed int             `json:"total_hashes_analyzed"`
	AverageCrackRate    float64         `json:"average_crack_rate"`
	MostCommonHashTypes []HashTypeCount `json:"most_common_hash_types"`
	WeakestPasswords    []string        `json:"weakest_passwords"`
}

type ResourceMetrics struct {
	CPUUsage       float64   `json:"cpuUsage"`
	MemoryUsageMB  int64     `json:"memoryUsageMb"`
	SystemMemUsed  float64   `json:"systemMemoryUsedPercent"`
	AttemptsPerSec int64     `json:"attemptsPerSec"`
	TotalAttempts  int64     `json:"totalAttempts"`
	CompletedTasks int64     `json:"completedTasks"`
	TasksPerSec    int64     `json:"tasksPerSec"`
	ActiveThreads  int       `json:"activeThreads"`
	Workers        int       `json:"workers"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// CrackingSettings tunes an attack. Only brute force reads them.
type CrackingSettings struct {
	MaxLength    int
	CharacterSet string
}
