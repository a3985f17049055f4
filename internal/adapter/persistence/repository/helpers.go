package repository

import (
	"sort"
	"strings"
	"time"

	"inss_refin/internal/domain/entities"
)

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// sortNewestFirst orders by creation date, proposal number breaking ties.
func sortNewestFirst(records []entities.DigitizationRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ProposalNumber > records[j].ProposalNumber
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

func terminalStatuses() []entities.DigitizationStatus {
	return []entities.DigitizationStatus{
		entities.DigitizationStatusApproved,
		entities.DigitizationStatusRejected,
		entities.DigitizationStatusCancelled,
	}
}

// escapeLike neutralizes LIKE wildcards typed by operators.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer("%", `\%`, "_", `\_`)
