package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/flemzord/chatwrapped/internal/messenger"
	"github.com/flemzord/chatwrapped/internal/textutil"
)

// GenerateChatHistory buckets messages into calendar months and back-fills
// every month of every calendar year in the span with zero-valued entries,
// so the timeline has no gaps even when activity is seasonal. System-sender
// messages are excluded from counting. The result is sorted ascending by
// month key; lexicographic order is correct because keys are zero-padded
// "YYYY-MM".
func GenerateChatHistory(messages []messenger.ParsedMessage, extraSystemSenders []string) []ChatHistoryPoint {
	type bucket struct {
		count   int
		senders map[string]struct{}
	}
	months := make(map[string]*bucket)

	var firstYear, lastYear int
	for _, msg := range messages {
		if textutil.IsSystemSender(msg.SenderName, extraSystemSenders) {
			continue
		}
		ts := time.UnixMilli(msg.Timestamp)
		key := monthKey(ts)

		b, ok := months[key]
		if !ok {
			b = &bucket{senders: make(map[string]struct{})}
			months[key] = b
		}
		b.count++
		b.senders[msg.SenderName] = struct{}{}

		year := ts.Year()
		if firstYear == 0 || year < firstYear {
			firstYear = year
		}
		if year > lastYear {
			lastYear = year
		}
	}

	if len(months) == 0 {
		return []ChatHistoryPoint{}
	}

	for year := firstYear; year <= lastYear; year++ {
		for month := 1; month <= 12; month++ {
			key := fmt.Sprintf("%04d-%02d", year, month)
			if _, ok := months[key]; !ok {
				months[key] = &bucket{senders: make(map[string]struct{})}
			}
		}
	}

	points := make([]ChatHistoryPoint, 0, len(months))
	for key, b := range months {
		points = append(points, ChatHistoryPoint{
			Date:             key,
			MessageCount:     b.count,
			ParticipantCount: len(b.senders),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func monthKey(ts time.Time) string {
	return fmt.Sprintf("%04d-%02d", ts.Year(), int(ts.Month()))
}
