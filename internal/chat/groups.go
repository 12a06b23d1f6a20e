// ABOUTME: Sidebar grouping and filtering for the conversation list
// ABOUTME: Buckets are Important/Today/Yesterday/Earlier, first match wins

package chat

import (
	"sort"
	"strings"
	"time"
)

// Bucket names a sidebar display group
type Bucket string

const (
	BucketImportant Bucket = "Important"
	BucketToday     Bucket = "Today"
	BucketYesterday Bucket = "Yesterday"
	BucketEarlier   Bucket = "Earlier"
)

// bucketOrder is the fixed render order for non-empty buckets
var bucketOrder = []Bucket{BucketImportant, BucketToday, BucketYesterday, BucketEarlier}

// Group is one non-empty sidebar bucket
type Group struct {
	Bucket        Bucket
	Conversations []Conversation
}

// Filter returns the conversations whose title contains the query
// (case-insensitive substring, no ranking) and whose archive state matches
// the toggle: archived-only when showArchived, non-archived-only otherwise.
func Filter(convs []Conversation, query string, showArchived bool) []Conversation {
	query = strings.ToLower(query)
	var out []Conversation
	for _, c := range convs {
		if !strings.Contains(strings.ToLower(c.Title), query) {
			continue
		}
		if c.Archived != showArchived {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SplitByCategory partitions conversations into the chat and assistant sets.
func SplitByCategory(convs []Conversation) (chats, assistants []Conversation) {
	for _, c := range convs {
		if c.Category == CategoryAssistant {
			assistants = append(assistants, c)
		} else {
			chats = append(chats, c)
		}
	}
	return chats, assistants
}

// GroupByDate buckets conversations for display. An important, non-archived
// conversation lands in Important regardless of recency; the rest bucket by
// updated_at against the start of today and the start of yesterday. Empty
// buckets are dropped; within a bucket the sort is updated_at descending,
// stable for equal timestamps.
func GroupByDate(convs []Conversation, now time.Time) []Group {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.Add(-24 * time.Hour)

	buckets := map[Bucket][]Conversation{}
	for _, c := range convs {
		b := bucketFor(c, today, yesterday)
		buckets[b] = append(buckets[b], c)
	}

	var groups []Group
	for _, b := range bucketOrder {
		convs := buckets[b]
		if len(convs) == 0 {
			continue
		}
		sort.SliceStable(convs, func(i, j int) bool {
			return convs[i].UpdatedAt > convs[j].UpdatedAt
		})
		groups = append(groups, Group{Bucket: b, Conversations: convs})
	}
	return groups
}

func bucketFor(c Conversation, today, yesterday time.Time) Bucket {
	if c.Important && !c.Archived {
		return BucketImportant
	}
	updated := time.UnixMilli(c.UpdatedAt)
	switch {
	case !updated.Before(today):
		return BucketToday
	case !updated.Before(yesterday):
		return BucketYesterday
	default:
		return BucketEarlier
	}
}
