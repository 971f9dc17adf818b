// Package resourceindex maintains the canonical conference → talk →
// resource-URL lookup document (conference_resources.json).
package resourceindex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// GospelLibrary is the resource name every talk gets on first insertion.
const GospelLibrary = "Gospel Library"

// Index maps conference keys ("2023-October") to talk IDs
// ("2023/10/12nelson") to named resource URLs.
type Index map[string]map[string]map[string]string

// TalkRef identifies one talk to merge: its index ID and canonical Gospel
// Library URL.
type TalkRef struct {
	TalkID       string
	CanonicalURL string
}

// Merge inserts new talks under the given conference key. Talk IDs already
// present are left untouched (first-write-wins per talk); absent ones get a
// single Gospel Library entry. The result is deterministic regardless of the
// order of newTalks.
func Merge(index Index, newTalks []TalkRef, conferenceKey string) Index {
	if index == nil {
		index = Index{}
	}

	conf, ok := index[conferenceKey]
	if !ok {
		conf = map[string]map[string]string{}
		index[conferenceKey] = conf
	}

	for _, ref := range newTalks {
		if _, exists := conf[ref.TalkID]; exists {
			continue
		}
		conf[ref.TalkID] = map[string]string{GospelLibrary: ref.CanonicalURL}
	}

	return index
}

// SetResource fills a named resource for a talk, creating the conference and
// talk entries as needed. An already-set name is never overwritten.
func (idx Index) SetResource(conferenceKey, talkID, name, url string) {
	conf, ok := idx[conferenceKey]
	if !ok {
		conf = map[string]map[string]string{}
		idx[conferenceKey] = conf
	}
	talk, ok := conf[talkID]
	if !ok {
		talk = map[string]string{}
		conf[talkID] = talk
	}
	if _, exists := talk[name]; exists {
		return
	}
	talk[name] = url
}

// monthNumbers orders conference keys chronologically within a year.
var monthNumbers = map[string]int{
	"January": 1, "February": 2, "March": 3, "April": 4,
	"May": 5, "June": 6, "July": 7, "August": 8,
	"September": 9, "October": 10, "November": 11, "December": 12,
}

// conferenceSortKey splits "<year>-<MonthName>" into its numeric parts.
// Unparseable keys sort first by year 0.
func conferenceSortKey(key string) (year, month int) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	year, _ = strconv.Atoi(parts[0])
	month = monthNumbers[parts[1]]
	return year, month
}

// SortedConferenceKeys returns the conference keys ordered by
// (year ascending, month ascending).
func (idx Index) SortedConferenceKeys() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		yi, mi := conferenceSortKey(keys[i])
		yj, mj := conferenceSortKey(keys[j])
		if yi != yj {
			return yi < yj
		}
		if mi != mj {
			return mi < mj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// MarshalJSON writes the index with conference keys in chronological order
// and talk IDs in lexicographic order, so the persisted document is stable.
func (idx Index) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, confKey := range idx.SortedConferenceKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(&buf, confKey); err != nil {
			return nil, err
		}

		conf := idx[confKey]
		talkIDs := make([]string, 0, len(conf))
		for id := range conf {
			talkIDs = append(talkIDs, id)
		}
		sort.Strings(talkIDs)

		buf.WriteByte('{')
		for j, talkID := range talkIDs {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONKey(&buf, talkID); err != nil {
				return nil, err
			}
			// Resource maps are small; encoding/json already sorts map keys.
			resources, err := json.Marshal(conf[talkID])
			if err != nil {
				return nil, err
			}
			buf.Write(resources)
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("encode key %q: %w", key, err)
	}
	buf.Write(encoded)
	buf.WriteByte(':')
	return nil
}
