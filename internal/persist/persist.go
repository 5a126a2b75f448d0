// Package persist reads and writes the dataset's JSON snapshot file (spec
// §4.7). Each top-level property is a key; the value shape distinguishes
// Strings, Lists, and SortedSets so a single read pass can rebuild every
// entry without an explicit type tag in the file.
package persist

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/cch137/kvdb/internal/store"
)

// Save serialises every live entry in s to path as a single JSON object,
// written atomically so a crash mid-write can never leave a torn file
// (spec §4.7). Snapshotting traverses both tables even mid-rehash; the
// result is never partial because the caller holds the worker's exclusive
// access to s while Save runs. The write is additionally guarded by an
// exclusive file lock on a sidecar path, so a stray second process running
// Save or Load against the same snapshot never races this one.
func Save(path string, s *store.Store) error {
	lock, err := acquireLock(path)
	if err != nil {
		return fmt.Errorf("lock snapshot %s: %w", path, err)
	}
	defer lock.unlock()

	obj := make(map[string]json.RawMessage)

	var walkErr error

	s.Walk(func(snap store.Snapshot) {
		if walkErr != nil {
			return
		}

		var (
			raw []byte
			err error
		)

		switch snap.Tag {
		case store.TagString:
			raw, err = json.Marshal(snap.Str)
		case store.TagList:
			items := snap.List
			if items == nil {
				items = []string{}
			}

			raw, err = json.Marshal(items)
		case store.TagSortedSet:
			members := snap.ZSet
			if members == nil {
				members = []store.Member{}
			}

			raw, err = json.Marshal(members)
		default:
			err = fmt.Errorf("key %q: unsupported tag %v", snap.Key, snap.Tag)
		}

		if err != nil {
			walkErr = fmt.Errorf("encode key %q: %w", snap.Key, err)
			return
		}

		obj[snap.Key] = raw
	})

	if walkErr != nil {
		return walkErr
	}

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := atomic.WriteFile(path, strings.NewReader(string(data))); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}

	return nil
}

// Load reads path and restores every entry it describes into s. A missing
// file yields an empty store without error, and so does a malformed one: on
// any parse failure Load logs a warning and returns nil without touching s,
// rather than surfacing the error to the caller (spec §4.7: "malformed or
// missing file yields an empty store without error (a warning is
// permitted)"). Values may contain JSONC comments/trailing commas,
// standardised via hujson before decoding.
func Load(path string, s *store.Store) error {
	lock, err := acquireLock(path)
	if err != nil {
		return fmt.Errorf("lock snapshot %s: %w", path, err)
	}
	defer lock.unlock()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("read snapshot %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		log.Printf("persist: %s is malformed, starting with an empty store: %v", path, err)
		return nil
	}

	var obj map[string]json.RawMessage

	if err := json.Unmarshal(standardized, &obj); err != nil {
		log.Printf("persist: %s is malformed, starting with an empty store: %v", path, err)
		return nil
	}

	snaps := make([]store.Snapshot, 0, len(obj))

	for key, raw := range obj {
		snap, err := decodeValue(key, raw)
		if err != nil {
			log.Printf("persist: %s is malformed, starting with an empty store: %v", path, err)
			return nil
		}

		snaps = append(snaps, snap)
	}

	for _, snap := range snaps {
		s.Restore(snap)
	}

	return nil
}

// decodeValue sniffs which of the three shapes raw holds by its leading
// token: a JSON string is a String entry, an array of strings is a List,
// an array of objects is a SortedSet.
func decodeValue(key string, raw json.RawMessage) (store.Snapshot, error) {
	trimmed := strings.TrimSpace(string(raw))

	switch {
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return store.Snapshot{}, fmt.Errorf("key %q: decode string: %w", key, err)
		}

		return store.Snapshot{Key: key, Tag: store.TagString, Str: s}, nil

	case strings.HasPrefix(trimmed, "["):
		if isStringArray(trimmed) {
			var list []string
			if err := json.Unmarshal(raw, &list); err != nil {
				return store.Snapshot{}, fmt.Errorf("key %q: decode list: %w", key, err)
			}

			return store.Snapshot{Key: key, Tag: store.TagList, List: list}, nil
		}

		var members []store.Member
		if err := json.Unmarshal(raw, &members); err != nil {
			return store.Snapshot{}, fmt.Errorf("key %q: decode sorted set: %w", key, err)
		}

		return store.Snapshot{Key: key, Tag: store.TagSortedSet, ZSet: members}, nil

	default:
		return store.Snapshot{}, fmt.Errorf("key %q: unrecognised value shape", key)
	}
}

// isStringArray reports whether trimmed (a JSON array literal) holds
// strings rather than objects, by inspecting the first non-whitespace
// byte after the opening bracket.
func isStringArray(trimmed string) bool {
	inner := strings.TrimSpace(trimmed[1:])
	if inner == "" || inner[0] == ']' {
		return true // empty array: List and SortedSet both decode fine, prefer List
	}

	return inner[0] == '"'
}
