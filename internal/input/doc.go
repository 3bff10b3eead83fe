// Package input reads raw records from files or stdin.
//
// Two encodings are accepted:
//   - A single JSON array of records ("json")
//   - JSON Lines, one record object per line ("jsonl")
//
// With "auto" the encoding is chosen from the first non-space byte.
//
// A record is {"series": ["1", "2"], "index": "0"}. Values stay strings here;
// parsing them is the job of package convert.
package input
