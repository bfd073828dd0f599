// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names a scheduling policy.
type Kind int

// Accepted policies. The zero value is Static.
const (
	Static Kind = iota
	Dynamic
	Guided
	Runtime
	Auto
)

// kindNames maps every Kind to its lowercase token.
var kindNames = [...]string{
	Static:  "static",
	Dynamic: "dynamic",
	Guided:  "guided",
	Runtime: "runtime",
	Auto:    "auto",
}

// settingSep separates kind and chunk in a runtime setting ("dynamic,4").
const settingSep = ","

// String returns the lowercase token of k.
func (k Kind) String() string {
	if k < Static || k > Auto {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Kinds returns every accepted policy in declaration order.
func Kinds() []Kind { return []Kind{Static, Dynamic, Guided, Runtime, Auto} }

// ParseKind maps a schedule name to its Kind. Matching ignores case and
// surrounding blanks; any other name is ErrUnknownSchedule, never a fallback.
func ParseKind(name string) (Kind, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == token {
			return Kind(k), nil
		}
	}

	return Static, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownSchedule)
}

// Policy is a Kind plus its chunk size. Chunk == 0 selects the kind's default.
type Policy struct {
	Kind  Kind
	Chunk int
}

// String renders the policy in the runtime-setting syntax ("guided,4").
func (p Policy) String() string {
	if p.Chunk == 0 {
		return p.Kind.String()
	}

	return p.Kind.String() + settingSep + strconv.Itoa(p.Chunk)
}

// validate rejects negative chunks and unknown kinds.
func (p Policy) validate() error {
	if p.Kind < Static || p.Kind > Auto {
		return fmt.Errorf("policy %s: %w", p.Kind, ErrUnknownSchedule)
	}
	if p.Chunk < 0 {
		return fmt.Errorf("policy %s: chunk %d: %w", p.Kind, p.Chunk, ErrBadChunk)
	}

	return nil
}

// ParseSetting parses a runtime setting of the form "kind[,chunk]".
// Implementation:
//   - Stage 1: an empty setting means static with the default chunk.
//   - Stage 2: split kind and optional chunk; chunk must be a positive integer.
//   - Stage 3: "runtime" is rejected inside a setting (it would not resolve).
//
// Errors:
//   - ErrUnknownSchedule, ErrBadChunk.
func ParseSetting(setting string) (Policy, error) {
	setting = strings.TrimSpace(setting)
	if setting == "" {
		return Policy{Kind: Static}, nil
	}

	name, chunkText, hasChunk := strings.Cut(setting, settingSep)
	kind, err := ParseKind(name)
	if err != nil {
		return Policy{}, fmt.Errorf("ParseSetting(%q): %w", setting, err)
	}
	if kind == Runtime {
		return Policy{}, fmt.Errorf("ParseSetting(%q): runtime cannot name itself: %w",
			setting, ErrUnknownSchedule)
	}

	p := Policy{Kind: kind}
	if hasChunk {
		chunk, err := strconv.Atoi(strings.TrimSpace(chunkText))
		if err != nil || chunk <= 0 {
			return Policy{}, fmt.Errorf("ParseSetting(%q): %w", setting, ErrBadChunk)
		}
		p.Chunk = chunk
	}

	return p, nil
}

// Resolve turns p into a policy Run can execute directly.
//   - Runtime is replaced by ParseSetting(setting), itself resolved (so
//     "auto" inside a setting also ends up as guided).
//   - Auto becomes Guided with chunk 1.
//   - Static, Dynamic and Guided are returned unchanged.
//
// Errors: ErrUnknownSchedule, ErrBadChunk.
func Resolve(p Policy, setting string) (Policy, error) {
	if err := p.validate(); err != nil {
		return Policy{}, err
	}

	switch p.Kind {
	case Runtime:
		parsed, err := ParseSetting(setting)
		if err != nil {
			return Policy{}, err
		}

		return Resolve(parsed, "") // parsed.Kind is never Runtime
	case Auto:
		return Policy{Kind: Guided, Chunk: 1}, nil
	default:
		return p, nil
	}
}
