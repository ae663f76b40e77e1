// Package cache implements an optional on-disk cache of an
// already-addressed ast.Program, CBOR-encoded, so repeated invocations of
// the CLI against the same program file skip re-parsing and re-addressing.
// Grounded on the teacher's core/planfmt/canonical.go, which CBOR-encodes a
// CanonicalPlan deterministically and hashes it for identity comparison.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/foppl-lang/foppl/internal/ast"
)

// entry is the on-disk shape: the source hash this cache entry was built
// from, plus the addressed program.
type entry struct {
	SourceHash string
	Program    wireProgram
}

// wireProgram mirrors ast.Program with exported, CBOR-friendly fields.
// The *FunctionDef and *Expression trees are stored as the ast types
// themselves, so the on-disk shape follows ast's field layout and a change
// to those structs changes the cache format.
type wireProgram struct {
	Functions map[string]*ast.FunctionDef
	Top       *ast.Expression
}

// SourceHash returns the cache key for a raw program document: a hex
// SHA-256 digest of its bytes.
func SourceHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func canonicalMode() (cbor.EncMode, error) {
	return cbor.CanonicalEncOptions().EncMode()
}

// Save writes prog to path, tagged with the hash of the raw source it was
// built from.
func Save(path string, raw []byte, prog *ast.Program) error {
	mode, err := canonicalMode()
	if err != nil {
		return fmt.Errorf("cache: building CBOR encoder: %w", err)
	}
	e := entry{
		SourceHash: SourceHash(raw),
		Program:    wireProgram{Functions: prog.Functions, Top: prog.Top},
	}
	data, err := mode.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encoding program: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cache: writing %s: %w", path, err)
	}
	return nil
}

// Load reads path and returns the cached program only if its source hash
// matches raw; a mismatch or read failure is reported via ok=false so the
// caller falls back to re-decoding rather than treating it as fatal.
func Load(path string, raw []byte) (prog *ast.Program, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var e entry
	if err := cbor.Unmarshal(data, &e); err != nil {
		return nil, false
	}
	if e.SourceHash != SourceHash(raw) {
		return nil, false
	}
	return &ast.Program{Functions: e.Program.Functions, Top: e.Program.Top}, true
}
