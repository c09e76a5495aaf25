package sqlsource

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// RelationKind documents the join direction of a relation.
type RelationKind int

const (
	// HasMany loads every related row whose join column matches the
	// owner's key.
	HasMany RelationKind = iota
	// HasOne loads at most one related row per owner.
	HasOne
	// BelongsTo loads the row an owner's foreign key points at.
	BelongsTo
)

// Relation describes a named relation loader between two registered
// record types. All loaded rows for a batch of owners come from a single
// query against the target table.
type Relation struct {
	// Name is the relation path segment used in fetch fields.
	Name string
	// Kind documents the join direction.
	Kind RelationKind
	// Target creates an empty record of the related type.
	Target func() Record
	// Column is the column on the target table matched against owner keys:
	// the foreign-key column for HasMany/HasOne, the primary-key column
	// for BelongsTo.
	Column string
	// Key extracts the join value from an owning record: the primary key
	// for HasMany/HasOne, the foreign-key value for BelongsTo.
	// The value must be comparable.
	Key func(owner Record) any
	// Match extracts the join value from a loaded related record, used to
	// group rows back onto their owners.
	Match func(related Record) any
	// Attach wires a loaded record onto its owner.
	Attach func(owner Record, related Record)
}

// fetchRelated populates the given relation paths on owners. Paths sharing
// a head segment are loaded together, so every relation level costs one
// query regardless of owner count.
func (s *Source) fetchRelated(ctx context.Context, tableName string, owners []Record, paths []string) error {
	if len(owners) == 0 || len(paths) == 0 {
		return nil
	}

	var heads []string
	nested := map[string][]string{}
	for _, path := range paths {
		head, rest := splitPath(path)
		if _, ok := nested[head]; !ok {
			heads = append(heads, head)
			nested[head] = nil
		}
		if rest != "" {
			nested[head] = append(nested[head], rest)
		}
	}

	for _, head := range heads {
		if err := s.fetchRelation(ctx, tableName, owners, head, nested[head]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) fetchRelation(ctx context.Context, tableName string, owners []Record, name string, nested []string) error {
	t, err := s.lookup(tableName)
	if err != nil {
		return err
	}
	rel, ok := t.relations[name]
	if !ok {
		return errors.Wrapf(ErrUnknownRelation, "%s.%s", tableName, name)
	}

	keys := make([]any, 0, len(owners))
	seen := map[any]bool{}
	for _, owner := range owners {
		key := rel.Key(owner)
		if key == nil || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil
	}

	req := s.Select(rel.Target).Where(In(rel.Column, keys...))
	related, err := req.records(ctx)
	if err != nil {
		return err
	}

	byKey := map[any][]Record{}
	for _, r := range related {
		k := rel.Match(r)
		byKey[k] = append(byKey[k], r)
	}
	for _, owner := range owners {
		for _, r := range byKey[rel.Key(owner)] {
			rel.Attach(owner, r)
		}
	}

	if len(nested) > 0 && len(related) > 0 {
		return s.fetchRelated(ctx, rel.Target().TableName(), related, nested)
	}
	return nil
}

// splitPath splits a relation path on the first "__" delimiter.
func splitPath(path string) (head, rest string) {
	if i := strings.Index(path, "__"); i >= 0 {
		return path[:i], path[i+2:]
	}
	return path, ""
}
