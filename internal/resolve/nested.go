package resolve

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/camaragon/gql-codegen-tools/internal/discovery"
	"github.com/camaragon/gql-codegen-tools/internal/emit"
	"github.com/camaragon/gql-codegen-tools/internal/fragment"
)

// resolveObjectField finds or derives the nested fragment behind an
// object-typed selection. Target priority: the sub-selection's spread
// association, a fragment derived from a spread-less sub-selection, then the
// field's base type name. Misses skip the field with a warning; they never
// abort the document.
func (r *Resolver) resolveObjectField(ctx context.Context, doc *fragment.Document, sel fragment.Selection, base string) (emit.Expr, bool) {
	if sel.Ambiguous() {
		r.log.Warn("multiple spreads in sub-selection, using the first",
			zap.String("fragment", doc.Name),
			zap.String("field", sel.Field),
			zap.Strings("spreads", sel.Fragments))
	}

	if len(sel.Inline) > 0 {
		if _, ok := sel.Association(); !ok {
			return r.resolveDerived(ctx, doc, sel, base)
		}
	}

	target := base
	if assoc, ok := sel.Association(); ok {
		target = assoc
	}
	resolved, err := r.ensureNested(ctx, target)
	if err != nil {
		r.log.Warn("nested fragment failed, skipping field",
			zap.String("fragment", doc.Name),
			zap.String("field", sel.Field),
			zap.String("target", target),
			zap.Error(err))
		return nil, false
	}
	if resolved == "" {
		r.log.Warn("nested fragment not found, skipping field",
			zap.String("fragment", doc.Name),
			zap.String("field", sel.Field),
			zap.String("target", target))
		return nil, false
	}
	return emit.FactoryCall{Fragment: resolved}, true
}

// resolveDerived builds an anonymous fragment from the field's own
// sub-selection and generates it into its own artifact. `friend { id }`
// inside UserCard yields a UserCardFriend factory carrying only the selected
// fields, not the whole type.
func (r *Resolver) resolveDerived(ctx context.Context, doc *fragment.Document, sel fragment.Selection, base string) (emit.Expr, bool) {
	derived := &fragment.Document{
		Name:          doc.Name + capitalize(sel.Field),
		TypeCondition: base,
		Selections:    sel.Inline,
	}
	if r.inProgress[derived.Name] {
		return emit.FactoryCall{Fragment: derived.Name}, true
	}
	if err := r.resolveDocument(ctx, derived); err != nil {
		r.log.Warn("derived fragment failed, skipping field",
			zap.String("fragment", doc.Name),
			zap.String("field", sel.Field),
			zap.String("derived", derived.Name),
			zap.Error(err))
		return nil, false
	}
	return emit.FactoryCall{Fragment: derived.Name}, true
}

// ensureNested makes a factory for the named fragment available and returns
// the name it resolved under. The factory may already be on the active path
// (a cycle: reference it without descending), produced earlier this run, on
// disk from a previous run, or resolvable now from its document. An empty
// name means no candidate document exists.
func (r *Resolver) ensureNested(ctx context.Context, name string) (string, error) {
	for _, candidate := range candidates(name) {
		if r.inProgress[candidate] || r.resolved[candidate] || r.emitter.Exists(candidate) {
			return candidate, nil
		}
	}
	for _, candidate := range candidates(name) {
		content, err := r.documents.Read(ctx, candidate)
		if errors.Is(err, discovery.ErrNotFound) {
			continue
		}
		if err != nil {
			return candidate, err
		}
		doc, err := fragment.Parse(candidate, content)
		if err != nil {
			return candidate, err
		}
		doc.Name = candidate
		if err := r.resolveDocument(ctx, doc); err != nil {
			return candidate, err
		}
		return candidate, nil
	}
	return "", nil
}

// candidates lists the document names a reference may resolve under: the
// name itself, then the name without a conventional Fragment suffix.
func candidates(name string) []string {
	trimmed := strings.TrimSuffix(name, "Fragment")
	if trimmed == name || trimmed == "" {
		return []string{name}
	}
	return []string{name, trimmed}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
