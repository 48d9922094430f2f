package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/wire"
)

// resolveCategory accepts either a category ID ("CAT-001") or a name
// ("Work", matched case-insensitively).
func resolveCategory(ctx context.Context, ref string) (*primary.Category, error) {
	if strings.HasPrefix(strings.ToUpper(ref), "CAT-") {
		return wire.CategoryService().GetCategory(ctx, strings.ToUpper(ref))
	}
	return wire.CategoryService().GetCategoryByName(ctx, ref)
}

// resolveTags turns a comma-separated tag list into tag IDs, creating
// missing tags under the category as it goes. Names are taken as-is;
// the service normalizes them.
func resolveTags(ctx context.Context, categoryID, list string) ([]string, error) {
	var tagIDs []string
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		tag, _, err := wire.TagService().GetOrCreateTag(ctx, primary.CreateTagRequest{
			CategoryID: categoryID,
			Name:       name,
		})
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}
	return tagIDs, nil
}
