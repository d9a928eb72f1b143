package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]any {
	return map[string]any{
		"title":  "First Post",
		"date":   time.Date(2023, 2, 4, 15, 38, 42, 0, time.UTC),
		"layout": "post",
	}
}

func TestBuild_ValidDocument(t *testing.T) {
	fields := validFields()
	fields["tags"] = []any{"Go", "blog"}

	doc, err := Build(fields, []byte("<p>hi</p>\n"), "first-post.md")
	require.NoError(t, err)
	assert.Equal(t, "First Post", doc.Title)
	assert.Equal(t, "post", doc.Layout)
	assert.Equal(t, []string{"Go", "blog"}, doc.Tags)
	assert.Equal(t, "first-post", doc.Slug)
	assert.Equal(t, "<p>hi</p>\n", string(doc.BodyHTML))
	assert.Equal(t, SourceAuthored, doc.Kind)
}

func TestBuild_MissingTitle_ReportedFirst(t *testing.T) {
	// Both title and layout are missing; title has priority.
	_, err := Build(map[string]any{"date": "2023-01-01"}, nil, "a.md")
	require.Error(t, err)
	var inv *InvalidDocumentError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "title", inv.Field)
}

func TestBuild_EmptyTitle_Invalid(t *testing.T) {
	fields := validFields()
	fields["title"] = "  "

	_, err := Build(fields, nil, "a.md")
	var inv *InvalidDocumentError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "title", inv.Field)
	assert.Equal(t, "empty", inv.Reason)
}

func TestBuild_MissingLayout_Invalid(t *testing.T) {
	fields := validFields()
	delete(fields, "layout")

	_, err := Build(fields, nil, "a.md")
	var inv *InvalidDocumentError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "layout", inv.Field)
	assert.Equal(t, "a.md", inv.Source)
}

func TestBuild_DateAsString(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{"rfc3339", "2023-02-04T15:38:42Z", time.Date(2023, 2, 4, 15, 38, 42, 0, time.UTC)},
		{"date only", "2023-02-04", time.Date(2023, 2, 4, 0, 0, 0, 0, time.UTC)},
		{"space separated", "2023-02-04 15:38:42", time.Date(2023, 2, 4, 15, 38, 42, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			fields["date"] = tt.date

			doc, err := Build(fields, nil, "a.md")
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(doc.Date))
		})
	}
}

func TestBuild_UnparseableDate_Invalid(t *testing.T) {
	fields := validFields()
	fields["date"] = "yesterday"

	_, err := Build(fields, nil, "a.md")
	var inv *InvalidDocumentError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "date", inv.Field)
}

func TestBuild_DateFallbackFromFilename(t *testing.T) {
	fields := validFields()
	delete(fields, "date")

	doc, err := Build(fields, nil, "posts/2023-02-04-first-post.md")
	require.NoError(t, err)
	assert.True(t, time.Date(2023, 2, 4, 0, 0, 0, 0, time.UTC).Equal(doc.Date))
	assert.Equal(t, "2023-02-04-first-post", doc.Slug)
}

func TestBuild_NoDateAnywhere_Invalid(t *testing.T) {
	fields := validFields()
	delete(fields, "date")

	_, err := Build(fields, nil, "no-date-here.md")
	var inv *InvalidDocumentError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "date", inv.Field)
	assert.Equal(t, "missing", inv.Reason)
}

func TestBuild_ExplicitSlugOverridesFilename(t *testing.T) {
	fields := validFields()
	fields["slug"] = "My Custom Slug"

	doc, err := Build(fields, nil, "whatever.md")
	require.NoError(t, err)
	assert.Equal(t, "my-custom-slug", doc.Slug)
}

func TestBuild_MissingTags_DefaultsEmpty(t *testing.T) {
	doc, err := Build(validFields(), nil, "a.md")
	require.NoError(t, err)
	assert.Empty(t, doc.Tags)
}

func TestBuild_NonStringTag_Invalid(t *testing.T) {
	fields := validFields()
	fields["tags"] = []any{"ok", 7}

	_, err := Build(fields, nil, "a.md")
	var inv *InvalidDocumentError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "tags", inv.Field)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"The  Hound -- of the Baskervilles!", "the-hound-of-the-baskervilles"},
		{"2023-02-04-first-post", "2023-02-04-first-post"},
		{"__init__", "init"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
